package insight

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hiresight-ml/internal/extraction"
	"hiresight-ml/internal/matching"
	"hiresight-ml/internal/parse"
	"hiresight-ml/internal/shared/metrics"
	"hiresight-ml/internal/shared/server/respond"
)

const maxUploadBytes = 10 << 20

// Handler wires the AI analysis endpoints.
type Handler struct {
	Service   *Service
	Parser    *parse.Parser
	Extractor *extraction.Extractor
	Matcher   *matching.Matcher
}

// NewHandler constructs a Handler.
func NewHandler(service *Service, parser *parse.Parser, extractor *extraction.Extractor, matcher *matching.Matcher) *Handler {
	return &Handler{Service: service, Parser: parser, Extractor: extractor, Matcher: matcher}
}

// RegisterRoutes attaches AI analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze-resume", h.analyzeResume)
	rg.POST("/generate-interview-questions", h.generateQuestions)
	rg.POST("/complete-analysis", h.completeAnalysis)
}

type analyzeRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

func (h *Handler) analyzeResume(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Failure(c, http.StatusBadRequest, "invalid request body")
		return
	}

	start := time.Now()
	analysis, err := h.Service.Analyze(c.Request.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		metrics.IncInsightFailed()
		h.failure(c, err)
		return
	}

	metrics.IncInsight()
	metrics.ObserveInsightDurationMs(float64(time.Since(start).Milliseconds()))
	respond.Success(c, "Resume analyzed successfully", analysis)
}

type questionsRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
	NumQuestions   int    `json:"num_questions"`
}

func (h *Handler) generateQuestions(c *gin.Context) {
	var req questionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Failure(c, http.StatusBadRequest, "invalid request body")
		return
	}

	start := time.Now()
	questions, err := h.Service.GenerateQuestions(c.Request.Context(), req.ResumeText, req.JobDescription, req.NumQuestions)
	if err != nil {
		metrics.IncInsightFailed()
		h.failure(c, err)
		return
	}

	metrics.IncInsight()
	metrics.ObserveInsightDurationMs(float64(time.Since(start).Milliseconds()))
	respond.Success(c, "Interview questions generated", gin.H{"questions": questions})
}

// aiSection carries the narrative analysis inside the complete-analysis
// payload. A model failure is reported here instead of failing the request,
// since the deterministic parts of the pipeline already succeeded.
type aiSection struct {
	Success  bool      `json:"success"`
	Analysis *Analysis `json:"analysis,omitempty"`
	Error    string    `json:"error,omitempty"`
}

type completePayload struct {
	Parse  parse.Result         `json:"parse"`
	Skills extraction.Result    `json:"skills"`
	Match  matching.MatchResult `json:"match"`
	AI     aiSection            `json:"ai_analysis"`
}

func (h *Handler) completeAnalysis(c *gin.Context) {
	jobDescription := c.PostForm("job_description")
	if jobDescription == "" {
		respond.Failure(c, http.StatusBadRequest, "form field 'job_description' is required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Failure(c, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Failure(c, http.StatusRequestEntityTooLarge, "file exceeds the 10MB limit")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Failure(c, http.StatusBadRequest, "unable to read uploaded file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil || len(data) > maxUploadBytes {
		respond.Failure(c, http.StatusBadRequest, "unable to read uploaded file")
		return
	}

	parsed, err := h.Parser.Parse(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		respond.Failure(c, http.StatusUnprocessableEntity, "failed to parse document")
		return
	}

	skills, err := h.Extractor.ExtractSkills(parsed.Text)
	if err != nil {
		respond.Failure(c, http.StatusUnprocessableEntity, "failed to extract skills from parsed text")
		return
	}

	match, err := h.Matcher.CalculateMatch(skills.Skills, jobDescription, nil)
	if err != nil {
		respond.Failure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	ai := aiSection{Success: true}
	start := time.Now()
	analysis, err := h.Service.Analyze(c.Request.Context(), parsed.Text, jobDescription)
	if err != nil {
		metrics.IncInsightFailed()
		ai = aiSection{Success: false, Error: err.Error()}
	} else {
		metrics.IncInsight()
		metrics.ObserveInsightDurationMs(float64(time.Since(start).Milliseconds()))
		ai.Analysis = &analysis
	}

	c.Set("skillCount", skills.SkillCount)
	c.Set("matchScore", match.MatchScore)
	respond.Success(c, "Complete analysis finished", completePayload{
		Parse:  parsed,
		Skills: skills,
		Match:  match,
		AI:     ai,
	})
}

func (h *Handler) failure(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotConfigured):
		respond.Failure(c, http.StatusServiceUnavailable, ErrNotConfigured.Error())
	case errors.Is(err, ErrMissingInput):
		respond.Failure(c, http.StatusBadRequest, ErrMissingInput.Error())
	default:
		respond.Failure(c, http.StatusBadGateway, "AI analysis failed")
	}
}
