package matching

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"hiresight-ml/internal/shared/metrics"
	"hiresight-ml/internal/shared/server/respond"
)

// Handler wires the matching endpoints to the Matcher.
type Handler struct {
	Matcher *Matcher
}

// NewHandler constructs a Handler.
func NewHandler(matcher *Matcher) *Handler {
	return &Handler{Matcher: matcher}
}

// RegisterRoutes attaches matching routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/match", h.match)
	rg.POST("/batch-match", h.batchMatch)
	rg.POST("/skill-gap", h.skillGap)
}

type matchRequest struct {
	ResumeSkills   []string `json:"resume_skills"`
	JobDescription string   `json:"job_description"`
	JobSkills      []string `json:"job_skills"`
}

func (h *Handler) match(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Failure(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Matcher.CalculateMatch(req.ResumeSkills, req.JobDescription, req.JobSkills)
	if err != nil {
		metrics.IncMatchFailed()
		status := http.StatusBadRequest
		if errors.Is(err, ErrTargetExtraction) {
			status = http.StatusUnprocessableEntity
		}
		respond.Failure(c, status, err.Error())
		return
	}

	metrics.IncMatch()
	c.Set("matchScore", result.MatchScore)
	respond.Success(c, fmt.Sprintf("Match calculated: %.2f%%", result.MatchScore), result)
}

type batchMatchRequest struct {
	ResumeSkills []string  `json:"resume_skills"`
	JobListings  []Listing `json:"job_listings"`
}

func (h *Handler) batchMatch(c *gin.Context) {
	var req batchMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Failure(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Matcher.BatchMatch(req.ResumeSkills, req.JobListings)
	if err != nil {
		metrics.IncMatchFailed()
		respond.Failure(c, http.StatusBadRequest, err.Error())
		return
	}

	metrics.IncMatch()
	respond.Success(c, fmt.Sprintf("Batch match completed: %d jobs analyzed", len(result.Matches)), result)
}

type skillGapRequest struct {
	ResumeSkills []string `json:"resume_skills"`
	TargetSkills []string `json:"target_skills"`
}

func (h *Handler) skillGap(c *gin.Context) {
	var req skillGapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Failure(c, http.StatusBadRequest, "invalid request body")
		return
	}

	analysis := h.Matcher.SkillGapAnalysis(req.ResumeSkills, req.TargetSkills)
	respond.Success(c, "Skill gap analysis completed", analysis)
}
