package parse

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"hiresight-ml/internal/extraction"
	"hiresight-ml/internal/shared/server/respond"
)

// maxUploadBytes caps resume uploads at 10MB.
const maxUploadBytes = 10 << 20

// Handler wires document parsing endpoints.
type Handler struct {
	Parser    *Parser
	Extractor *extraction.Extractor
}

// NewHandler constructs a Handler.
func NewHandler(parser *Parser, extractor *extraction.Extractor) *Handler {
	return &Handler{Parser: parser, Extractor: extractor}
}

// RegisterRoutes attaches parsing routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/parse-resume", h.parseResume)
	rg.POST("/parse-and-extract", h.parseAndExtract)
}

func (h *Handler) parseResume(c *gin.Context) {
	result, ok := h.parseUpload(c)
	if !ok {
		return
	}
	respond.Success(c, "Resume parsed successfully", result)
}

type parseExtractPayload struct {
	Parse  Result            `json:"parse"`
	Skills extraction.Result `json:"skills"`
}

func (h *Handler) parseAndExtract(c *gin.Context) {
	result, ok := h.parseUpload(c)
	if !ok {
		return
	}

	skills, err := h.Extractor.ExtractSkills(result.Text)
	if err != nil {
		respond.Failure(c, http.StatusUnprocessableEntity, "failed to extract skills from parsed text")
		return
	}

	c.Set("skillCount", skills.SkillCount)
	respond.Success(c, "Resume parsed and skills extracted", parseExtractPayload{
		Parse:  result,
		Skills: skills,
	})
}

// parseUpload reads the multipart file and runs the parser. On failure it
// writes the error response itself and reports ok=false.
func (h *Handler) parseUpload(c *gin.Context) (Result, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Failure(c, http.StatusBadRequest, "multipart field 'file' is required")
		return Result{}, false
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Failure(c, http.StatusRequestEntityTooLarge, "file exceeds the 10MB limit")
		return Result{}, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Failure(c, http.StatusBadRequest, "unable to read uploaded file")
		return Result{}, false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		respond.Failure(c, http.StatusBadRequest, "unable to read uploaded file")
		return Result{}, false
	}
	if len(data) > maxUploadBytes {
		respond.Failure(c, http.StatusRequestEntityTooLarge, "file exceeds the 10MB limit")
		return Result{}, false
	}

	result, err := h.Parser.Parse(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedFormat):
			respond.Failure(c, http.StatusUnsupportedMediaType, "only PDF and DOCX files are supported")
		case errors.Is(err, ErrEmptyDocument):
			respond.Failure(c, http.StatusUnprocessableEntity, err.Error())
		default:
			respond.Failure(c, http.StatusUnprocessableEntity, "failed to parse document")
		}
		return Result{}, false
	}

	return result, true
}
