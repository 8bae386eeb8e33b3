package extraction

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hiresight-ml/internal/shared/metrics"
	"hiresight-ml/internal/shared/server/respond"
)

// Handler wires the extraction endpoint to the Extractor.
type Handler struct {
	Extractor *Extractor
}

// NewHandler constructs a Handler.
func NewHandler(extractor *Extractor) *Handler {
	return &Handler{Extractor: extractor}
}

// RegisterRoutes attaches extraction routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extract-skills", h.extract)
}

type extractRequest struct {
	Text string `json:"text"`
}

func (h *Handler) extract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Failure(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Extractor.ExtractSkills(req.Text)
	if err != nil {
		metrics.IncExtractionFailed()
		if errors.Is(err, ErrEmptyText) {
			respond.Failure(c, http.StatusBadRequest, err.Error())
			return
		}
		respond.Failure(c, http.StatusInternalServerError, "failed to extract skills")
		return
	}

	metrics.IncExtraction()
	c.Set("skillCount", result.SkillCount)
	respond.Success(c, "Skills extracted successfully", result)
}
