package skills

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hiresight-ml/internal/shared/server/respond"
)

// Handler exposes vocabulary lookups over HTTP.
type Handler struct {
	Vocab *Vocabulary
}

// NewHandler constructs a Handler.
func NewHandler(vocab *Vocabulary) *Handler {
	return &Handler{Vocab: vocab}
}

// RegisterRoutes attaches vocabulary routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/skills/all", h.all)
	rg.GET("/skills/search", h.search)
}

func (h *Handler) all(c *gin.Context) {
	respond.Success(c, "Skills retrieved successfully", gin.H{
		"skills":       h.Vocab.All(),
		"total_skills": h.Vocab.Size(),
	})
}

func (h *Handler) search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		respond.Failure(c, http.StatusBadRequest, "query parameter is required")
		return
	}

	matches := h.Vocab.Search(query)
	respond.Success(c, fmt.Sprintf("Found %d matching skills", len(matches)), gin.H{
		"query":   query,
		"matches": matches,
		"count":   len(matches),
	})
}
