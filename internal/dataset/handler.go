package dataset

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hiresight-ml/internal/shared/server/respond"
)

// Handler wires the dataset lookup endpoints.
type Handler struct {
	Repo *Repository
}

// NewHandler constructs a Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches dataset routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	ds := rg.Group("/dataset")
	ds.GET("/stats", h.stats)
	ds.GET("/random-job", h.randomJob)
	ds.POST("/search-jobs", h.searchJobs)
	ds.GET("/job-by-title/:title", h.jobByTitle)
	ds.GET("/categories", h.categories)
	ds.GET("/resumes/:category", h.resumesByCategory)
}

func (h *Handler) stats(c *gin.Context) {
	respond.Success(c, "Dataset statistics", h.Repo.Stats())
}

func (h *Handler) randomJob(c *gin.Context) {
	job := h.Repo.RandomJob()
	if job.JobTitle == "" && job.JobDescription == "" {
		respond.Failure(c, http.StatusNotFound, "job descriptions dataset is not installed")
		return
	}
	respond.Success(c, "Random job description", job)
}

type searchJobsRequest struct {
	Keywords []string `json:"keywords"`
	Limit    int      `json:"limit"`
}

func (h *Handler) searchJobs(c *gin.Context) {
	var req searchJobsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Failure(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Keywords) == 0 {
		respond.Failure(c, http.StatusBadRequest, "at least one keyword is required")
		return
	}

	jobs := h.Repo.SearchJobs(req.Keywords, req.Limit)
	respond.Success(c, "Job search completed", gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

func (h *Handler) jobByTitle(c *gin.Context) {
	title := strings.TrimSpace(c.Param("title"))
	if title == "" {
		respond.Failure(c, http.StatusBadRequest, "title is required")
		return
	}

	job := h.Repo.JobByTitle(title)
	if job.JobTitle == "" && job.JobDescription == "" {
		respond.Failure(c, http.StatusNotFound, "no job found matching that title")
		return
	}
	respond.Success(c, "Job found", job)
}

func (h *Handler) categories(c *gin.Context) {
	respond.Success(c, "Resume categories", gin.H{
		"categories": Categories,
		"total":      len(Categories),
	})
}

func (h *Handler) resumesByCategory(c *gin.Context) {
	category := strings.ToUpper(strings.TrimSpace(c.Param("category")))
	if category == "" {
		respond.Failure(c, http.StatusBadRequest, "category is required")
		return
	}

	files := h.Repo.SampleResumes(category)
	respond.Success(c, "Sample resumes listed", gin.H{
		"category": category,
		"files":    files,
		"total":    len(files),
	})
}
