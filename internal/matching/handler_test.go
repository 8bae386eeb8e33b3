package matching_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"hiresight-ml/internal/extraction"
	"hiresight-ml/internal/matching"
	"hiresight-ml/internal/skills"
)

func newMatchRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	vocab := skills.FromMap(map[string][]string{
		"languages": {"Python", "SQL"},
		"cloud":     {"AWS", "Docker"},
	})
	matcher := matching.New(extraction.New(vocab, extraction.Unavailable()))

	router := gin.New()
	api := router.Group("/api/v1")
	matching.NewHandler(matcher).RegisterRoutes(api)
	return router
}

func TestMatchEndpoint(t *testing.T) {
	router := newMatchRouter()

	body := `{"resume_skills":["python","sql","aws"],"job_skills":["python","aws","docker"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	out := resp.Body.String()
	if !strings.Contains(out, `"match_score":66.67`) {
		t.Fatalf("expected score 66.67 in response: %s", out)
	}
	if !strings.Contains(out, `"confidence":"medium"`) {
		t.Fatalf("expected medium confidence in response: %s", out)
	}
	if !strings.Contains(out, `"success":true`) {
		t.Fatalf("expected success envelope: %s", out)
	}
}

func TestMatchEndpointMissingResumeSkills(t *testing.T) {
	router := newMatchRouter()

	body := `{"job_skills":["python"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), `"success":false`) {
		t.Fatalf("expected failure envelope: %s", resp.Body.String())
	}
}

func TestMatchEndpointNoTarget(t *testing.T) {
	router := newMatchRouter()

	body := `{"resume_skills":["python"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "job_skills or job_description") {
		t.Fatalf("expected target error message: %s", resp.Body.String())
	}
}

func TestBatchMatchEndpoint(t *testing.T) {
	router := newMatchRouter()

	body := `{"resume_skills":["python","aws"],"job_listings":[
		{"title":"Backend","skills":["python","aws"]},
		{"title":"Data","skills":["sql","docker"]}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/batch-match", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	out := resp.Body.String()
	if !strings.Contains(out, `"total_jobs":2`) {
		t.Fatalf("expected total_jobs 2: %s", out)
	}
	if !strings.Contains(out, `"best_match"`) {
		t.Fatalf("expected best_match in response: %s", out)
	}
}

func TestSkillGapEndpoint(t *testing.T) {
	router := newMatchRouter()

	body := `{"resume_skills":["python"],"target_skills":["python","aws","docker"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/skill-gap", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	out := resp.Body.String()
	if !strings.Contains(out, `"skills_to_learn":["aws","docker"]`) {
		t.Fatalf("expected gaps in response: %s", out)
	}
}
