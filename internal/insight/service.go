package insight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"hiresight-ml/internal/shared/telemetry"
)

// ErrNotConfigured is returned when no Gemini API key was provided at startup.
var ErrNotConfigured = errors.New("AI analysis is not configured")

// ErrMissingInput is returned when resume or job description text is empty.
var ErrMissingInput = errors.New("both resume_text and job_description are required")

const defaultNumQuestions = 5

// ImprovementArea is a single prioritized improvement recommendation.
type ImprovementArea struct {
	Area        string `json:"area"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// Analysis is the structured verdict produced by the model.
type Analysis struct {
	FitScore         float64           `json:"fit_score"`
	Summary          string            `json:"summary"`
	Strengths        []string          `json:"strengths"`
	Weaknesses       []string          `json:"weaknesses"`
	MatchedSkills    []string          `json:"matched_skills"`
	MissingSkills    []string          `json:"missing_skills"`
	Suggestions      []string          `json:"suggestions"`
	ImprovementAreas []ImprovementArea `json:"improvement_areas"`
	Recommendation   string            `json:"recommendation"`
	RawResponse      string            `json:"raw_response,omitempty"`
}

// Service runs narrative resume analysis through a Generator.
type Service struct {
	gen Generator
}

// NewService constructs a Service. A nil generator produces a service that
// reports ErrNotConfigured on every call, which keeps the rest of the API
// usable without an API key.
func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

// Available reports whether a generator is configured.
func (s *Service) Available() bool {
	return s != nil && s.gen != nil
}

// Analyze evaluates a resume against a job description.
func (s *Service) Analyze(ctx context.Context, resumeText, jobDescription string) (Analysis, error) {
	if !s.Available() {
		return Analysis{}, ErrNotConfigured
	}
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobDescription) == "" {
		return Analysis{}, ErrMissingInput
	}

	raw, err := s.gen.GenerateContent(ctx, analysisPrompt(resumeText, jobDescription))
	if err != nil {
		return Analysis{}, fmt.Errorf("analyze resume: %w", err)
	}

	return parseAnalysis(raw), nil
}

// GenerateQuestions produces interview questions tailored to the resume and
// job description. numQuestions <= 0 falls back to the default of 5.
func (s *Service) GenerateQuestions(ctx context.Context, resumeText, jobDescription string, numQuestions int) ([]string, error) {
	if !s.Available() {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobDescription) == "" {
		return nil, ErrMissingInput
	}
	if numQuestions <= 0 {
		numQuestions = defaultNumQuestions
	}

	raw, err := s.gen.GenerateContent(ctx, questionsPrompt(resumeText, jobDescription, numQuestions))
	if err != nil {
		return nil, fmt.Errorf("generate interview questions: %w", err)
	}

	var questions []string
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &questions); err != nil {
		return nil, fmt.Errorf("generate interview questions: parse response: %w", err)
	}
	return questions, nil
}

// parseAnalysis decodes the model output, tolerating markdown code fences. A
// response that is not valid JSON degrades to a fixed fallback carrying the
// first 500 characters of the raw output.
func parseAnalysis(raw string) Analysis {
	var analysis Analysis
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &analysis); err != nil {
		telemetry.Warn("insight.parse_failed", map[string]interface{}{
			"error": err.Error(),
		})
		return fallbackAnalysis(raw)
	}
	return analysis
}

func fallbackAnalysis(raw string) Analysis {
	return Analysis{
		FitScore:         0,
		Summary:          "Unable to parse AI response. Please try again.",
		RawResponse:      truncateRunes(raw, 500),
		Strengths:        []string{},
		Weaknesses:       []string{},
		MatchedSkills:    []string{},
		MissingSkills:    []string{},
		Suggestions:      []string{"Please review the resume and job description manually."},
		ImprovementAreas: []ImprovementArea{},
		Recommendation:   "manual_review_needed",
	}
}

func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
