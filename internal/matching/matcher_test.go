package matching

import (
	"errors"
	"reflect"
	"testing"

	"hiresight-ml/internal/extraction"
	"hiresight-ml/internal/skills"
)

func testMatcher() *Matcher {
	vocab := skills.FromMap(map[string][]string{
		"languages": {"Python", "SQL", "Go"},
		"cloud":     {"AWS", "Docker", "Kubernetes"},
	})
	return New(extraction.New(vocab, extraction.Unavailable()))
}

func TestCalculateMatchDocumentedExample(t *testing.T) {
	m := testMatcher()

	result, err := m.CalculateMatch(
		[]string{"python", "sql", "aws"},
		"",
		[]string{"python", "aws", "docker"},
	)
	if err != nil {
		t.Fatalf("calculate match: %v", err)
	}

	if result.MatchScore != 66.67 {
		t.Fatalf("expected score 66.67, got %v", result.MatchScore)
	}
	if result.Confidence != "medium" {
		t.Fatalf("expected confidence medium, got %q", result.Confidence)
	}
	if !reflect.DeepEqual(result.MatchedSkills, []string{"aws", "python"}) {
		t.Fatalf("unexpected matched: %v", result.MatchedSkills)
	}
	if !reflect.DeepEqual(result.MissingSkills, []string{"docker"}) {
		t.Fatalf("unexpected missing: %v", result.MissingSkills)
	}
	if !reflect.DeepEqual(result.ExtraSkills, []string{"sql"}) {
		t.Fatalf("unexpected extra: %v", result.ExtraSkills)
	}
	wantStats := Statistics{
		TotalJobRequirements: 3,
		TotalResumeSkills:    3,
		MatchedCount:         2,
		MissingCount:         1,
		ExtraCount:           1,
	}
	if result.Statistics != wantStats {
		t.Fatalf("unexpected statistics: %+v", result.Statistics)
	}
}

func TestCalculateMatchIdenticalSetsIsPerfectHigh(t *testing.T) {
	m := testMatcher()

	set := []string{"python", "aws", "docker"}
	result, err := m.CalculateMatch(set, "", set)
	if err != nil {
		t.Fatalf("calculate match: %v", err)
	}
	if result.MatchScore != 100.0 {
		t.Fatalf("expected 100.0, got %v", result.MatchScore)
	}
	if result.Confidence != "high" {
		t.Fatalf("expected high, got %q", result.Confidence)
	}
	if len(result.MissingSkills) != 0 {
		t.Fatalf("expected no missing skills, got %v", result.MissingSkills)
	}
}

func TestCalculateMatchEmptyResumeSkills(t *testing.T) {
	m := testMatcher()

	_, err := m.CalculateMatch(nil, "", []string{"python"})
	if !errors.Is(err, ErrNoCandidateSkills) {
		t.Fatalf("expected ErrNoCandidateSkills, got %v", err)
	}
}

func TestCalculateMatchNoTarget(t *testing.T) {
	m := testMatcher()

	_, err := m.CalculateMatch([]string{"python"}, "", nil)
	if !errors.Is(err, ErrNoTarget) {
		t.Fatalf("expected ErrNoTarget, got %v", err)
	}
}

func TestCalculateMatchEmptyTargetListIsDefinedEdgeCase(t *testing.T) {
	m := testMatcher()

	result, err := m.CalculateMatch([]string{"python", "sql"}, "", []string{})
	if err != nil {
		t.Fatalf("empty target should not error: %v", err)
	}
	if result.MatchScore != 0.0 {
		t.Fatalf("expected score 0.0, got %v", result.MatchScore)
	}
	if result.Confidence != "unknown" {
		t.Fatalf("expected confidence unknown, got %q", result.Confidence)
	}
}

func TestCalculateMatchDerivesTargetFromDescription(t *testing.T) {
	m := testMatcher()

	result, err := m.CalculateMatch(
		[]string{"python", "go"},
		"Looking for a Python engineer with AWS experience",
		nil,
	)
	if err != nil {
		t.Fatalf("calculate match: %v", err)
	}
	// Target derived as {python, aws}; matched {python}.
	if result.MatchScore != 50.0 {
		t.Fatalf("expected 50.0, got %v", result.MatchScore)
	}
	if !reflect.DeepEqual(result.MissingSkills, []string{"aws"}) {
		t.Fatalf("unexpected missing: %v", result.MissingSkills)
	}
}

func TestCalculateMatchCaseInsensitive(t *testing.T) {
	m := testMatcher()

	result, err := m.CalculateMatch([]string{"PYTHON", "Aws"}, "", []string{"python", "aws"})
	if err != nil {
		t.Fatalf("calculate match: %v", err)
	}
	if result.MatchScore != 100.0 {
		t.Fatalf("expected 100.0, got %v", result.MatchScore)
	}
}

func TestCalculateMatchSetPartitions(t *testing.T) {
	m := testMatcher()

	candidate := []string{"python", "sql", "go", "docker"}
	target := []string{"python", "docker", "kubernetes", "aws"}
	result, err := m.CalculateMatch(candidate, "", target)
	if err != nil {
		t.Fatalf("calculate match: %v", err)
	}

	inSlice := func(list []string, s string) bool {
		for _, v := range list {
			if v == s {
				return true
			}
		}
		return false
	}

	// matched, missing, extra pairwise disjoint.
	for _, skill := range result.MatchedSkills {
		if inSlice(result.MissingSkills, skill) || inSlice(result.ExtraSkills, skill) {
			t.Fatalf("skill %q appears in more than one set", skill)
		}
	}
	// matched ∪ missing = target, matched ∪ extra = candidate.
	if len(result.MatchedSkills)+len(result.MissingSkills) != len(target) {
		t.Fatalf("matched+missing should cover target")
	}
	if len(result.MatchedSkills)+len(result.ExtraSkills) != len(candidate) {
		t.Fatalf("matched+extra should cover candidate")
	}
}

func TestConfidenceBands(t *testing.T) {
	cases := []struct {
		name      string
		matched   int
		target    int
		candidate int
		want      string
	}{
		{name: "empty target", matched: 0, target: 0, candidate: 3, want: "unknown"},
		{name: "high", matched: 4, target: 5, candidate: 5, want: "high"},
		{name: "high ratio small candidate demoted", matched: 4, target: 5, candidate: 4, want: "medium"},
		{name: "medium", matched: 3, target: 5, candidate: 10, want: "medium"},
		{name: "low", matched: 2, target: 5, candidate: 10, want: "low"},
		{name: "very low", matched: 1, target: 5, candidate: 10, want: "very low"},
		{name: "exact 0.8 boundary", matched: 4, target: 5, candidate: 6, want: "high"},
		{name: "exact 0.6 boundary", matched: 3, target: 5, candidate: 2, want: "medium"},
		{name: "exact 0.4 boundary", matched: 2, target: 5, candidate: 2, want: "low"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := confidenceFor(tc.matched, tc.target, tc.candidate); got != tc.want {
				t.Fatalf("confidenceFor(%d,%d,%d) = %q, want %q", tc.matched, tc.target, tc.candidate, got, tc.want)
			}
		})
	}
}

func TestRecommendationBands(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{100, "Excellent match! Highly recommended to apply."},
		{80, "Excellent match! Highly recommended to apply."},
		{79.99, "Good match. Consider applying with emphasis on matched skills."},
		{60, "Good match. Consider applying with emphasis on matched skills."},
		{40, "Moderate match. Consider upskilling in missing areas before applying."},
		{20, "Low match. Significant skill gap exists. Focus on learning missing skills."},
		{0, "Poor match. This role may require substantial additional training."},
	}
	for _, tc := range cases {
		if got := recommendationFor(tc.score); got != tc.want {
			t.Fatalf("recommendationFor(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{66.666666, 66.67},
		{33.334999, 33.33},
		{33.335, 33.34}, // half rounds away from zero
		{0, 0},
		{100, 100},
	}
	for _, tc := range cases {
		if got := round2(tc.in); got != tc.want {
			t.Fatalf("round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBatchMatchRanksDescending(t *testing.T) {
	m := testMatcher()

	result, err := m.BatchMatch(
		[]string{"python", "aws"},
		[]Listing{
			{Title: "Partial", Skills: []string{"python", "docker"}},
			{Title: "Perfect", Skills: []string{"python", "aws"}},
			{Title: "None", Skills: []string{"kubernetes"}},
		},
	)
	if err != nil {
		t.Fatalf("batch match: %v", err)
	}

	if result.TotalJobs != 3 {
		t.Fatalf("expected total_jobs 3, got %d", result.TotalJobs)
	}
	if len(result.Matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(result.Matches))
	}
	for i := 1; i < len(result.Matches); i++ {
		if result.Matches[i].MatchScore > result.Matches[i-1].MatchScore {
			t.Fatalf("matches not sorted descending at %d", i)
		}
	}
	if result.Matches[0].JobTitle != "Perfect" {
		t.Fatalf("expected Perfect first, got %q", result.Matches[0].JobTitle)
	}
	if result.BestMatch == nil || result.BestMatch.JobTitle != "Perfect" {
		t.Fatalf("expected best match Perfect, got %+v", result.BestMatch)
	}

	// average of 100, 50, 0.
	if result.AverageScore != 50.0 {
		t.Fatalf("expected average 50.0, got %v", result.AverageScore)
	}
}

func TestBatchMatchTiesKeepInputOrder(t *testing.T) {
	m := testMatcher()

	result, err := m.BatchMatch(
		[]string{"python"},
		[]Listing{
			{Title: "First", Skills: []string{"python", "aws"}},
			{Title: "Second", Skills: []string{"python", "docker"}},
		},
	)
	if err != nil {
		t.Fatalf("batch match: %v", err)
	}
	if result.Matches[0].JobTitle != "First" || result.Matches[1].JobTitle != "Second" {
		t.Fatalf("tie order not preserved: %+v", result.Matches)
	}
}

func TestBatchMatchDropsFailedListings(t *testing.T) {
	m := testMatcher()

	result, err := m.BatchMatch(
		[]string{"python"},
		[]Listing{
			{Title: "Broken"}, // no skills, no description
			{Title: "Good", Skills: []string{"python"}},
		},
	)
	if err != nil {
		t.Fatalf("batch match: %v", err)
	}
	if result.TotalJobs != 2 {
		t.Fatalf("expected total_jobs 2, got %d", result.TotalJobs)
	}
	if len(result.Matches) != 1 {
		t.Fatalf("expected 1 successful match, got %d", len(result.Matches))
	}
	if result.Matches[0].JobTitle != "Good" {
		t.Fatalf("expected Good, got %q", result.Matches[0].JobTitle)
	}
}

func TestBatchMatchNoListings(t *testing.T) {
	m := testMatcher()
	if _, err := m.BatchMatch([]string{"python"}, nil); !errors.Is(err, ErrNoListings) {
		t.Fatalf("expected ErrNoListings, got %v", err)
	}
}

func TestBatchMatchUntitledListingGetsIndexName(t *testing.T) {
	m := testMatcher()

	result, err := m.BatchMatch(
		[]string{"python"},
		[]Listing{{Skills: []string{"python"}}},
	)
	if err != nil {
		t.Fatalf("batch match: %v", err)
	}
	if result.Matches[0].JobTitle != "Job 1" {
		t.Fatalf("expected Job 1, got %q", result.Matches[0].JobTitle)
	}
}

func TestSkillGapAnalysis(t *testing.T) {
	m := testMatcher()

	analysis := m.SkillGapAnalysis(
		[]string{"Python", "SQL"},
		[]string{"python", "aws", "docker", "kubernetes", "go", "terraform", "rust"},
	)

	if !reflect.DeepEqual(analysis.SkillsAchieved, []string{"python"}) {
		t.Fatalf("unexpected achieved: %v", analysis.SkillsAchieved)
	}
	wantGaps := []string{"aws", "docker", "go", "kubernetes", "rust", "terraform"}
	if !reflect.DeepEqual(analysis.SkillsToLearn, wantGaps) {
		t.Fatalf("unexpected gaps: %v", analysis.SkillsToLearn)
	}
	if len(analysis.Priorities.Critical) != 5 {
		t.Fatalf("expected 5 critical, got %d", len(analysis.Priorities.Critical))
	}
	if !reflect.DeepEqual(analysis.Priorities.Optional, []string{"terraform"}) {
		t.Fatalf("unexpected optional: %v", analysis.Priorities.Optional)
	}
	// achieved ∪ to-learn = target.
	if len(analysis.SkillsAchieved)+len(analysis.SkillsToLearn) != len(analysis.TargetSkills) {
		t.Fatalf("achieved+gaps should cover target")
	}
	// 1/7 → 14.29
	if analysis.ProgressPercentage != 14.29 {
		t.Fatalf("expected 14.29, got %v", analysis.ProgressPercentage)
	}
}

func TestSkillGapAnalysisEmptyTarget(t *testing.T) {
	m := testMatcher()

	analysis := m.SkillGapAnalysis([]string{"python"}, nil)
	if analysis.ProgressPercentage != 0 {
		t.Fatalf("expected progress 0, got %v", analysis.ProgressPercentage)
	}
	if len(analysis.SkillsToLearn) != 0 {
		t.Fatalf("expected no gaps, got %v", analysis.SkillsToLearn)
	}
}

func TestSkillGapAnalysisSmallGapAllCritical(t *testing.T) {
	m := testMatcher()

	analysis := m.SkillGapAnalysis([]string{"python"}, []string{"python", "aws", "docker"})
	if !reflect.DeepEqual(analysis.Priorities.Critical, []string{"aws", "docker"}) {
		t.Fatalf("unexpected critical: %v", analysis.Priorities.Critical)
	}
	if len(analysis.Priorities.Optional) != 0 {
		t.Fatalf("expected no optional, got %v", analysis.Priorities.Optional)
	}
}
