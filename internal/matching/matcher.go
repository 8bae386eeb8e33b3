package matching

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"hiresight-ml/internal/extraction"
)

var (
	// ErrNoCandidateSkills is returned when the resume skill set is empty.
	ErrNoCandidateSkills = errors.New("no resume skills provided")
	// ErrNoTarget is returned when neither job skills nor a job description
	// is supplied.
	ErrNoTarget = errors.New("either job_skills or job_description must be provided")
	// ErrTargetExtraction is returned when deriving the target set from a
	// job description fails.
	ErrTargetExtraction = errors.New("failed to extract skills from job description")
	// ErrNoListings is returned when a batch match has nothing to rank.
	ErrNoListings = errors.New("no job listings provided")
)

// Statistics carries the set sizes of one comparison.
type Statistics struct {
	TotalJobRequirements int `json:"total_job_requirements"`
	TotalResumeSkills    int `json:"total_resume_skills"`
	MatchedCount         int `json:"matched_count"`
	MissingCount         int `json:"missing_count"`
	ExtraCount           int `json:"extra_count"`
}

// MatchResult is the immutable outcome of one comparison. The three skill
// slices are lowercase, sorted and pairwise disjoint; matched and missing
// partition the target set, matched and extra partition the candidate set.
type MatchResult struct {
	MatchScore     float64    `json:"match_score"`
	Confidence     string     `json:"confidence"`
	MatchedSkills  []string   `json:"matched_skills"`
	MissingSkills  []string   `json:"missing_skills"`
	ExtraSkills    []string   `json:"extra_skills"`
	Statistics     Statistics `json:"statistics"`
	Recommendation string     `json:"recommendation"`
}

// Listing is one job to rank in a batch match. Skills takes precedence over
// Description when both are present.
type Listing struct {
	Title       string   `json:"title"`
	Skills      []string `json:"skills,omitempty"`
	Description string   `json:"description,omitempty"`
}

// ListingMatch is the per-listing summary inside a batch result.
type ListingMatch struct {
	JobTitle       string   `json:"job_title"`
	MatchScore     float64  `json:"match_score"`
	MatchedSkills  []string `json:"matched_skills"`
	MissingSkills  []string `json:"missing_skills"`
	Recommendation string   `json:"recommendation"`
}

// BatchResult ranks listings by match score, best first.
type BatchResult struct {
	TotalJobs    int            `json:"total_jobs"`
	Matches      []ListingMatch `json:"matches"`
	BestMatch    *ListingMatch  `json:"best_match"`
	AverageScore float64        `json:"average_score"`
}

// Priorities splits the gap set into the five most urgent skills and the rest.
type Priorities struct {
	Critical []string `json:"critical"`
	Optional []string `json:"optional"`
}

// GapAnalysis frames a comparison as progress toward a target skill set.
type GapAnalysis struct {
	CurrentSkills      []string   `json:"current_skills"`
	TargetSkills       []string   `json:"target_skills"`
	SkillsAchieved     []string   `json:"skills_achieved"`
	SkillsToLearn      []string   `json:"skills_to_learn"`
	ProgressPercentage float64    `json:"progress_percentage"`
	Priorities         Priorities `json:"priorities"`
}

// Matcher computes fit scores between skill sets. All operations are pure
// functions over their inputs and the read-only vocabulary behind the
// extractor, so a single Matcher is safe for unlimited concurrent use.
type Matcher struct {
	extractor *extraction.Extractor
}

// New constructs a Matcher that derives target sets via the given extractor.
func New(extractor *extraction.Extractor) *Matcher {
	return &Matcher{extractor: extractor}
}

// CalculateMatch compares resume skills against a target set, derived from
// jobSkills when given, otherwise extracted from jobDescription.
func (m *Matcher) CalculateMatch(resumeSkills []string, jobDescription string, jobSkills []string) (MatchResult, error) {
	if len(resumeSkills) == 0 {
		return MatchResult{}, ErrNoCandidateSkills
	}

	// A nil jobSkills means "derive from the description"; an explicitly
	// supplied empty list is a defined edge case scoring 0 with confidence
	// "unknown".
	if jobSkills == nil {
		if strings.TrimSpace(jobDescription) == "" {
			return MatchResult{}, ErrNoTarget
		}
		extracted, err := m.extractor.ExtractSkills(jobDescription)
		if err != nil {
			return MatchResult{}, fmt.Errorf("%w: %v", ErrTargetExtraction, err)
		}
		jobSkills = extracted.Skills
	}

	candidate := normalize(resumeSkills)
	target := normalize(jobSkills)

	matched := intersect(candidate, target)
	missing := subtract(target, candidate)
	extra := subtract(candidate, target)

	score := 0.0
	if len(target) > 0 {
		score = round2(100 * float64(len(matched)) / float64(len(target)))
	}

	return MatchResult{
		MatchScore:    score,
		Confidence:    confidenceFor(len(matched), len(target), len(candidate)),
		MatchedSkills: sortedSlice(matched),
		MissingSkills: sortedSlice(missing),
		ExtraSkills:   sortedSlice(extra),
		Statistics: Statistics{
			TotalJobRequirements: len(target),
			TotalResumeSkills:    len(candidate),
			MatchedCount:         len(matched),
			MissingCount:         len(missing),
			ExtraCount:           len(extra),
		},
		Recommendation: recommendationFor(score),
	}, nil
}

// BatchMatch ranks listings against the resume skills. Listings whose match
// computation fails are dropped from the output; TotalJobs still counts every
// submitted listing. The descending sort is stable, so tied listings keep
// their input order.
func (m *Matcher) BatchMatch(resumeSkills []string, listings []Listing) (BatchResult, error) {
	if len(resumeSkills) == 0 {
		return BatchResult{}, ErrNoCandidateSkills
	}
	if len(listings) == 0 {
		return BatchResult{}, ErrNoListings
	}

	matches := make([]ListingMatch, 0, len(listings))
	for idx, listing := range listings {
		title := strings.TrimSpace(listing.Title)
		if title == "" {
			title = fmt.Sprintf("Job %d", idx+1)
		}

		result, err := m.CalculateMatch(resumeSkills, listing.Description, listing.Skills)
		if err != nil {
			continue
		}

		matches = append(matches, ListingMatch{
			JobTitle:       title,
			MatchScore:     result.MatchScore,
			MatchedSkills:  result.MatchedSkills,
			MissingSkills:  result.MissingSkills,
			Recommendation: result.Recommendation,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	out := BatchResult{
		TotalJobs: len(listings),
		Matches:   matches,
	}
	if len(matches) > 0 {
		out.BestMatch = &matches[0]
		sum := 0.0
		for _, match := range matches {
			sum += match.MatchScore
		}
		out.AverageScore = round2(sum / float64(len(matches)))
	}
	return out, nil
}

// SkillGapAnalysis reports achieved versus still-to-learn skills against a
// target set. The first five missing skills, alphabetically, are flagged
// critical; the remainder optional.
func (m *Matcher) SkillGapAnalysis(resumeSkills, targetSkills []string) GapAnalysis {
	current := normalize(resumeSkills)
	target := normalize(targetSkills)

	achieved := intersect(current, target)
	gaps := sortedSlice(subtract(target, current))

	progress := 0.0
	if len(target) > 0 {
		progress = round2(100 * float64(len(achieved)) / float64(len(target)))
	}

	critical := gaps
	optional := []string{}
	if len(gaps) > 5 {
		critical = gaps[:5]
		optional = gaps[5:]
	}

	return GapAnalysis{
		CurrentSkills:      sortedSlice(current),
		TargetSkills:       sortedSlice(target),
		SkillsAchieved:     sortedSlice(achieved),
		SkillsToLearn:      gaps,
		ProgressPercentage: progress,
		Priorities: Priorities{
			Critical: critical,
			Optional: optional,
		},
	}
}

func normalize(skills []string) map[string]struct{} {
	out := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		lowered := strings.ToLower(strings.TrimSpace(skill))
		if lowered == "" {
			continue
		}
		out[lowered] = struct{}{}
	}
	return out
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for k := range a {
		if _, ok := b[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func subtract(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for k := range a {
		if _, ok := b[k]; !ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func sortedSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
