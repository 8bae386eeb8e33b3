package extraction

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"hiresight-ml/internal/skills"
)

// Method names reported in extraction_methods.
const (
	MethodKeyword = "keyword_matching"
	MethodNLP     = "nlp_extraction"
)

// ErrEmptyText is returned when the input text is empty or whitespace.
var ErrEmptyText = errors.New("no text provided")

var wordPattern = regexp.MustCompile(`\w+`)

// Result is one extraction outcome: the deduplicated lowercase skill set,
// its per-category breakdown, and independent per-method counts. The method
// counts are taken before the union, so they can sum to more than SkillCount
// when both methods find the same skill.
type Result struct {
	Skills      []string            `json:"skills"`
	SkillCount  int                 `json:"skill_count"`
	Categorized map[string][]string `json:"categorized_skills"`
	Methods     map[string]int      `json:"extraction_methods"`
}

// Extractor finds vocabulary skills in free text using keyword matching and,
// when available, NLP candidate phrases. It is stateless after construction
// and safe for concurrent use.
type Extractor struct {
	vocab      *skills.Vocabulary
	candidates CandidateSource
	singles    map[string]struct{}
	phrases    []string
}

// New builds an Extractor over the vocabulary. The single-word/phrase split
// of the flattened set is computed once here.
func New(vocab *skills.Vocabulary, candidates CandidateSource) *Extractor {
	e := &Extractor{
		vocab:      vocab,
		candidates: candidates,
		singles:    make(map[string]struct{}),
	}
	if e.candidates == nil {
		e.candidates = Unavailable()
	}
	for _, skill := range vocab.Flattened() {
		if strings.Contains(skill, " ") {
			e.phrases = append(e.phrases, skill)
		} else {
			e.singles[skill] = struct{}{}
		}
	}
	return e
}

// NLPAvailable reports whether the candidate-phrase method is active.
func (e *Extractor) NLPAvailable() bool {
	return e.candidates.Available()
}

// ExtractSkills returns the vocabulary skills present in text. Empty input is
// a caller error; the candidate-phrase method degrading to nothing is not.
func (e *Extractor) ExtractSkills(text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{Skills: []string{}}, ErrEmptyText
	}

	keyword := e.extractByKeywords(text)
	nlp := e.extractByCandidates(text)

	union := make(map[string]struct{}, len(keyword)+len(nlp))
	for skill := range keyword {
		union[skill] = struct{}{}
	}
	for skill := range nlp {
		union[skill] = struct{}{}
	}

	found := make([]string, 0, len(union))
	for skill := range union {
		found = append(found, skill)
	}
	sort.Strings(found)

	return Result{
		Skills:      found,
		SkillCount:  len(found),
		Categorized: e.vocab.Categorize(union),
		Methods: map[string]int{
			MethodKeyword: len(keyword),
			MethodNLP:     len(nlp),
		},
	}, nil
}

// extractByKeywords matches single-word entries against exact word tokens and
// multi-word entries by substring containment on the lowered text. Phrases can
// match across unintended token boundaries; that trade-off is accepted.
func (e *Extractor) extractByKeywords(text string) map[string]struct{} {
	lowered := strings.ToLower(text)
	found := make(map[string]struct{})

	tokens := make(map[string]struct{})
	for _, tok := range wordPattern.FindAllString(lowered, -1) {
		tokens[tok] = struct{}{}
	}

	for single := range e.singles {
		if _, ok := tokens[single]; ok {
			found[single] = struct{}{}
		}
	}
	for _, phrase := range e.phrases {
		if strings.Contains(lowered, phrase) {
			found[phrase] = struct{}{}
		}
	}
	return found
}

// extractByCandidates keeps candidate phrases that exactly equal a vocabulary
// entry. A missing or failing candidate source contributes nothing.
func (e *Extractor) extractByCandidates(text string) map[string]struct{} {
	found := make(map[string]struct{})
	if !e.candidates.Available() {
		return found
	}

	phrases, err := e.candidates.Candidates(text)
	if err != nil {
		return found
	}
	for _, phrase := range phrases {
		lowered := strings.ToLower(strings.TrimSpace(phrase))
		if lowered == "" {
			continue
		}
		if e.vocab.Contains(lowered) {
			found[lowered] = struct{}{}
		}
	}
	return found
}
