package extraction

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// CandidateSource produces noun-phrase and named-entity candidate strings for
// a text blob. The implementation is chosen once at startup; extraction never
// requires one to be present.
type CandidateSource interface {
	Available() bool
	Candidates(text string) ([]string, error)
}

// entityLabels are the entity classes considered skill-like: organizations,
// products, places and languages.
var entityLabels = map[string]struct{}{
	"ORG":      {},
	"PRODUCT":  {},
	"GPE":      {},
	"LANGUAGE": {},
}

// nounTags marks part-of-speech tags that may participate in a noun phrase.
var nounTags = map[string]struct{}{
	"NN":   {},
	"NNS":  {},
	"NNP":  {},
	"NNPS": {},
}

type proseSource struct{}

// NewProseSource returns a CandidateSource backed by the prose NLP library.
func NewProseSource() CandidateSource {
	return proseSource{}
}

func (proseSource) Available() bool { return true }

// Candidates tokenizes and tags the text, then collects noun-phrase runs and
// skill-like named entities.
func (proseSource) Candidates(text string) ([]string, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(candidate string) {
		candidate = strings.ToLower(strings.TrimSpace(candidate))
		if candidate == "" {
			return
		}
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
	}

	var run []string
	hasNoun := false
	flush := func() {
		if hasNoun {
			add(strings.Join(run, " "))
		}
		run = run[:0]
		hasNoun = false
	}

	for _, tok := range doc.Tokens() {
		if _, noun := nounTags[tok.Tag]; noun {
			run = append(run, tok.Text)
			hasNoun = true
			add(tok.Text)
			continue
		}
		// An adjective may open or extend a phrase, but a run without a
		// noun is discarded.
		if tok.Tag == "JJ" {
			run = append(run, tok.Text)
			continue
		}
		flush()
	}
	flush()

	for _, ent := range doc.Entities() {
		if _, ok := entityLabels[ent.Label]; ok {
			add(ent.Text)
		}
	}

	return out, nil
}

type unavailableSource struct{}

// Unavailable returns the no-op CandidateSource used when NLP is disabled.
func Unavailable() CandidateSource {
	return unavailableSource{}
}

func (unavailableSource) Available() bool { return false }

func (unavailableSource) Candidates(string) ([]string, error) { return nil, nil }
