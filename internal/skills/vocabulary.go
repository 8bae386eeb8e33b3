package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Vocabulary is the curated category -> skills mapping plus a derived
// flattened lowercase set. It is built once at startup and read-only
// afterwards, so concurrent use needs no locking.
type Vocabulary struct {
	categories map[string][]string
	names      []string
	flat       map[string]struct{}
}

// Load reads a category -> skills JSON file. On failure it returns an empty
// vocabulary together with the error: extraction then degrades to finding
// nothing rather than taking the process down, and callers can detect the
// condition through Size() == 0.
func Load(path string) (*Vocabulary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return empty(), fmt.Errorf("read skills file %s: %w", path, err)
	}

	var categories map[string][]string
	if err := json.Unmarshal(raw, &categories); err != nil {
		return empty(), fmt.Errorf("parse skills file %s: %w", path, err)
	}

	return FromMap(categories), nil
}

// FromMap builds a vocabulary from an in-memory category map.
func FromMap(categories map[string][]string) *Vocabulary {
	v := &Vocabulary{
		categories: make(map[string][]string, len(categories)),
		flat:       make(map[string]struct{}),
	}
	for name, entries := range categories {
		kept := make([]string, 0, len(entries))
		for _, skill := range entries {
			trimmed := strings.TrimSpace(skill)
			if trimmed == "" {
				continue
			}
			kept = append(kept, trimmed)
			v.flat[strings.ToLower(trimmed)] = struct{}{}
		}
		v.categories[name] = kept
		v.names = append(v.names, name)
	}
	sort.Strings(v.names)
	return v
}

func empty() *Vocabulary {
	return &Vocabulary{
		categories: map[string][]string{},
		flat:       map[string]struct{}{},
	}
}

// Size returns the number of distinct skills in the flattened set.
func (v *Vocabulary) Size() int {
	return len(v.flat)
}

// Contains reports whether the lowercased candidate is a known skill.
func (v *Vocabulary) Contains(candidate string) bool {
	_, ok := v.flat[strings.ToLower(candidate)]
	return ok
}

// Flattened returns the lowercase skill set as a sorted slice.
func (v *Vocabulary) Flattened() []string {
	out := make([]string, 0, len(v.flat))
	for skill := range v.flat {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// All returns the category map with canonical casing.
func (v *Vocabulary) All() map[string][]string {
	out := make(map[string][]string, len(v.categories))
	for name, entries := range v.categories {
		out[name] = append([]string(nil), entries...)
	}
	return out
}

// Categorize partitions an extracted lowercase skill set by vocabulary
// category. Skills keep the category's entry order; categories with no
// matches are omitted.
func (v *Vocabulary) Categorize(extracted map[string]struct{}) map[string][]string {
	out := make(map[string][]string)
	for _, name := range v.names {
		var matched []string
		for _, skill := range v.categories[name] {
			if _, ok := extracted[strings.ToLower(skill)]; ok {
				matched = append(matched, strings.ToLower(skill))
			}
		}
		if len(matched) > 0 {
			out[name] = matched
		}
	}
	return out
}

// Search returns sorted vocabulary entries containing the query,
// case-insensitively.
func (v *Vocabulary) Search(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var matches []string
	for skill := range v.flat {
		if strings.Contains(skill, q) {
			matches = append(matches, skill)
		}
	}
	sort.Strings(matches)
	return matches
}
