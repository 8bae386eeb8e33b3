package extraction

import (
	"errors"
	"reflect"
	"testing"

	"hiresight-ml/internal/skills"
)

func testVocabulary() *skills.Vocabulary {
	return skills.FromMap(map[string][]string{
		"languages": {"Python", "SQL", "Java"},
		"cloud":     {"AWS", "Google Cloud"},
		"practices": {"Machine Learning"},
	})
}

// stubSource returns fixed candidate phrases.
type stubSource struct {
	phrases []string
	err     error
}

func (s stubSource) Available() bool { return true }

func (s stubSource) Candidates(string) ([]string, error) { return s.phrases, s.err }

func TestExtractSkillsEmptyText(t *testing.T) {
	e := New(testVocabulary(), Unavailable())
	_, err := e.ExtractSkills("   ")
	if !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
}

func TestExtractSkillsKeywordSingleWordNeedsExactToken(t *testing.T) {
	e := New(testVocabulary(), Unavailable())

	result, err := e.ExtractSkills("Experienced Python developer with AWS skills")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := []string{"aws", "python"}
	if !reflect.DeepEqual(result.Skills, want) {
		t.Fatalf("expected %v, got %v", want, result.Skills)
	}
	if result.SkillCount != 2 {
		t.Fatalf("expected skill_count 2, got %d", result.SkillCount)
	}
	wantCats := map[string][]string{
		"languages": {"python"},
		"cloud":     {"aws"},
	}
	if !reflect.DeepEqual(result.Categorized, wantCats) {
		t.Fatalf("expected %v, got %v", wantCats, result.Categorized)
	}
}

func TestExtractSkillsNoPartialWordMatch(t *testing.T) {
	e := New(testVocabulary(), Unavailable())

	// "javascript" contains "java" as a substring but not as a token.
	result, err := e.ExtractSkills("Wrote lots of javascript")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(result.Skills) != 0 {
		t.Fatalf("expected no skills, got %v", result.Skills)
	}
}

func TestExtractSkillsPhraseSubstringMatch(t *testing.T) {
	e := New(testVocabulary(), Unavailable())

	result, err := e.ExtractSkills("Shipped machine learning pipelines on Google Cloud")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := []string{"google cloud", "machine learning"}
	if !reflect.DeepEqual(result.Skills, want) {
		t.Fatalf("expected %v, got %v", want, result.Skills)
	}
}

func TestExtractSkillsCaseInsensitive(t *testing.T) {
	e := New(testVocabulary(), Unavailable())

	result, err := e.ExtractSkills("PYTHON and sql and AwS")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := []string{"aws", "python", "sql"}
	if !reflect.DeepEqual(result.Skills, want) {
		t.Fatalf("expected %v, got %v", want, result.Skills)
	}
}

func TestExtractSkillsUnionOfMethods(t *testing.T) {
	// The stub source contributes "java"; the keyword method finds "python".
	e := New(testVocabulary(), stubSource{phrases: []string{"Java", "not a skill"}})

	result, err := e.ExtractSkills("Python shop")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := []string{"java", "python"}
	if !reflect.DeepEqual(result.Skills, want) {
		t.Fatalf("expected %v, got %v", want, result.Skills)
	}
	if result.Methods[MethodKeyword] != 1 {
		t.Fatalf("expected keyword count 1, got %d", result.Methods[MethodKeyword])
	}
	if result.Methods[MethodNLP] != 1 {
		t.Fatalf("expected nlp count 1, got %d", result.Methods[MethodNLP])
	}
}

func TestExtractSkillsMethodCountsOverlap(t *testing.T) {
	// Both methods find "python"; per-method counts are pre-union.
	e := New(testVocabulary(), stubSource{phrases: []string{"python"}})

	result, err := e.ExtractSkills("A python role")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if result.SkillCount != 1 {
		t.Fatalf("expected union size 1, got %d", result.SkillCount)
	}
	if got := result.Methods[MethodKeyword] + result.Methods[MethodNLP]; got != 2 {
		t.Fatalf("expected method counts to sum to 2, got %d", got)
	}
}

func TestExtractSkillsCandidateSourceErrorIgnored(t *testing.T) {
	e := New(testVocabulary(), stubSource{err: errors.New("model failed")})

	result, err := e.ExtractSkills("Python everywhere")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := []string{"python"}
	if !reflect.DeepEqual(result.Skills, want) {
		t.Fatalf("expected %v, got %v", want, result.Skills)
	}
	if result.Methods[MethodNLP] != 0 {
		t.Fatalf("expected nlp count 0 on source error, got %d", result.Methods[MethodNLP])
	}
}

func TestExtractSkillsUnavailableSourceReportsZero(t *testing.T) {
	e := New(testVocabulary(), Unavailable())
	if e.NLPAvailable() {
		t.Fatalf("expected NLP unavailable")
	}

	result, err := e.ExtractSkills("Python and aws")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if result.Methods[MethodNLP] != 0 {
		t.Fatalf("expected nlp count 0, got %d", result.Methods[MethodNLP])
	}
}

func TestExtractSkillsSubsetOfVocabulary(t *testing.T) {
	vocab := testVocabulary()
	e := New(vocab, stubSource{phrases: []string{"aws", "random phrase"}})

	result, err := e.ExtractSkills("python sql aws google cloud kubernetes terraform")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	for _, skill := range result.Skills {
		if !vocab.Contains(skill) {
			t.Fatalf("extracted skill %q not in vocabulary", skill)
		}
	}
}

func TestExtractSkillsEmptyVocabulary(t *testing.T) {
	e := New(skills.FromMap(nil), Unavailable())

	result, err := e.ExtractSkills("python aws docker")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if result.SkillCount != 0 {
		t.Fatalf("expected no skills with empty vocabulary, got %v", result.Skills)
	}
}
