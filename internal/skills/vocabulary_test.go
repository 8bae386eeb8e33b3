package skills

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileDegradesToEmpty(t *testing.T) {
	vocab, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if vocab == nil {
		t.Fatalf("expected usable vocabulary even on failure")
	}
	if vocab.Size() != 0 {
		t.Fatalf("expected empty vocabulary, got size %d", vocab.Size())
	}
}

func TestLoadInvalidJSONDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	vocab, err := Load(path)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if vocab.Size() != 0 {
		t.Fatalf("expected empty vocabulary, got size %d", vocab.Size())
	}
}

func TestLoadValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.json")
	payload := `{"languages": ["Python", "SQL"], "cloud": ["AWS"]}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	vocab, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if vocab.Size() != 3 {
		t.Fatalf("expected 3 skills, got %d", vocab.Size())
	}
	if !vocab.Contains("python") || !vocab.Contains("AWS") {
		t.Fatalf("expected case-insensitive membership")
	}
}

func TestFlattenedLowercasesAndDedupes(t *testing.T) {
	vocab := FromMap(map[string][]string{
		"a": {"Python", "python "},
		"b": {"AWS"},
	})
	got := vocab.Flattened()
	want := []string{"aws", "python"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCategorizeOmitsEmptyCategories(t *testing.T) {
	vocab := FromMap(map[string][]string{
		"languages": {"Python", "SQL"},
		"cloud":     {"AWS"},
	})
	extracted := map[string]struct{}{
		"python": {},
		"aws":    {},
	}
	got := vocab.Categorize(extracted)
	want := map[string][]string{
		"languages": {"python"},
		"cloud":     {"aws"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCategorizeKeepsVocabularyOrder(t *testing.T) {
	vocab := FromMap(map[string][]string{
		"tools": {"Docker", "Kubernetes", "Terraform"},
	})
	extracted := map[string]struct{}{
		"terraform": {},
		"docker":    {},
	}
	got := vocab.Categorize(extracted)
	want := map[string][]string{"tools": {"docker", "terraform"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSearch(t *testing.T) {
	vocab := FromMap(map[string][]string{
		"languages": {"Python", "JavaScript", "TypeScript"},
	})
	got := vocab.Search("script")
	want := []string{"javascript", "typescript"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if vocab.Search("") != nil {
		t.Fatalf("expected nil for empty query")
	}
}
