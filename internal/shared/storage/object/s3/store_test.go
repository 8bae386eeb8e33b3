package s3

import "testing"

func TestNormalizePrefix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/", ""},
		{"uploads", "uploads"},
		{"/uploads/", "uploads"},
		{"  uploads/resumes/  ", "uploads/resumes"},
	}
	for _, tc := range cases {
		if got := normalizePrefix(tc.in); got != tc.want {
			t.Fatalf("normalizePrefix(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPrefix(t *testing.T) {
	if got := applyPrefix("", "ns/file.pdf"); got != "ns/file.pdf" {
		t.Fatalf("empty prefix: got %q", got)
	}
	if got := applyPrefix("uploads", "ns/file.pdf"); got != "uploads/ns/file.pdf" {
		t.Fatalf("with prefix: got %q", got)
	}
}
