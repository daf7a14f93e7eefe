package docset

import (
	"testing"

	"github.com/dlclint/dlclint/internal/schema"
)

func TestParse_FullSet(t *testing.T) {
	data := []byte(`{
		"submission_language": {"content": "{}", "version": 2},
		"privacy_policy": {"content": "<html></html>", "version": 2},
		"terms_conditions": {"content": "<html></html>", "version": 2}
	}`)
	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if s.Get(schema.DocSubmission).Version != 2 {
		t.Errorf("submission version = %d", s.Get(schema.DocSubmission).Version)
	}
	if got := s.Versions(); len(got) != 3 {
		t.Errorf("Versions = %v, want 3 entries", got)
	}
}

func TestParse_MissingDocumentsAllowed(t *testing.T) {
	s, err := Parse([]byte(`{"privacy_policy": {"content": "<p>hi</p>"}}`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if s.Submission.Content != "" {
		t.Error("absent submission should be empty")
	}
	if got := s.Versions(); got != nil {
		t.Errorf("Versions = %v, want nil for version-less set", got)
	}
}

func TestNormalize(t *testing.T) {
	in := "line one  \r\nline two\t\n"
	want := "line one\nline two\n"
	if got := Normalize(in); got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestBlockquotes(t *testing.T) {
	html := `<h2>Consent Disclosure</h2>
<blockquote class="consent">I agree to receive <strong>texts</strong> from Acme.</blockquote>
<p>other</p>
<blockquote>Second block.</blockquote>`
	got := Blockquotes(html)
	if len(got) != 2 {
		t.Fatalf("Blockquotes len = %d, want 2: %v", len(got), got)
	}
	if got[0] != "I agree to receive texts from Acme." {
		t.Errorf("Blockquotes[0] = %q", got[0])
	}
}

func TestStripTags_Entities(t *testing.T) {
	got := StripTags("<p>Msg &amp; data rates may apply.</p>")
	if got != "Msg & data rates may apply." {
		t.Errorf("StripTags = %q", got)
	}
}
