package docset

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dlclint/dlclint/internal/schema"
)

// Document is one generated artifact with its generation-round version.
type Document struct {
	Content string `json:"content"`
	Version int    `json:"version,omitempty"`
}

// Set is one complete cohort of the three generated artifacts. Documents
// are independently regenerable; a checker run should always see one
// same-version cohort, and mixed versions are flagged as stale.
type Set struct {
	Submission    Document `json:"submission_language"`
	PrivacyPolicy Document `json:"privacy_policy"`
	Terms         Document `json:"terms_conditions"`
}

// Load reads a document set JSON file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document set: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals a document set. Absent documents are allowed; the
// checker degrades to fewer passing checks rather than failing.
func Parse(data []byte) (*Set, error) {
	var s Set
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing document set: %w", err)
	}
	return &s, nil
}

// Get returns the document for kind.
func (s *Set) Get(kind schema.DocumentKind) Document {
	switch kind {
	case schema.DocSubmission:
		return s.Submission
	case schema.DocPrivacyPolicy:
		return s.PrivacyPolicy
	case schema.DocTerms:
		return s.Terms
	}
	return Document{}
}

// Versions returns the non-zero version numbers present in the set.
func (s *Set) Versions() []int {
	var out []int
	for _, d := range []Document{s.Submission, s.PrivacyPolicy, s.Terms} {
		if d.Version > 0 {
			out = append(out, d.Version)
		}
	}
	return out
}

// Normalize converts CRLF to LF and trims trailing whitespace from each
// line, so comparisons survive editor and transport differences.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
