package checker

import (
	"fmt"

	"github.com/dlclint/dlclint/internal/schema"
)

func init() {
	Register(Check{
		ID:       "CHK-SUBMISSION-PARSE",
		Category: schema.CategorySubmissionParse,
		Title:    "Submission language parses as structured JSON",
		Eval:     evalSubmissionParse,
	})
}

// A malformed submission produces exactly one high issue here; the checks
// that depend on it are skipped, everything else still runs.
func evalSubmissionParse(t *Target) []schema.Issue {
	if t.Sub != nil {
		return nil
	}
	return []schema.Issue{{
		Severity: schema.SeverityHigh,
		Title:    "Cannot parse submission language",
		Description: fmt.Sprintf(
			"The submission language could not be read as structured JSON (%v). All checks that compare the submission against the other documents were skipped.",
			t.SubErr,
		),
		AffectedDocuments: []schema.DocumentKind{schema.DocSubmission},
		Recommendation:    "Regenerate the submission language; it must be a JSON object with the registration form fields.",
	}}
}
