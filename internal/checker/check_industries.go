package checker

import (
	"fmt"
	"strings"

	"github.com/dlclint/dlclint/internal/schema"
)

func init() {
	Register(Check{
		ID:       "CHK-UNKNOWN-INDUSTRY",
		Category: schema.CategoryIndustryVocabulary,
		Title:    "All selected industries are in the known vocabulary",
		Eval:     evalUnknownIndustry,
	})
}

// Classification fails open: an unrecognized label counts as unrestricted.
// That is a latent compliance risk if the label belongs to a newly
// regulated industry, so the fallback is surfaced here instead of staying
// silent.
func evalUnknownIndustry(t *Target) []schema.Issue {
	if len(t.Class.Unknown) == 0 {
		return nil
	}
	return []schema.Issue{{
		Severity: schema.SeverityLow,
		Title:    "Unrecognized industry selection",
		Description: fmt.Sprintf(
			"Industry label(s) not in any vocabulary: %s. They were classified as unrestricted by default; verify none belongs to a restricted or prohibited category.",
			strings.Join(t.Class.Unknown, ", "),
		),
		AffectedDocuments: []schema.DocumentKind{schema.DocSubmission},
		Recommendation:    "Review the selections against the prohibited and restricted industry lists.",
	}}
}
