package checker

import (
	"fmt"

	"github.com/dlclint/dlclint/internal/schema"
)

func init() {
	Register(Check{
		ID:       "CHK-VERSION-COHORT",
		Category: schema.CategoryVersionCohort,
		Title:    "Documents come from the same generation round",
		Eval:     evalVersionCohort,
	})
}

// Documents are independently regenerable; checking a policy against a
// submission from a different generation round silently compares stale
// text. When version numbers are carried and disagree, that is a high
// finding. Version-less sets pass: versions are optional input.
func evalVersionCohort(t *Target) []schema.Issue {
	versions := t.Set.Versions()
	if len(versions) < 2 {
		return nil
	}
	first := versions[0]
	for _, v := range versions[1:] {
		if v != first {
			return []schema.Issue{{
				Severity: schema.SeverityHigh,
				Title:    "Stale submission language: mixed document versions",
				Description: fmt.Sprintf(
					"The document set mixes generation rounds (versions %v). Cross-document checks against a stale cohort are unreliable; regenerate so all three documents share a version.",
					versions,
				),
				AffectedDocuments: []schema.DocumentKind{
					schema.DocSubmission, schema.DocPrivacyPolicy, schema.DocTerms,
				},
				Recommendation: "Re-run analysis on a single same-version cohort.",
			}}
		}
	}
	return nil
}
