package checker

import (
	"fmt"
	"strings"

	"github.com/dlclint/dlclint/internal/consent"
	"github.com/dlclint/dlclint/internal/schema"
)

func init() {
	Register(Check{
		ID:       "CHK-CARRIER-LIST",
		Category: schema.CategoryCarrierList,
		Title:    "Carrier list matches the supported-carrier set",
		Eval:     evalCarrierList,
	})
}

// If a document names carriers at all, the list must be exactly the
// supported set. Sprint no longer exists as a carrier; naming it is the
// single high finding regardless of how many documents repeat it.
func evalCarrierList(t *Target) []schema.Issue {
	kinds := []schema.DocumentKind{schema.DocSubmission, schema.DocPrivacyPolicy, schema.DocTerms}

	var sprintDocs []schema.DocumentKind
	missingByDoc := make(map[schema.DocumentKind][]string)

	for _, kind := range kinds {
		text := t.DocText(kind)
		if text == "" {
			continue
		}
		lower := strings.ToLower(text)

		named := 0
		var missing []string
		for _, c := range consent.CarrierList {
			if strings.Contains(lower, strings.ToLower(c)) {
				named++
			} else {
				missing = append(missing, c)
			}
		}
		hasSprint := strings.Contains(lower, "sprint")

		// A carrier list is "present" when at least two carriers are named.
		if named+boolToInt(hasSprint) < 2 {
			continue
		}
		if hasSprint {
			sprintDocs = append(sprintDocs, kind)
		}
		if len(missing) > 0 {
			missingByDoc[kind] = missing
		}
	}

	var issues []schema.Issue
	if len(sprintDocs) > 0 {
		issues = append(issues, schema.Issue{
			Severity: schema.SeverityHigh,
			Title:    "Carrier list names Sprint",
			Description: "Sprint appears in a carrier list. Sprint merged into T-Mobile and must not be named; carrier reviewers treat its presence as an outdated document. Required list: " +
				strings.Join(consent.CarrierList, ", ") + ".",
			AffectedDocuments: sprintDocs,
			Recommendation:    "Remove Sprint and use the supported-carrier list exactly.",
		})
	}
	for _, kind := range kinds {
		missing, ok := missingByDoc[kind]
		if !ok {
			continue
		}
		issues = append(issues, schema.Issue{
			Severity: schema.SeverityMedium,
			Title:    fmt.Sprintf("Incomplete carrier list in %s", kind),
			Description: fmt.Sprintf(
				"The carrier list in %s omits: %s. When carriers are listed, the list must be exactly: %s.",
				kind, strings.Join(missing, ", "), strings.Join(consent.CarrierList, ", "),
			),
			AffectedDocuments: []schema.DocumentKind{kind},
			Recommendation:    "List all six supported carriers or none.",
		})
	}
	return issues
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
