package checker

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclint/dlclint/internal/answers"
	"github.com/dlclint/dlclint/internal/schema"
)

func init() {
	Register(Check{
		ID:       "CHK-BUSINESS-NAME",
		Category: schema.CategoryBusinessName,
		Title:    "Legal business name used consistently in all documents",
		Eval:     evalBusinessName,
	})
}

var entitySuffixPattern = regexp.MustCompile(`(?i)[,]?\s+(?:LLC|L\.L\.C\.|Inc\.?|Corp\.?|Corporation|Ltd\.?|LLP|PLLC|Co\.)\s*$`)

// Each document must use the exact legal name from the questionnaire.
// Using the base name without its entity suffix is a medium cosmetic
// mismatch; a document with no trace of the name at all changes the legal
// identity and is high.
func evalBusinessName(t *Target) []schema.Issue {
	legal := t.Answers.Get(answers.KeyLegalBusinessName)
	if legal == answers.NotProvided {
		return nil
	}
	base := strings.TrimSpace(entitySuffixPattern.ReplaceAllString(legal, ""))

	var cosmetic, identity []schema.DocumentKind
	for _, kind := range []schema.DocumentKind{schema.DocSubmission, schema.DocPrivacyPolicy, schema.DocTerms} {
		text := t.DocText(kind)
		if text == "" {
			continue
		}
		lower := strings.ToLower(text)
		switch {
		case strings.Contains(lower, strings.ToLower(legal)):
			// exact legal name present
		case base != "" && strings.Contains(lower, strings.ToLower(base)):
			cosmetic = append(cosmetic, kind)
		default:
			identity = append(identity, kind)
		}
	}

	var issues []schema.Issue
	if len(identity) > 0 {
		issues = append(issues, schema.Issue{
			Severity: schema.SeverityHigh,
			Title:    "Legal business name absent from documents",
			Description: fmt.Sprintf(
				"The legal name %q does not appear in: %s. A document naming a different entity does not cover this registration.",
				legal, joinKinds(identity),
			),
			AffectedDocuments: identity,
			Recommendation:    fmt.Sprintf("Use the exact legal name %q throughout.", legal),
		})
	}
	if len(cosmetic) > 0 {
		issues = append(issues, schema.Issue{
			Severity: schema.SeverityMedium,
			Title:    "Business name used without its entity suffix",
			Description: fmt.Sprintf(
				"%s refer to %q without the entity suffix of the legal name %q.",
				joinKinds(cosmetic), base, legal,
			),
			AffectedDocuments: cosmetic,
			Recommendation:    fmt.Sprintf("Use the full legal name %q at least once in each document.", legal),
		})
	}
	return issues
}

func joinKinds(kinds []schema.DocumentKind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
