package checker

import (
	"fmt"
	"regexp"

	"github.com/dlclint/dlclint/internal/schema"
)

func init() {
	Register(Check{
		ID:       "CHK-ADDRESS-FORMAT",
		Category: schema.CategoryAddressFormat,
		Title:    "Address abbreviation style uniform across documents",
		Eval:     evalAddressFormat,
	})
}

var (
	suitePattern = regexp.MustCompile(`\bSuite\b`)
	stePattern   = regexp.MustCompile(`\bSte\.?\s`)
)

// "Suite" and "Ste" must not be mixed. Mixing inside one document is a
// medium finding; mixing only across documents is low.
func evalAddressFormat(t *Target) []schema.Issue {
	kinds := []schema.DocumentKind{schema.DocSubmission, schema.DocPrivacyPolicy, schema.DocTerms}

	var suiteDocs, steDocs, mixedDocs []schema.DocumentKind
	for _, kind := range kinds {
		text := t.DocText(kind)
		if text == "" {
			continue
		}
		hasSuite := suitePattern.MatchString(text)
		hasSte := stePattern.MatchString(text)
		switch {
		case hasSuite && hasSte:
			mixedDocs = append(mixedDocs, kind)
		case hasSuite:
			suiteDocs = append(suiteDocs, kind)
		case hasSte:
			steDocs = append(steDocs, kind)
		}
	}

	if len(mixedDocs) > 0 {
		return []schema.Issue{{
			Severity: schema.SeverityMedium,
			Title:    "Mixed Suite/Ste abbreviation within a document",
			Description: fmt.Sprintf(
				"Both \"Suite\" and \"Ste\" appear inside: %s. Pick one form and use it everywhere.",
				joinKinds(mixedDocs),
			),
			AffectedDocuments: mixedDocs,
			Recommendation:    "Normalize the business address to a single abbreviation style.",
		}}
	}
	if len(suiteDocs) > 0 && len(steDocs) > 0 {
		affected := append(append([]schema.DocumentKind{}, suiteDocs...), steDocs...)
		return []schema.Issue{{
			Severity: schema.SeverityLow,
			Title:    "Address abbreviation differs across documents",
			Description: fmt.Sprintf(
				"%s write \"Suite\" while %s write \"Ste\". The address should read identically in every document.",
				joinKinds(suiteDocs), joinKinds(steDocs),
			),
			AffectedDocuments: affected,
			Recommendation:    "Normalize the business address to a single abbreviation style.",
		}}
	}
	return nil
}
