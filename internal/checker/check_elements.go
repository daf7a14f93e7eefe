package checker

import (
	"fmt"

	"github.com/dlclint/dlclint/internal/answers"
	"github.com/dlclint/dlclint/internal/consent"
	"github.com/dlclint/dlclint/internal/schema"
)

func init() {
	Register(Check{
		ID:       "CHK-CONSENT-ELEMENTS",
		Category: schema.CategoryConsentElements,
		Title:    "Consent disclosures contain all six mandatory elements",
		Eval:     evalConsentElements,
	})
}

// Every consent block in the privacy policy and terms is run through the
// disclosure validator; each missing element yields one critical issue per
// document. A defect found here may also surface from the required-section
// check — the issue list is a union, not deduplicated.
func evalConsentElements(t *Target) []schema.Issue {
	var issues []schema.Issue
	name := t.Answers.Get(answers.KeyLegalBusinessName)

	for _, kind := range []schema.DocumentKind{schema.DocPrivacyPolicy, schema.DocTerms} {
		blocks := t.Blocks(kind)
		if len(blocks) == 0 {
			continue // absence of the blockquote itself is CHK-CONSENT-TEXT's finding
		}

		missing := make(map[consent.Element]bool)
		for _, block := range blocks {
			auth := consent.Authority{
				BusinessName: name,
				Frequency:    t.AuthorityFrequency(block),
			}
			res := consent.Validate(block, auth)
			for _, e := range res.Missing {
				missing[e] = true
			}
		}

		for _, e := range consent.Elements {
			if !missing[e] {
				continue
			}
			desc := fmt.Sprintf("A consent disclosure in %s is missing the mandatory element %q.", kind, e)
			if phrase, ok := consent.FixedPhrases[e]; ok {
				desc += fmt.Sprintf(" The exact wording %q is required; reworded variants do not pass carrier review.", phrase)
			}
			issues = append(issues, schema.Issue{
				Severity:          schema.SeverityCritical,
				Title:             fmt.Sprintf("Missing consent element %s in %s", e, kind),
				Description:       desc,
				AffectedDocuments: []schema.DocumentKind{kind},
				Recommendation:    "Include all six mandatory elements in every consent disclosure.",
			})
		}
	}
	return issues
}
