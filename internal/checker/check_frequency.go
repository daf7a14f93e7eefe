package checker

import (
	"fmt"

	"github.com/dlclint/dlclint/internal/consent"
	"github.com/dlclint/dlclint/internal/schema"
)

func init() {
	Register(Check{
		ID:              "CHK-FREQUENCY",
		Category:        schema.CategoryFrequencyConsistency,
		Title:           "Message frequency consistent across all surfaces",
		NeedsSubmission: true,
		Eval:            evalFrequency,
	})
}

type freqSurface struct {
	name string
	text string
	doc  schema.DocumentKind
}

// Every surface stating a frequency must resolve to the authoritative
// questionnaire value. Substituting "varies" for a specific number is a
// high issue on its own.
func evalFrequency(t *Target) []schema.Issue {
	surfaces := []freqSurface{
		{"use_case_description", t.Sub.UseCaseDescription, schema.DocSubmission},
		{"opt_in_message", t.Sub.OptInMessage, schema.DocSubmission},
		{"marketing_consent_checkbox", t.Sub.MarketingCheckbox, schema.DocSubmission},
		{"transactional_consent_checkbox", t.Sub.TransactionalCheckbox, schema.DocSubmission},
		{"privacy policy", t.PPText, schema.DocPrivacyPolicy},
		{"terms & conditions", t.TCText, schema.DocTerms},
	}

	var issues []schema.Issue
	for _, s := range surfaces {
		if s.text == "" {
			continue
		}
		auth := t.AuthorityFrequency(s.text)
		authCount := consent.ExtractCount(auth)
		if authCount == "" {
			continue // no specific number to enforce
		}

		embedded := consent.ExtractCount(s.text)
		if consent.SaysVaries(s.text) {
			issues = append(issues, schema.Issue{
				Severity: schema.SeverityHigh,
				Title:    fmt.Sprintf("Frequency stated as varies in %s", s.name),
				Description: fmt.Sprintf(
					"%s says message frequency varies, but the questionnaire supplies the specific value %q. A specific number always wins; \"varies\" is only acceptable when no number exists.",
					s.name, auth,
				),
				AffectedDocuments: []schema.DocumentKind{s.doc},
				Recommendation:    fmt.Sprintf("State the frequency as %q.", auth),
			})
		}
		if embedded != "" && embedded != authCount {
			issues = append(issues, schema.Issue{
				Severity: schema.SeverityHigh,
				Title:    fmt.Sprintf("Frequency mismatch in %s", s.name),
				Description: fmt.Sprintf(
					"%s states %s messages where the questionnaire value is %q.",
					s.name, embedded, auth,
				),
				AffectedDocuments: []schema.DocumentKind{s.doc},
				Recommendation:    fmt.Sprintf("Use the questionnaire frequency %q verbatim on every surface.", auth),
			})
		}
	}
	return issues
}
