package checker

import (
	"fmt"
	"strings"

	"github.com/dlclint/dlclint/internal/schema"
)

func init() {
	Register(Check{
		ID:              "CHK-FORM-PLURALITY",
		Category:        schema.CategoryFormLanguage,
		Title:           "Form secondary text matches the checkbox count",
		NeedsSubmission: true,
		Eval:            evalFormPlurality,
	})
}

const (
	pluralForm   = "checking the boxes above"
	singularForm = "checking the box above"
	// phoneNumberForm implies a phone number alone constitutes consent,
	// which is false; its presence is an automatic high issue.
	phoneNumberForm = "providing your phone number and checking the box"
)

func evalFormPlurality(t *Target) []schema.Issue {
	text := strings.ToLower(t.Sub.FormSecondaryText)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if strings.Contains(text, phoneNumberForm) {
		return []schema.Issue{{
			Severity: schema.SeverityHigh,
			Title:    "Form text implies phone number alone is consent",
			Description: fmt.Sprintf(
				"The form secondary text contains %q. Providing a phone number does not constitute SMS consent; only the checkbox action does.",
				phoneNumberForm,
			),
			AffectedDocuments: []schema.DocumentKind{schema.DocSubmission},
			Recommendation:    fmt.Sprintf("Reword to %q or %q.", "By "+pluralForm+"...", "By "+singularForm+"..."),
		}}
	}

	boxes := len(t.Sub.ConsentBlocks())
	want, wrong := singularForm, pluralForm
	if boxes >= 2 {
		want, wrong = pluralForm, singularForm
	}
	if strings.Contains(text, want) {
		return nil
	}

	desc := fmt.Sprintf("The form presents %d consent checkbox(es); the secondary text must say %q", boxes, want)
	if strings.Contains(text, wrong) {
		desc += fmt.Sprintf(" but says %q instead", wrong)
	} else {
		desc += " but does not"
	}
	return []schema.Issue{{
		Severity:          schema.SeverityMedium,
		Title:             "Form text plurality does not match checkbox count",
		Description:       desc + ".",
		AffectedDocuments: []schema.DocumentKind{schema.DocSubmission},
		Recommendation:    fmt.Sprintf("Use the %q wording.", want),
	}}
}
