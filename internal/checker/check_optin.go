package checker

import (
	"strings"

	"github.com/dlclint/dlclint/internal/industry"
	"github.com/dlclint/dlclint/internal/schema"
)

func init() {
	Register(Check{
		ID:              "CHK-OPTIN-COVERAGE",
		Category:        schema.CategoryOptInConfirmation,
		Title:           "Opt-in confirmation covers the registered program types",
		NeedsSubmission: true,
		Eval:            evalOptInCoverage,
	})
}

var (
	marketingWords     = []string{"marketing", "promotional", "offers"}
	transactionalWords = []string{"transactional", "appointment", "reminder", "alert", "notification", "account", "order", "update"}
)

// An unrestricted business running both program types must reference both
// in the opt-in confirmation; a restricted business must reference only
// the transactional program.
func evalOptInCoverage(t *Target) []schema.Issue {
	msg := strings.ToLower(t.Sub.OptInMessage)
	if strings.TrimSpace(msg) == "" {
		return nil
	}
	mentionsMarketing := containsAny(msg, marketingWords)
	mentionsTransactional := containsAny(msg, transactionalWords)

	issue := func(desc, rec string) []schema.Issue {
		return []schema.Issue{{
			Severity:          schema.SeverityMedium,
			Title:             "Opt-in confirmation does not match program coverage",
			Description:       desc,
			AffectedDocuments: []schema.DocumentKind{schema.DocSubmission},
			Recommendation:    rec,
		}}
	}

	if t.Class.Tier == industry.TierRestricted {
		if mentionsMarketing {
			return issue(
				"The opt-in confirmation references a marketing program, but restricted-tier businesses register transactional messaging only.",
				"Remove marketing references from the opt-in confirmation.",
			)
		}
		return nil
	}

	if t.Answers.HasMarketing() && t.Answers.HasTransactional() {
		if !mentionsMarketing || !mentionsTransactional {
			return issue(
				"The business registers both marketing and transactional programs, but the opt-in confirmation does not reference both.",
				"Mention both the marketing and transactional programs in the opt-in confirmation.",
			)
		}
	}
	return nil
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
