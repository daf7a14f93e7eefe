package checker

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclint/dlclint/internal/industry"
	"github.com/dlclint/dlclint/internal/schema"
)

func init() {
	Register(Check{
		ID:              "CHK-RESTRICTED",
		Category:        schema.CategoryRestrictedIndustry,
		Title:           "Restricted industry sends transactional messages only",
		NeedsSubmission: true,
		RestrictedOnly:  true,
		Eval:            evalRestricted,
	})
}

// noMarketingPattern detects a prohibition statement: the documents must
// say, one way or another, that no marketing or promotional messages are
// sent.
var noMarketingPattern = regexp.MustCompile(`(?i)(?:do(?:es)?\s+not|will\s+not|never)\s+(?:send|be\s+sent|receive|contain)\s+(?:any\s+)?(?:marketing|promotional)|transactional\s+(?:messages?|purposes?|communications?)\s+only`)

// promotionalPhrases are invitation and offer markers. A compliant
// transactional message reads as a response to something the recipient
// initiated, never as an invitation.
var promotionalPhrases = []string{
	"ask us about", "check out", "don't miss", "book now",
	"special offer", "limited time", "discount", "% off",
	"sale", "promotion", "new service", "introducing",
	"upgrade today", "refer a friend", "sign up for",
}

func evalRestricted(t *Target) []schema.Issue {
	var issues []schema.Issue

	// Prohibition sentences must appear in both policy documents.
	for _, kind := range []schema.DocumentKind{schema.DocPrivacyPolicy, schema.DocTerms} {
		text := t.DocText(kind)
		if text == "" {
			continue
		}
		if !noMarketingPattern.MatchString(text) {
			issues = append(issues, schema.Issue{
				Severity: schema.SeverityHigh,
				Title:    fmt.Sprintf("No marketing prohibition statement in %s", kind),
				Description: fmt.Sprintf(
					"%s never states that marketing or promotional messages are not sent. Restricted industries (%s) must carry this prohibition in both policy documents.",
					kind, strings.Join(t.Class.Restricted, ", "),
				),
				AffectedDocuments: []schema.DocumentKind{kind},
				Recommendation:    "State explicitly that messages are transactional only and no marketing messages are sent.",
			})
		}
	}

	// The marketing checkbox must read literally "Not applicable".
	if !t.Sub.MarketingDisabled() {
		issues = append(issues, schema.Issue{
			Severity: schema.SeverityCritical,
			Title:    "Marketing fields not nulled for restricted industry",
			Description: fmt.Sprintf(
				"The submission carries marketing content (%q) but the business tier is restricted; the marketing use case and checkbox must both read \"Not applicable\".",
				firstNonEmpty(t.Sub.MarketingUseCase, t.Sub.MarketingCheckbox),
			),
			AffectedDocuments: []schema.DocumentKind{schema.DocSubmission},
			Recommendation:    "Set marketing_use_case and marketing_consent_checkbox to \"Not applicable\".",
		})
	}

	// Sample messages and the use case must pass the transactional test.
	type surface struct{ name, text string }
	surfaces := []surface{{"use_case_description", t.Sub.UseCaseDescription}}
	for i, s := range t.Sub.SampleMessages {
		surfaces = append(surfaces, surface{fmt.Sprintf("sample_messages[%d]", i), s})
	}
	rules := rulesForSelection(t.Class.Restricted)
	for _, sf := range surfaces {
		name, text := sf.name, sf.text
		phrase := promotionalMarker(text)
		if phrase == "" {
			continue
		}
		issues = append(issues, schema.Issue{
			Severity: schema.SeverityCritical,
			Title:    fmt.Sprintf("Promotional language in %s", name),
			Description: fmt.Sprintf(
				"%s contains the promotional marker %q. Restricted-industry messages must read as a response to a recipient-initiated action, not an invitation. Permitted categories: %s.",
				name, phrase, strings.Join(rules.allowed, "; "),
			),
			AffectedDocuments: []schema.DocumentKind{schema.DocSubmission},
			Recommendation:    "Rewrite as a transactional message tied to an action the recipient took.",
		})
	}
	return issues
}

// promotionalMarker returns the first promotional phrase found, or "".
func promotionalMarker(text string) string {
	lower := strings.ToLower(text)
	for _, p := range promotionalPhrases {
		if strings.Contains(lower, p) {
			return p
		}
	}
	return ""
}

type mergedRules struct {
	allowed    []string
	prohibited []string
}

// rulesForSelection merges the per-industry rules of every selected
// restricted industry.
func rulesForSelection(selected []string) mergedRules {
	var m mergedRules
	for _, label := range selected {
		if r, ok := industry.RuleFor(label); ok {
			m.allowed = append(m.allowed, r.Allowed...)
			m.prohibited = append(m.prohibited, r.Prohibited...)
		}
	}
	return m
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if strings.TrimSpace(s) != "" && !strings.EqualFold(strings.TrimSpace(s), "Not applicable") {
			return s
		}
	}
	return ""
}
