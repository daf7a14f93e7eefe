package checker

import (
	"fmt"
	"strings"

	"github.com/dlclint/dlclint/internal/schema"
)

func init() {
	Register(Check{
		ID:       "CHK-PP-SECTIONS",
		Category: schema.CategoryRequiredSections,
		Title:    "Privacy policy contains all required sections",
		Eval: func(t *Target) []schema.Issue {
			return evalSections(t, schema.DocPrivacyPolicy, privacyPolicySections)
		},
	})
	Register(Check{
		ID:       "CHK-TC-SECTIONS",
		Category: schema.CategoryRequiredSections,
		Title:    "Terms & conditions contain all required sections",
		Eval: func(t *Target) []schema.Issue {
			return evalSections(t, schema.DocTerms, termsSections)
		},
	})
}

// section is one required clause. Carrier-mandatory sections (STOP/HELP
// language, data sharing) are high when missing; best-practice sections
// are medium.
type section struct {
	name             string
	alternates       []string
	carrierMandatory bool
}

var privacyPolicySections = []section{
	{name: "Information We Collect", alternates: []string{"Information Collected"}},
	{name: "How We Use Your Information", alternates: []string{"Use of Information"}},
	{name: "SMS Communications", alternates: []string{"SMS/Text Messaging", "Text Message Communications"}, carrierMandatory: true},
	{name: "Consent Disclosure", carrierMandatory: true},
	{name: "Opting Out", alternates: []string{"Opt-Out", "How to Opt Out"}, carrierMandatory: true},
	{name: "Data Sharing", alternates: []string{"Sharing Your Information", "Third Parties"}, carrierMandatory: true},
	{name: "Data Security", alternates: []string{"Security"}},
	{name: "Data Retention", alternates: []string{"Retention"}},
	{name: "Your Rights", alternates: []string{"Your Choices"}},
	{name: "Contact Us", alternates: []string{"Contact Information"}},
}

var termsSections = []section{
	{name: "SMS Program Description", alternates: []string{"SMS Terms", "Messaging Program"}, carrierMandatory: true},
	{name: "Opting Out", alternates: []string{"Opt-Out", "Cancellation"}, carrierMandatory: true},
	{name: "Dispute Resolution", alternates: []string{"Arbitration"}},
	{name: "Governing Law", alternates: []string{"Applicable Law"}},
	{name: "Limitation of Liability", alternates: []string{"Disclaimer of Warranties"}},
}

func evalSections(t *Target, kind schema.DocumentKind, sections []section) []schema.Issue {
	text := t.DocText(kind)
	if text == "" {
		return nil // an absent document is not a missing-section finding
	}
	lower := strings.ToLower(text)

	var issues []schema.Issue
	for _, s := range sections {
		if sectionPresent(lower, s) {
			continue
		}
		severity := schema.SeverityMedium
		reason := "best practice"
		if s.carrierMandatory {
			severity = schema.SeverityHigh
			reason = "carrier-mandatory"
		}
		issues = append(issues, schema.Issue{
			Severity: severity,
			Title:    fmt.Sprintf("Missing %q section in %s", s.name, kind),
			Description: fmt.Sprintf(
				"%s has no %q section (%s). A truncated generation can also produce this finding; discard and regenerate incomplete documents instead of submitting them.",
				kind, s.name, reason,
			),
			AffectedDocuments: []schema.DocumentKind{kind},
			Recommendation:    fmt.Sprintf("Add a %q section.", s.name),
		})
	}
	return issues
}

func sectionPresent(lowerText string, s section) bool {
	if strings.Contains(lowerText, strings.ToLower(s.name)) {
		return true
	}
	for _, alt := range s.alternates {
		if strings.Contains(lowerText, strings.ToLower(alt)) {
			return true
		}
	}
	return false
}
