package constraints

import (
	"fmt"
	"strings"
)

// FormatForPrompt returns a string suitable for injection into the
// generator system prompt. Every line is a hard requirement; the checker
// enforces the same rules after generation.
func (c *GenerationConstraints) FormatForPrompt() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Business: %s (%s)\n", c.LegalBusinessName, c.BusinessState))
	sb.WriteString(fmt.Sprintf("Tier: %s\n", c.Tier))

	sb.WriteString("\nRequired phrases (verbatim, character for character, in every consent disclosure):\n")
	for _, ph := range c.RequiredPhrases {
		sb.WriteString(fmt.Sprintf("- %q\n", ph))
	}

	sb.WriteString("\nCarrier list (when carriers are named, use exactly this list, never Sprint):\n")
	for _, carrier := range c.CarrierList {
		sb.WriteString(fmt.Sprintf("- %s\n", carrier))
	}

	sb.WriteString("\nMessage frequency (copy the questionnaire value verbatim, never substitute \"message frequency varies\"):\n")
	if c.MarketingFrequency != "" {
		sb.WriteString(fmt.Sprintf("- marketing: %q\n", c.MarketingFrequency))
	}
	if c.TransactionalFrequency != "" {
		sb.WriteString(fmt.Sprintf("- transactional: %q\n", c.TransactionalFrequency))
	}

	if c.CheckboxForm == "plural" {
		sb.WriteString("\nConsent form: two checkboxes. Secondary form text must read \"checking the boxes above\" (plural).\n")
	} else {
		sb.WriteString("\nConsent form: one checkbox. Secondary form text must read \"checking the box above\" (singular).\n")
	}
	sb.WriteString("Consent is given by checking the box, never by providing a phone number.\n")

	if c.NullMarketingFields {
		sb.WriteString("\nRestricted industry: set every marketing field literally to \"Not applicable\". No promotional content anywhere, including sample messages.\n")
	}
	if len(c.ProhibitedContent) > 0 {
		sb.WriteString("\nProhibited message content:\n")
		for _, p := range c.ProhibitedContent {
			sb.WriteString(fmt.Sprintf("- %s\n", p))
		}
	}
	if len(c.AllowedContent) > 0 {
		sb.WriteString("\nAllowed message content:\n")
		for _, a := range c.AllowedContent {
			sb.WriteString(fmt.Sprintf("- %s\n", a))
		}
	}
	if len(c.RegulatoryNotes) > 0 {
		sb.WriteString("\nRegulatory context:\n")
		for _, n := range c.RegulatoryNotes {
			sb.WriteString(fmt.Sprintf("- %s\n", n))
		}
	}

	sb.WriteString("\nSample messages:\n")
	for _, r := range c.SampleMessageRules {
		sb.WriteString(fmt.Sprintf("- %s\n", r))
	}
	return sb.String()
}
