package constraints

import (
	"fmt"

	"github.com/dlclint/dlclint/internal/answers"
	"github.com/dlclint/dlclint/internal/consent"
	"github.com/dlclint/dlclint/internal/industry"
)

// GenerationConstraints is the contract handed to the external text
// generator. Generation is not trusted to honor it by construction; the
// checker re-verifies the output against the same rules afterwards.
type GenerationConstraints struct {
	Tier              industry.Tier `json:"tier"`
	LegalBusinessName string        `json:"legal_business_name"`
	BusinessState     string        `json:"business_state"`

	// RequiredPhrases must appear verbatim in every consent disclosure.
	RequiredPhrases []string `json:"required_phrases"`
	// CarrierList is the exact carrier list to use when carriers are named.
	CarrierList []string `json:"carrier_list"`

	MarketingFrequency     string `json:"marketing_frequency,omitempty"`
	TransactionalFrequency string `json:"transactional_frequency,omitempty"`

	// CheckboxForm is "plural" for two-checkbox flows ("checking the boxes
	// above"), "singular" for one-checkbox flows.
	CheckboxForm string `json:"checkbox_form"`

	// NullMarketingFields instructs the generator to set every
	// marketing-related field literally to "Not applicable".
	NullMarketingFields bool     `json:"null_marketing_fields"`
	ProhibitedContent   []string `json:"prohibited_content,omitempty"`
	AllowedContent      []string `json:"allowed_content,omitempty"`
	RegulatoryNotes     []string `json:"regulatory_notes,omitempty"`

	SampleMessageRules []string `json:"sample_message_rules"`
}

// sampleMessageRules apply to every tier.
var sampleMessageRules = []string{
	`start every sample message with the "[Business Name]:" sender prefix`,
	fmt.Sprintf("include %q verbatim in every sample message", consent.StopPhrase),
	fmt.Sprintf("include %q verbatim in every sample message", consent.RatesPhrase),
	"include no URLs of any form in sample messages",
}

// Compile produces the hard constraints for a generation request from the
// questionnaire answers and the industry classification.
func Compile(a answers.Answers, cls industry.Classification) (*GenerationConstraints, error) {
	if cls.Tier == industry.TierProhibited {
		return nil, fmt.Errorf("prohibited industry: A2P 10DLC registration is not available, nothing to generate")
	}

	c := &GenerationConstraints{
		Tier:              cls.Tier,
		LegalBusinessName: a.Get(answers.KeyLegalBusinessName),
		BusinessState:     a.Get(answers.KeyBusinessState),
		RequiredPhrases: []string{
			consent.RatesPhrase,
			consent.StopPhrase,
			consent.HelpPhrase,
			consent.NoSharePhrase,
		},
		CarrierList:        append([]string(nil), consent.CarrierList...),
		CheckboxForm:       "singular",
		SampleMessageRules: sampleMessageRules,
	}

	if a.Has(answers.KeyTransactionalFrequency) {
		c.TransactionalFrequency = a.Frequency("transactional")
	}

	if cls.Tier == industry.TierRestricted {
		c.NullMarketingFields = true
		for _, label := range cls.Restricted {
			r, ok := industry.RuleFor(label)
			if !ok {
				continue
			}
			c.ProhibitedContent = append(c.ProhibitedContent, r.Prohibited...)
			c.AllowedContent = append(c.AllowedContent, r.Allowed...)
			c.RegulatoryNotes = append(c.RegulatoryNotes, r.RegulatoryNote)
		}
		return c, nil
	}

	if a.Has(answers.KeyMarketingFrequency) {
		c.MarketingFrequency = a.Frequency("marketing")
	}
	if a.HasMarketing() && a.HasTransactional() {
		c.CheckboxForm = "plural"
	}
	return c, nil
}
