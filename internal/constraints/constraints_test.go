package constraints

import (
	"strings"
	"testing"

	"github.com/dlclint/dlclint/internal/answers"
	"github.com/dlclint/dlclint/internal/industry"
)

func dualCampaignAnswers() answers.Answers {
	return answers.Answers{
		answers.KeyLegalBusinessName:      "Acme Home Services LLC",
		answers.KeyBusinessState:          "Texas",
		answers.KeyIndustries:             "Home Services",
		answers.KeyMarketingUseCase:       "Promotions and seasonal offers",
		answers.KeyMarketingFrequency:     "up to 4 msgs/mo",
		answers.KeyTransactionalUseCase:   "Appointment reminders",
		answers.KeyTransactionalFrequency: "up to 4 msgs/mo",
	}
}

func TestCompile_Unrestricted(t *testing.T) {
	a := dualCampaignAnswers()
	c, err := Compile(a, industry.Classify(a.Industries()))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if c.Tier != industry.TierUnrestricted {
		t.Fatalf("tier = %s, want unrestricted", c.Tier)
	}
	if len(c.RequiredPhrases) != 4 {
		t.Errorf("required phrases = %d, want 4", len(c.RequiredPhrases))
	}
	if c.MarketingFrequency != "up to 4 msgs/mo" {
		t.Errorf("marketing frequency = %q, want questionnaire value verbatim", c.MarketingFrequency)
	}
	if c.CheckboxForm != "plural" {
		t.Errorf("checkbox form = %q, want plural for dual campaigns", c.CheckboxForm)
	}
	if c.NullMarketingFields {
		t.Error("unrestricted tier must not null marketing fields")
	}
}

func TestCompile_SingleCampaignSingular(t *testing.T) {
	a := dualCampaignAnswers()
	delete(a, answers.KeyMarketingUseCase)
	delete(a, answers.KeyMarketingFrequency)
	c, err := Compile(a, industry.Classify(a.Industries()))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if c.CheckboxForm != "singular" {
		t.Errorf("checkbox form = %q, want singular", c.CheckboxForm)
	}
	if c.MarketingFrequency != "" {
		t.Errorf("marketing frequency = %q, want empty", c.MarketingFrequency)
	}
}

func TestCompile_RestrictedNullsMarketing(t *testing.T) {
	a := dualCampaignAnswers()
	a[answers.KeyIndustries] = "Healthcare or Medical Services"
	c, err := Compile(a, industry.Classify(a.Industries()))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !c.NullMarketingFields {
		t.Fatal("restricted tier must null marketing fields")
	}
	// Marketing answers are present but never compiled into constraints.
	if c.MarketingFrequency != "" {
		t.Errorf("marketing frequency = %q, want empty for restricted tier", c.MarketingFrequency)
	}
	if c.CheckboxForm != "singular" {
		t.Errorf("checkbox form = %q, want singular", c.CheckboxForm)
	}
	if len(c.ProhibitedContent) == 0 || len(c.AllowedContent) == 0 {
		t.Error("restricted tier must carry per-industry prohibited and allowed lists")
	}
}

func TestCompile_ProhibitedRefuses(t *testing.T) {
	a := dualCampaignAnswers()
	a[answers.KeyIndustries] = "Payday Loans"
	if _, err := Compile(a, industry.Classify(a.Industries())); err == nil {
		t.Fatal("expected error for prohibited industry")
	}
}

func TestFormatForPrompt_CarriesHardRules(t *testing.T) {
	a := dualCampaignAnswers()
	c, err := Compile(a, industry.Classify(a.Industries()))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	prompt := c.FormatForPrompt()
	for _, want := range []string{
		`"Msg & data rates may apply."`,
		`"Reply STOP to opt out."`,
		"U.S. Cellular",
		`marketing: "up to 4 msgs/mo"`,
		"checking the boxes above",
		"never by providing a phone number",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(prompt, "Sprint\n") {
		t.Error("prompt must not list Sprint as a carrier")
	}
}

func TestFormatForPrompt_RestrictedInstructions(t *testing.T) {
	a := dualCampaignAnswers()
	a[answers.KeyIndustries] = "Legal Services"
	c, err := Compile(a, industry.Classify(a.Industries()))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	prompt := c.FormatForPrompt()
	if !strings.Contains(prompt, `"Not applicable"`) {
		t.Error("prompt missing null-marketing instruction")
	}
	if !strings.Contains(prompt, "Prohibited message content:") {
		t.Error("prompt missing prohibited content section")
	}
}
