package validate

import (
	"strings"
	"testing"
)

const sampleSubmission = `{
  "legal_business_name": "Acme Dental LLC",
  "use_case_description": "Appointment reminders, up to 4 msgs/mo.",
  "marketing_use_case": "Not applicable",
  "transactional_use_case": "Appointment reminders and confirmations",
  "message_frequency": "up to 4 msgs/mo",
  "opt_in_method": "Online form",
  "opt_in_message": "You are now opted in to Acme Dental LLC appointment alerts.",
  "marketing_consent_checkbox": "Not applicable",
  "transactional_consent_checkbox": "I agree to receive appointment reminder texts from Acme Dental LLC.",
  "form_secondary_text": "By checking the box above you agree to receive texts.",
  "sample_messages": ["Acme Dental LLC: Your appointment is tomorrow at 2pm. Reply STOP to opt out."]
}`

func TestParseSubmission_Valid(t *testing.T) {
	sub, err := ParseSubmission(sampleSubmission)
	if err != nil {
		t.Fatalf("ParseSubmission returned error: %v", err)
	}
	if sub.LegalBusinessName != "Acme Dental LLC" {
		t.Errorf("LegalBusinessName = %q", sub.LegalBusinessName)
	}
	if len(sub.SampleMessages) != 1 {
		t.Errorf("SampleMessages len = %d, want 1", len(sub.SampleMessages))
	}
}

func TestParseSubmission_Fenced(t *testing.T) {
	fenced := "```json\n" + sampleSubmission + "\n```"
	sub, err := ParseSubmission(fenced)
	if err != nil {
		t.Fatalf("ParseSubmission(fenced) returned error: %v", err)
	}
	if sub.MessageFrequency != "up to 4 msgs/mo" {
		t.Errorf("MessageFrequency = %q", sub.MessageFrequency)
	}
}

func TestParseSubmission_Malformed(t *testing.T) {
	_, err := ParseSubmission("{not json")
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if !strings.Contains(err.Error(), "JSON parse failed") {
		t.Errorf("error = %q, want JSON parse failed", err)
	}
}

func TestParseSubmission_Empty(t *testing.T) {
	if _, err := ParseSubmission("   "); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestConsentBlocks_SkipsEmpty(t *testing.T) {
	sub := &Submission{TransactionalCheckbox: "I agree."}
	blocks := sub.ConsentBlocks()
	if len(blocks) != 1 {
		t.Fatalf("ConsentBlocks len = %d, want 1", len(blocks))
	}
	if _, ok := blocks["transactional_consent_checkbox"]; !ok {
		t.Error("transactional_consent_checkbox missing from blocks")
	}
}

func TestMarketingDisabled(t *testing.T) {
	sub := &Submission{MarketingUseCase: "Not applicable", MarketingCheckbox: "not applicable"}
	if !sub.MarketingDisabled() {
		t.Error("MarketingDisabled = false, want true")
	}
	sub.MarketingCheckbox = "I agree to receive marketing texts."
	if sub.MarketingDisabled() {
		t.Error("MarketingDisabled = true, want false")
	}
}
