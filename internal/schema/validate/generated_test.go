package validate

import (
	"encoding/json"
	"strings"
	"testing"
)

const goodCheckbox = "I agree to receive marketing text messages from Acme Home Services LLC " +
	"at the phone number provided. Message frequency up to 4 msgs/mo. " +
	"Msg & data rates may apply. Reply STOP to opt out. Reply HELP for info. " +
	"SMS opt-in data is never shared with third parties."

func goodEnvelope(t *testing.T, checkbox string) string {
	t.Helper()
	sub := map[string]any{
		"legal_business_name":        "Acme Home Services LLC",
		"message_frequency":          "up to 4 msgs/mo",
		"marketing_consent_checkbox": checkbox,
		"sample_messages":            []string{"Acme Home Services LLC: Your visit is confirmed."},
	}
	env := map[string]any{
		"submission":       sub,
		"privacy_policy":   "<h2>SMS</h2><blockquote>" + checkbox + "</blockquote>",
		"terms_conditions": "<h2>SMS Terms</h2><blockquote>" + checkbox + "</blockquote>",
	}
	b, err := json.Marshal(env)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestParseGenerated_Valid(t *testing.T) {
	docs, err := ParseGenerated(goodEnvelope(t, goodCheckbox))
	if err != nil {
		t.Fatalf("ParseGenerated: %v", err)
	}
	if docs.PrivacyPolicy == "" || docs.Terms == "" {
		t.Error("expected both HTML documents populated")
	}
}

func TestParseGenerated_FencedValid(t *testing.T) {
	raw := "```json\n" + goodEnvelope(t, goodCheckbox) + "\n```"
	if _, err := ParseGenerated(raw); err != nil {
		t.Fatalf("ParseGenerated fenced: %v", err)
	}
}

func TestParseGenerated_MissingDocument(t *testing.T) {
	raw := `{"submission": {"legal_business_name": "Acme"}, "privacy_policy": "<p>x</p>"}`
	_, err := ParseGenerated(raw)
	if err == nil || !strings.Contains(err.Error(), "missing document: terms_conditions") {
		t.Errorf("expected missing terms error, got %v", err)
	}
}

func TestParseGenerated_MangledPhrase(t *testing.T) {
	mangled := strings.Replace(goodCheckbox, "Reply STOP to opt out.", "Text STOP to unsubscribe.", 1)
	_, err := ParseGenerated(goodEnvelope(t, mangled))
	if err == nil || !strings.Contains(err.Error(), "missing required phrase") {
		t.Errorf("expected missing phrase error, got %v", err)
	}
}

func TestParseGenerated_BadJSON(t *testing.T) {
	_, err := ParseGenerated(`{"submission": {`)
	if err == nil || !strings.Contains(err.Error(), "JSON parse failed") {
		t.Errorf("expected JSON parse error, got %v", err)
	}
}
