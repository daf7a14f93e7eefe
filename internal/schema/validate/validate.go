package validate

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Submission is the structured form of the carrier submission language.
// Fields mirror the registration form the carrier reviewer sees; all are
// plain strings except SampleMessages.
type Submission struct {
	LegalBusinessName    string   `json:"legal_business_name"`
	UseCaseDescription   string   `json:"use_case_description"`
	MarketingUseCase     string   `json:"marketing_use_case"`
	TransactionalUseCase string   `json:"transactional_use_case"`
	MessageFrequency     string   `json:"message_frequency"`
	OptInMethod          string   `json:"opt_in_method"`
	OptInMessage         string   `json:"opt_in_message"`
	MarketingCheckbox    string   `json:"marketing_consent_checkbox"`
	TransactionalCheckbox string  `json:"transactional_consent_checkbox"`
	FormSecondaryText    string   `json:"form_secondary_text"`
	SampleMessages       []string `json:"sample_messages"`
}

// ParseSubmission strips markdown fences and unmarshals the submission
// language JSON. Generated submissions sometimes arrive fenced when they
// come straight out of a text model.
func ParseSubmission(raw string) (*Submission, error) {
	cleaned := StripFences(raw)
	if strings.TrimSpace(cleaned) == "" {
		return nil, fmt.Errorf("submission language is empty")
	}

	var sub Submission
	if err := json.Unmarshal([]byte(cleaned), &sub); err != nil {
		return nil, fmt.Errorf("JSON parse failed: %w", err)
	}
	return &sub, nil
}

// StripFences removes leading/trailing markdown code fences (```json ... ``` or ``` ... ```).
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		// Remove first line (the fence opener)
		idx := strings.Index(s, "\n")
		if idx >= 0 {
			s = s[idx+1:]
		}
	}
	if strings.HasSuffix(s, "```") {
		idx := strings.LastIndex(s, "\n```")
		if idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

// ConsentBlocks returns the checkbox disclosure texts that carry consent
// language, keyed by field name. Empty and "Not applicable" fields are
// omitted: a nulled-out checkbox is not presented to the user.
func (s *Submission) ConsentBlocks() map[string]string {
	out := make(map[string]string, 2)
	if active(s.MarketingCheckbox) {
		out["marketing_consent_checkbox"] = s.MarketingCheckbox
	}
	if active(s.TransactionalCheckbox) {
		out["transactional_consent_checkbox"] = s.TransactionalCheckbox
	}
	return out
}

func active(field string) bool {
	v := strings.TrimSpace(field)
	return v != "" && !strings.EqualFold(v, "Not applicable") && !strings.EqualFold(v, "N/A")
}

// MarketingDisabled reports whether the marketing program is nulled out,
// as required for restricted-industry registrations.
func (s *Submission) MarketingDisabled() bool {
	mc := strings.TrimSpace(s.MarketingUseCase)
	cb := strings.TrimSpace(s.MarketingCheckbox)
	return (mc == "" || strings.EqualFold(mc, "Not applicable")) &&
		(cb == "" || strings.EqualFold(cb, "Not applicable"))
}
