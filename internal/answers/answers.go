package answers

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// NotProvided is returned for any questionnaire key that is absent or blank.
// The engine must never crash on a missing optional field.
const NotProvided = "N/A"

// Well-known questionnaire keys. The schema is flat: every value is a string.
const (
	KeyLegalBusinessName      = "legal_business_name"
	KeyDBAName                = "dba_name"
	KeyBusinessAddress        = "business_address"
	KeyBusinessState          = "business_state"
	KeyWebsite                = "website"
	KeyIndustries             = "industries"
	KeyMarketingUseCase       = "marketing_use_case"
	KeyMarketingFrequency     = "marketing_frequency"
	KeyTransactionalUseCase   = "transactional_use_case"
	KeyTransactionalFrequency = "transactional_frequency"
	KeyOptInMethod            = "opt_in_method"
	KeyDataSharing            = "data_sharing"
)

// Answers is the flat key→string questionnaire mapping. Immutable by
// convention once the questionnaire is submitted; the engine only reads it.
type Answers map[string]string

// Load reads an answers JSON file (a flat string-to-string object).
func Load(path string) (Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals a flat string-to-string JSON object.
func Parse(data []byte) (Answers, error) {
	var a Answers
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing answers: %w", err)
	}
	return a, nil
}

// Get returns the value for key, or NotProvided when the key is absent or
// blank.
func (a Answers) Get(key string) string {
	v, ok := a[key]
	if !ok || strings.TrimSpace(v) == "" {
		return NotProvided
	}
	return strings.TrimSpace(v)
}

// Has reports whether key carries a real value (present, non-blank, not "N/A").
func (a Answers) Has(key string) bool {
	v := a.Get(key)
	return v != NotProvided
}

// Industries splits the comma-separated industries answer into labels.
// Returns nil when no industries were selected.
func (a Answers) Industries() []string {
	raw := a.Get(KeyIndustries)
	if raw == NotProvided {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Frequency returns the authoritative frequency value for the given
// campaign type ("marketing" or "transactional"), or NotProvided.
func (a Answers) Frequency(campaign string) string {
	switch campaign {
	case "marketing":
		return a.Get(KeyMarketingFrequency)
	case "transactional":
		return a.Get(KeyTransactionalFrequency)
	}
	return NotProvided
}

// HasMarketing reports whether the business runs a marketing program.
func (a Answers) HasMarketing() bool { return a.Has(KeyMarketingUseCase) }

// HasTransactional reports whether the business runs a transactional program.
func (a Answers) HasTransactional() bool { return a.Has(KeyTransactionalUseCase) }
