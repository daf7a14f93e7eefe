package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dlclint/dlclint/internal/consent"
)

// GeneratedDocs is the three-document envelope a generator returns.
type GeneratedDocs struct {
	Submission    json.RawMessage `json:"submission"`
	PrivacyPolicy string          `json:"privacy_policy"`
	Terms         string          `json:"terms_conditions"`
}

// ParseGenerated strips fences, unmarshals the generated envelope, and
// rejects output that could not survive analysis: a missing document, an
// unparseable submission, or a consent disclosure with a mangled fixed
// phrase. Error messages use fixed prefixes so callers can classify them
// for a repair prompt without echoing generated content.
func ParseGenerated(raw string) (*GeneratedDocs, error) {
	cleaned := StripFences(raw)
	if strings.TrimSpace(cleaned) == "" {
		return nil, fmt.Errorf("generated output is empty")
	}

	var docs GeneratedDocs
	if err := json.Unmarshal([]byte(cleaned), &docs); err != nil {
		return nil, fmt.Errorf("JSON parse failed: %w", err)
	}

	if len(docs.Submission) == 0 || string(docs.Submission) == "null" {
		return nil, fmt.Errorf("missing document: submission")
	}
	if strings.TrimSpace(docs.PrivacyPolicy) == "" {
		return nil, fmt.Errorf("missing document: privacy_policy")
	}
	if strings.TrimSpace(docs.Terms) == "" {
		return nil, fmt.Errorf("missing document: terms_conditions")
	}

	sub, err := ParseSubmission(string(docs.Submission))
	if err != nil {
		return nil, fmt.Errorf("submission parse failed: %w", err)
	}

	// Fixed phrases are checked here only in the submission's consent
	// blocks. Full cross-document analysis belongs to the checker; this
	// gate exists so a retry can fire before the caller wires the output
	// into a document set.
	for _, field := range []string{"marketing_consent_checkbox", "transactional_consent_checkbox"} {
		text, ok := sub.ConsentBlocks()[field]
		if !ok {
			continue
		}
		for _, e := range []consent.Element{
			consent.ElementDataRates, consent.ElementStop,
			consent.ElementHelp, consent.ElementNoThirdParty,
		} {
			if !consent.ContainsPhrase(text, consent.FixedPhrases[e]) {
				return nil, fmt.Errorf("missing required phrase: %s in %s", e, field)
			}
		}
	}

	return &docs, nil
}
