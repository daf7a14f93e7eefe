package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dlclint/dlclint/internal/answers"
	"github.com/dlclint/dlclint/internal/constraints"
)

const systemPromptBase = `You are an A2P 10DLC compliance writer. Your job is to produce
three artifacts for a business registering an SMS campaign: submission language for the
carrier questionnaire, an SMS section for the privacy policy, and an SMS section for the
terms and conditions.

Consistency rules:
- The three documents are reviewed side by side by carrier compliance staff. Every fact
  that appears in more than one document must appear with identical wording.
- Consent disclosure text (the checkbox language) must be reproduced character for
  character wherever it appears. In the privacy policy and terms, place each consent
  disclosure inside an HTML <blockquote> element.
- Copy message frequency values from the questionnaire verbatim. Never write
  "message frequency varies".
- Use the business's legal name exactly as given. No abbreviations, no dropped suffixes.

Output rules:
- Return JSON only — no prose, no markdown fences, no explanation
- JSON must match the provided schema exactly`

const outputSchemaExample = `{
  "submission": {
    "legal_business_name": "...",
    "use_case_description": "...",
    "marketing_use_case": "...",
    "transactional_use_case": "...",
    "message_frequency": "...",
    "opt_in_method": "...",
    "opt_in_message": "...",
    "marketing_consent_checkbox": "...",
    "transactional_consent_checkbox": "...",
    "form_secondary_text": "...",
    "sample_messages": ["..."]
  },
  "privacy_policy": "<h2>SMS/Text Messaging</h2>...",
  "terms_conditions": "<h2>SMS Terms</h2>..."
}`

// promptKeyOrder fixes the questionnaire ordering in the prompt so the same
// answers always produce the same prompt.
var promptKeyOrder = []string{
	answers.KeyLegalBusinessName,
	answers.KeyDBAName,
	answers.KeyBusinessAddress,
	answers.KeyBusinessState,
	answers.KeyWebsite,
	answers.KeyIndustries,
	answers.KeyMarketingUseCase,
	answers.KeyMarketingFrequency,
	answers.KeyTransactionalUseCase,
	answers.KeyTransactionalFrequency,
	answers.KeyOptInMethod,
	answers.KeyDataSharing,
}

// BuildSystemPrompt constructs the generator system prompt with the compiled
// constraints injected as hard rules.
func BuildSystemPrompt(c *constraints.GenerationConstraints) string {
	var sb strings.Builder
	sb.WriteString(systemPromptBase)
	sb.WriteString("\n\nHard constraints (every one is verified mechanically after generation):\n\n")
	sb.WriteString(c.FormatForPrompt())
	return sb.String()
}

// BuildUserPrompt constructs the user prompt from the questionnaire answers
// and the output schema example.
func BuildUserPrompt(a answers.Answers) string {
	var sb strings.Builder
	sb.WriteString("Generate the three documents from this intake questionnaire.\n\n<questionnaire>\n")

	seen := make(map[string]bool, len(promptKeyOrder))
	for _, key := range promptKeyOrder {
		seen[key] = true
		if !a.Has(key) {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", key, a.Get(key)))
	}
	var extra []string
	for key := range a {
		if !seen[key] && a.Has(key) {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		sb.WriteString(fmt.Sprintf("%s: %s\n", key, a.Get(key)))
	}
	sb.WriteString("</questionnaire>\n")

	sb.WriteString("\nReturn the documents as JSON with this structure:\n")
	sb.WriteString(outputSchemaExample)
	return sb.String()
}
