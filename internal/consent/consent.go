package consent

import (
	"regexp"
	"strings"
)

// Element names one of the six mandatory components of a compliant consent
// disclosure. The names are a closed, versionable enumeration.
type Element string

const (
	ElementMessageTypeAndName Element = "message_type_and_business_name"
	ElementFrequency          Element = "frequency"
	ElementDataRates          Element = "data_rates_phrase"
	ElementStop               Element = "stop_phrase"
	ElementHelp               Element = "help_phrase"
	ElementNoThirdParty       Element = "no_third_party_phrase"
)

// Elements lists all six mandatory elements in canonical order.
var Elements = []Element{
	ElementMessageTypeAndName,
	ElementFrequency,
	ElementDataRates,
	ElementStop,
	ElementHelp,
	ElementNoThirdParty,
}

// The four fixed literal phrases. Carrier review is character-for-character
// on these: matching is exact (case-insensitive, whitespace-normalized),
// never fuzzy. A single word substitution must register as missing.
const (
	RatesPhrase   = "Msg & data rates may apply."
	StopPhrase    = "Reply STOP to opt out."
	HelpPhrase    = "Reply HELP for info."
	NoSharePhrase = "SMS opt-in data is never shared with third parties."
)

// CarrierList is the exact set of supported carriers a document may name.
// Sprint is absent on purpose; it merged into T-Mobile.
var CarrierList = []string{
	"AT&T", "Verizon", "T-Mobile", "Boost Mobile", "MetroPCS", "U.S. Cellular",
}

// FixedPhrases maps each fixed-literal element to its required phrase.
var FixedPhrases = map[Element]string{
	ElementDataRates:    RatesPhrase,
	ElementStop:         StopPhrase,
	ElementHelp:         HelpPhrase,
	ElementNoThirdParty: NoSharePhrase,
}

// Authority carries the authoritative values from the questionnaire that
// the semantic elements are validated against.
type Authority struct {
	BusinessName string
	// Frequency is the authoritative frequency value, e.g. "up to 4 msgs/mo"
	// or "varies". Empty or "N/A" means no specific value exists.
	Frequency string
}

// Result reports which mandatory elements a disclosure contains.
type Result struct {
	Present []Element
	Missing []Element
	// VariesConflict is set when the text says frequency varies but a
	// specific authoritative number was supplied. The specific number
	// always wins; "varies" is only acceptable when no number exists.
	VariesConflict bool
}

// Has reports whether e was found present.
func (r Result) Has(e Element) bool {
	for _, p := range r.Present {
		if p == e {
			return true
		}
	}
	return false
}

// placeholderPattern matches bracket-token placeholders such as
// "[Business Name]" or "[BRAND]" left in a template before substitution.
var placeholderPattern = regexp.MustCompile(`(?i)\[[^\]\n]*(?:business|brand|company)[^\]\n]*\]`)

// categoryWords are message-category descriptors; one must appear for the
// message-type element. Presence only, exact wording not required here.
var categoryWords = []string{
	"marketing", "promotional", "transactional", "appointment",
	"reminder", "alert", "notification", "update", "offer",
	"account", "order", "billing",
}

// Validate checks a consent disclosure for the six mandatory elements.
// It never errors: empty input yields all six missing.
func Validate(text string, auth Authority) Result {
	var r Result
	norm := normalizeFold(text)

	mark := func(e Element, present bool) {
		if present {
			r.Present = append(r.Present, e)
		} else {
			r.Missing = append(r.Missing, e)
		}
	}

	mark(ElementMessageTypeAndName, hasMessageTypeAndName(text, norm, auth.BusinessName))

	freqOK, conflict := frequencyMatches(norm, auth.Frequency)
	r.VariesConflict = conflict
	mark(ElementFrequency, freqOK)

	for _, e := range []Element{ElementDataRates, ElementStop, ElementHelp, ElementNoThirdParty} {
		mark(e, strings.Contains(norm, normalizeFold(FixedPhrases[e])))
	}
	return r
}

// ContainsPhrase reports whether phrase occurs in text after case folding
// and whitespace normalization of both.
func ContainsPhrase(text, phrase string) bool {
	return strings.Contains(normalizeFold(text), normalizeFold(phrase))
}

func hasMessageTypeAndName(raw, norm, businessName string) bool {
	named := false
	if strings.TrimSpace(businessName) != "" && businessName != "N/A" {
		named = strings.Contains(norm, normalizeFold(businessName))
	}
	if !named {
		named = placeholderPattern.MatchString(raw)
	}
	if !named {
		return false
	}
	for _, w := range categoryWords {
		if strings.Contains(norm, w) {
			return true
		}
	}
	return false
}

// normalizeFold lowercases and collapses all whitespace runs to single
// spaces so matching survives line wrapping and HTML reflow.
func normalizeFold(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
