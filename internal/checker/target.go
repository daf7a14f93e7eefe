package checker

import (
	"strings"

	"github.com/dlclint/dlclint/internal/answers"
	"github.com/dlclint/dlclint/internal/docset"
	"github.com/dlclint/dlclint/internal/industry"
	"github.com/dlclint/dlclint/internal/schema"
	"github.com/dlclint/dlclint/internal/schema/validate"
)

// Target is the prepared input every check evaluates against. It is built
// once per run and never mutated by checks.
type Target struct {
	Set     *docset.Set
	Answers answers.Answers
	Class   industry.Classification

	// Sub is the parsed submission language; nil when the submission is
	// absent or unparseable, in which case SubErr describes why and checks
	// that depend on it are skipped.
	Sub    *validate.Submission
	SubErr error

	// Plain-text projections of the HTML documents.
	PPText string
	TCText string

	// Consent disclosure blockquotes per document.
	PPBlocks []string
	TCBlocks []string
}

// NewTarget prepares a Target from a document set and questionnaire
// answers: classifies the business, parses the submission language, and
// precomputes plain-text projections.
func NewTarget(set *docset.Set, a answers.Answers) *Target {
	t := &Target{Set: set, Answers: a}
	t.Class = industry.Classify(a.Industries())

	raw := strings.TrimSpace(set.Submission.Content)
	if raw == "" {
		t.SubErr = errEmptySubmission
	} else {
		t.Sub, t.SubErr = validate.ParseSubmission(raw)
	}

	pp := docset.Normalize(set.PrivacyPolicy.Content)
	tc := docset.Normalize(set.Terms.Content)
	t.PPText = docset.StripTags(pp)
	t.TCText = docset.StripTags(tc)
	t.PPBlocks = docset.Blockquotes(pp)
	t.TCBlocks = docset.Blockquotes(tc)
	return t
}

// DocText returns the plain-text projection for a document kind. For the
// submission it is the concatenation of all parsed fields; empty when the
// submission could not be parsed.
func (t *Target) DocText(kind schema.DocumentKind) string {
	switch kind {
	case schema.DocPrivacyPolicy:
		return t.PPText
	case schema.DocTerms:
		return t.TCText
	case schema.DocSubmission:
		if t.Sub == nil {
			return ""
		}
		parts := []string{
			t.Sub.UseCaseDescription, t.Sub.MarketingUseCase,
			t.Sub.TransactionalUseCase, t.Sub.OptInMessage,
			t.Sub.MarketingCheckbox, t.Sub.TransactionalCheckbox,
			t.Sub.FormSecondaryText,
		}
		parts = append(parts, t.Sub.SampleMessages...)
		return strings.Join(parts, "\n")
	}
	return ""
}

// Blocks returns the consent blockquotes for an HTML document kind.
func (t *Target) Blocks(kind schema.DocumentKind) []string {
	switch kind {
	case schema.DocPrivacyPolicy:
		return t.PPBlocks
	case schema.DocTerms:
		return t.TCBlocks
	}
	return nil
}

// AuthorityFrequency returns the questionnaire frequency a given text
// surface should be measured against: marketing surfaces use the marketing
// frequency, everything else the transactional one.
func (t *Target) AuthorityFrequency(surface string) string {
	lower := strings.ToLower(surface)
	if strings.Contains(lower, "marketing") || strings.Contains(lower, "promotional") {
		if t.Answers.Has(answers.KeyMarketingFrequency) {
			return t.Answers.Frequency("marketing")
		}
	}
	if t.Answers.Has(answers.KeyTransactionalFrequency) {
		return t.Answers.Frequency("transactional")
	}
	return t.Answers.Frequency("marketing")
}

type sentinelError string

func (e sentinelError) Error() string { return string(e) }

const errEmptySubmission = sentinelError("submission language is missing")
