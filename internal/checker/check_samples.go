package checker

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclint/dlclint/internal/answers"
	"github.com/dlclint/dlclint/internal/consent"
	"github.com/dlclint/dlclint/internal/schema"
)

func init() {
	Register(Check{
		ID:              "CHK-SAMPLE-FORMAT",
		Category:        schema.CategorySampleMessages,
		Title:           "Sample messages follow the required format",
		NeedsSubmission: true,
		Eval:            evalSampleFormat,
	})
}

// urlPattern flags anything that reads as a link. URLs in sample messages
// are automatic carrier rejection.
var urlPattern = regexp.MustCompile(`(?i)\bhttps?://\S+|\bwww\.\S+|\b[a-z0-9][a-z0-9-]*\.(?:com|net|org|io|co|biz|info)\b`)

// Each sample message must start with the "[Business Name]:" sender
// prefix, contain the exact STOP and rates phrases, and contain no URLs.
// Any failure is critical.
func evalSampleFormat(t *Target) []schema.Issue {
	legal := t.Answers.Get(answers.KeyLegalBusinessName)

	var badPrefix, missingStop, missingRates, hasURL []string
	for i, msg := range t.Sub.SampleMessages {
		label := fmt.Sprintf("sample_messages[%d]", i)
		if !hasSenderPrefix(msg, legal) {
			badPrefix = append(badPrefix, label)
		}
		if !consent.ContainsPhrase(msg, consent.StopPhrase) {
			missingStop = append(missingStop, label)
		}
		if !consent.ContainsPhrase(msg, consent.RatesPhrase) {
			missingRates = append(missingRates, label)
		}
		if urlPattern.MatchString(msg) {
			hasURL = append(hasURL, label)
		}
	}

	var issues []schema.Issue
	add := func(title, desc string, labels []string) {
		if len(labels) == 0 {
			return
		}
		issues = append(issues, schema.Issue{
			Severity:          schema.SeverityCritical,
			Title:             title,
			Description:       fmt.Sprintf("%s Affected: %s.", desc, strings.Join(labels, ", ")),
			AffectedDocuments: []schema.DocumentKind{schema.DocSubmission},
			Recommendation:    "Fix every sample message; reviewers reject campaigns on a single bad sample.",
		})
	}

	add("Sample message missing sender prefix",
		fmt.Sprintf("Every sample must start with the %q sender prefix.", legal+":"), badPrefix)
	add("Sample message missing STOP phrase",
		fmt.Sprintf("Every sample must contain %q verbatim.", consent.StopPhrase), missingStop)
	add("Sample message missing rates phrase",
		fmt.Sprintf("Every sample must contain %q verbatim.", consent.RatesPhrase), missingRates)
	add("Sample message contains a URL",
		"Sample messages must contain zero URLs; a link in a sample is automatic carrier rejection.", hasURL)
	return issues
}

func hasSenderPrefix(msg, legal string) bool {
	msg = strings.TrimSpace(msg)
	if legal != answers.NotProvided {
		if strings.HasPrefix(strings.ToLower(msg), strings.ToLower(legal)+":") {
			return true
		}
	}
	// Template form before substitution.
	return regexp.MustCompile(`(?i)^\[[^\]]*(?:business|brand|company)[^\]]*\]:`).MatchString(msg)
}
