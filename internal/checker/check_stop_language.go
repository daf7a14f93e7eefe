package checker

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclint/dlclint/internal/consent"
	"github.com/dlclint/dlclint/internal/schema"
)

func init() {
	Register(Check{
		ID:       "CHK-STOP-LANGUAGE",
		Category: schema.CategoryStopLanguage,
		Title:    "STOP guidance reads exactly \"Reply STOP to opt out.\" everywhere",
		Eval:     evalStopLanguage,
	})
}

// stopGuidancePattern captures any STOP instruction through the end of its
// sentence, across the common verb variants generators produce.
var stopGuidancePattern = regexp.MustCompile(`(?i)\b(?:reply|text|send)\s+["']?STOP["']?\b[^.!?\n]*[.!?]?`)

const canonicalStop = "reply stop to opt out"

// Every occurrence of STOP guidance, anywhere in any document, must read
// exactly "Reply STOP to opt out." — variants like "unsubscribe" or
// "cancel" are critical. Because uniformity is a cross-document property,
// an issue cites every document that carries STOP guidance, not just the
// one with the variant.
func evalStopLanguage(t *Target) []schema.Issue {
	allKinds := []schema.DocumentKind{schema.DocSubmission, schema.DocPrivacyPolicy, schema.DocTerms}

	var bearing []schema.DocumentKind
	variants := make(map[schema.DocumentKind][]string)

	for _, kind := range allKinds {
		text := t.DocText(kind)
		if text == "" {
			continue
		}
		matches := stopGuidancePattern.FindAllString(text, -1)
		if len(matches) > 0 {
			bearing = append(bearing, kind)
		}
		for _, m := range matches {
			if foldStop(m) != canonicalStop {
				variants[kind] = append(variants[kind], strings.TrimSpace(m))
			}
		}
	}

	var issues []schema.Issue
	for _, kind := range allKinds {
		vs, ok := variants[kind]
		if !ok {
			continue
		}
		issues = append(issues, schema.Issue{
			Severity: schema.SeverityCritical,
			Title:    fmt.Sprintf("Non-standard STOP wording in %s", kind),
			Description: fmt.Sprintf(
				"%s contains STOP guidance that differs from the required %q: %s. Opt-out wording must be uniform across every document.",
				kind, consent.StopPhrase, strings.Join(quoteAll(vs), ", "),
			),
			AffectedDocuments: bearing,
			Recommendation:    fmt.Sprintf("Replace every variant with %q.", consent.StopPhrase),
		})
	}
	return issues
}

// foldStop normalizes a STOP occurrence for comparison: case folded,
// whitespace collapsed, trailing punctuation dropped.
func foldStop(s string) string {
	s = strings.ToLower(strings.Join(strings.Fields(s), " "))
	return strings.TrimRight(s, ".!?\"' ")
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
