package checker

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dlclint/dlclint/internal/schema"
)

func init() {
	Register(Check{
		ID:              "CHK-CONSENT-TEXT",
		Category:        schema.CategoryConsentTextConsistency,
		Title:           "Consent checkbox text reproduced verbatim in policy documents",
		NeedsSubmission: true,
		Eval:            evalConsentText,
	})
}

// The checkbox disclosures from the submission must appear
// character-for-character (modulo surrounding whitespace) inside the
// consent blockquotes of both the privacy policy and the terms. Any
// divergence is critical: carrier review compares these texts literally.
func evalConsentText(t *Target) []schema.Issue {
	var issues []schema.Issue

	fields := t.Sub.ConsentBlocks()
	for _, label := range []string{"marketing_consent_checkbox", "transactional_consent_checkbox"} {
		checkbox, ok := fields[label]
		if !ok {
			continue
		}
		want := collapse(checkbox)

		for _, kind := range []schema.DocumentKind{schema.DocPrivacyPolicy, schema.DocTerms} {
			blocks := t.Blocks(kind)
			if len(blocks) == 0 {
				issues = append(issues, schema.Issue{
					Severity:          schema.SeverityCritical,
					Title:             fmt.Sprintf("No consent disclosure blockquote in %s", kind),
					Description:       fmt.Sprintf("The %s field must be reproduced inside a consent disclosure blockquote, but %s contains no blockquote at all.", label, kind),
					AffectedDocuments: []schema.DocumentKind{schema.DocSubmission, kind},
					Recommendation:    "Add the consent disclosure blockquote quoting the checkbox text verbatim.",
				})
				continue
			}

			if containsVerbatim(blocks, want) {
				continue
			}
			issues = append(issues, schema.Issue{
				Severity: schema.SeverityCritical,
				Title:    fmt.Sprintf("Consent text for %s diverges in %s", label, kind),
				Description: fmt.Sprintf(
					"The %s text does not appear character-for-character in the consent disclosure of %s. Divergence from the closest block:\n%s",
					label, kind, renderDivergence(want, closestBlock(blocks, want)),
				),
				AffectedDocuments: []schema.DocumentKind{schema.DocSubmission, kind},
				Recommendation:    "Copy the checkbox text into the document verbatim; no reordering, synonyms, or punctuation changes.",
			})
		}
	}
	return issues
}

func containsVerbatim(blocks []string, want string) bool {
	for _, b := range blocks {
		if strings.Contains(collapse(b), want) {
			return true
		}
	}
	return false
}

// closestBlock picks the block sharing the longest common prefix with want,
// used only to render a helpful divergence in the issue description.
func closestBlock(blocks []string, want string) string {
	best := blocks[0]
	bestLen := -1
	for _, b := range blocks {
		n := commonPrefixLen(collapse(b), want)
		if n > bestLen {
			best, bestLen = b, n
		}
	}
	return best
}

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// renderDivergence produces a compact diff of expected vs found consent
// text for the issue description.
func renderDivergence(want, got string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, collapse(got), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("[+" + d.Text + "+]")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

// collapse trims and folds internal whitespace runs to single spaces.
// Case and punctuation are preserved: the comparison is literal.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
