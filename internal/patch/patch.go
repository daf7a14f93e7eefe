package patch

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dlclint/dlclint/internal/checker"
	"github.com/dlclint/dlclint/internal/schema"
)

// GenerateConsentDiffs produces diff-match-patch text for every consent
// disclosure whose document copy diverges from the submission's text,
// suitable for writing to --diff-out. The patch direction is document copy
// to submission copy: applying it fixes the document. Fields without a
// candidate block in a document are skipped with a warning written to w
// (may be nil).
func GenerateConsentDiffs(t *checker.Target, w io.Writer) string {
	if t.Sub == nil {
		return ""
	}

	dmp := diffmatchpatch.New()
	var out strings.Builder

	fields := t.Sub.ConsentBlocks()
	for _, field := range []string{"marketing_consent_checkbox", "transactional_consent_checkbox"} {
		want, ok := fields[field]
		if !ok {
			continue
		}
		wantNorm := collapse(want)

		for _, kind := range []schema.DocumentKind{schema.DocPrivacyPolicy, schema.DocTerms} {
			blocks := t.Blocks(kind)
			if len(blocks) == 0 {
				if w != nil {
					fmt.Fprintf(w, "WARN: %s has no blockquote to diff against %s\n", kind, field)
				}
				continue
			}
			got := closest(blocks, wantNorm)
			if got == wantNorm {
				continue
			}

			diffs := dmp.DiffMain(got, wantNorm, false)
			patchList := dmp.PatchMake(got, diffs)
			patchText := dmp.PatchToText(patchList)
			if patchText == "" {
				continue
			}

			out.WriteString(fmt.Sprintf("# %s: %s\n", kind, field))
			out.WriteString(patchText)
			out.WriteString("\n")
		}
	}

	return out.String()
}

// closest picks the block sharing the longest whitespace-collapsed common
// prefix with want. Ties keep the earlier block.
func closest(blocks []string, want string) string {
	best := collapse(blocks[0])
	bestLen := commonPrefixLen(best, want)
	for _, b := range blocks[1:] {
		nb := collapse(b)
		if l := commonPrefixLen(nb, want); l > bestLen {
			best, bestLen = nb, l
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

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
