package docset

import (
	"regexp"
	"strings"
)

var (
	blockquotePattern = regexp.MustCompile(`(?is)<blockquote[^>]*>(.*?)</blockquote>`)
	tagPattern        = regexp.MustCompile(`(?s)<[^>]*>`)
	entityReplacer    = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&nbsp;", " ",
	)
)

// Blockquotes extracts the plain-text contents of every <blockquote> in an
// HTML document. Consent disclosures are rendered as blockquotes in the
// privacy policy and terms.
func Blockquotes(html string) []string {
	matches := blockquotePattern.FindAllStringSubmatch(html, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, StripTags(m[1]))
	}
	return out
}

// StripTags reduces HTML to plain text: tags become spaces, common entities
// are decoded, and whitespace runs collapse. Good enough for phrase
// matching; these documents are generated, not adversarial.
func StripTags(html string) string {
	text := tagPattern.ReplaceAllString(html, " ")
	text = entityReplacer.Replace(text)
	return strings.Join(strings.Fields(text), " ")
}
