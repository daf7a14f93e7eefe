package consent

import (
	"regexp"
	"strings"
)

// countPattern extracts a message count from a frequency phrase, e.g.
// "up to 4 msgs/mo", "4 messages per month", "2-4 texts/week". The first
// captured number is the authoritative count for comparison.
var countPattern = regexp.MustCompile(`(?i)(\d+)(?:\s*[-–]\s*\d+)?\s*(?:msgs?|messages?|texts?)\b`)

// variesPattern matches any statement that message frequency varies.
var variesPattern = regexp.MustCompile(`(?i)\b(?:frequency\s+)?(?:may\s+)?var(?:y|ies)\b`)

// ExtractCount returns the message count embedded in a frequency phrase,
// or "" when none is present.
func ExtractCount(text string) string {
	m := countPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// SaysVaries reports whether text claims the frequency varies.
func SaysVaries(text string) bool {
	return variesPattern.MatchString(text)
}

// frequencyMatches compares the frequency phrase embedded in text against
// the authoritative value. Returns (present, variesConflict).
//
// Policy: a specific authoritative number always wins. "varies" in the text
// is only acceptable when no specific number exists.
func frequencyMatches(text, authoritative string) (bool, bool) {
	authoritative = strings.TrimSpace(authoritative)
	authCount := ExtractCount(authoritative)

	if authCount == "" {
		// No specific number supplied: either "varies" or any message-count
		// statement satisfies the element.
		if SaysVaries(text) || ExtractCount(text) != "" {
			return true, false
		}
		return false, false
	}

	if SaysVaries(text) && ExtractCount(text) == "" {
		return false, true
	}
	if ExtractCount(text) == authCount {
		return true, false
	}
	return false, false
}
