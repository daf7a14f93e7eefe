package industry

import "strings"

// Tier is the restriction tier a business resolves to.
type Tier string

const (
	TierProhibited   Tier = "prohibited"
	TierRestricted   Tier = "restricted"
	TierUnrestricted Tier = "unrestricted"
)

// Rule holds the messaging constraints for one restricted industry.
// Static, never mutated at runtime.
type Rule struct {
	// Prohibited lists message categories never permitted for this industry.
	Prohibited []string
	// Allowed lists the transactional message categories that are permitted.
	Allowed []string
	// RegulatoryNote cites the basis for the restriction.
	RegulatoryNote string
}

// Classification is the result of classifying a business by its industry
// selections.
type Classification struct {
	Tier Tier
	// Restricted holds every selected restricted industry, in selection
	// order. Empty unless Tier is TierRestricted.
	Restricted []string
	// Unknown holds selected labels absent from every vocabulary. Unknown
	// labels classify as unrestricted (fail-open) but are surfaced so the
	// checker can flag them for review.
	Unknown []string
}

// Classify resolves a set of industry selections to a tier. Prohibition
// dominates: any prohibited selection forces TierProhibited regardless of
// what else is selected. Restricted is reached only when no selection is
// prohibited and at least one is restricted. Pure; never mutates selections.
func Classify(selections []string) Classification {
	var c Classification
	for _, sel := range selections {
		label := strings.TrimSpace(sel)
		switch {
		case prohibitedSet[label]:
			c.Tier = TierProhibited
		case RestrictedRules[label].RegulatoryNote != "":
			c.Restricted = append(c.Restricted, label)
		case !unrestrictedSet[label]:
			c.Unknown = append(c.Unknown, label)
		}
	}
	if c.Tier == TierProhibited {
		return c
	}
	if len(c.Restricted) > 0 {
		c.Tier = TierRestricted
		return c
	}
	c.Tier = TierUnrestricted
	return c
}

// RuleFor returns the messaging rule for a restricted industry label.
func RuleFor(label string) (Rule, bool) {
	r, ok := RestrictedRules[strings.TrimSpace(label)]
	return r, ok
}

// IsKnown reports whether label appears in any vocabulary.
func IsKnown(label string) bool {
	label = strings.TrimSpace(label)
	if prohibitedSet[label] || unrestrictedSet[label] {
		return true
	}
	_, ok := RestrictedRules[label]
	return ok
}
