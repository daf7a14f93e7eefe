package checker

import (
	"fmt"
	"hash/crc32"
	"sort"
	"strings"

	"github.com/dlclint/dlclint/internal/industry"
	"github.com/dlclint/dlclint/internal/schema"
)

// Check is one independent consistency check. Checks are order-insensitive
// and side-effect free; the run result is the union of their issues, not
// deduplicated across checks.
type Check struct {
	ID       string
	Category schema.Category
	Title    string
	// NeedsSubmission marks checks that cannot run without parsed
	// submission language; they are reported as skipped when it is
	// malformed rather than silently omitted.
	NeedsSubmission bool
	// RestrictedOnly marks checks that apply only to restricted-tier
	// businesses. For other tiers they pass trivially.
	RestrictedOnly bool
	Eval           func(t *Target) []schema.Issue
}

var registry []Check

// Register adds a check to the registry. Called from init() in the
// per-check files.
func Register(c Check) {
	registry = append(registry, c)
}

// List returns all registered checks not named in disabled, sorted by ID.
func List(disabled map[string]bool) []Check {
	out := make([]Check, 0, len(registry))
	for _, c := range registry {
		if disabled[strings.ToUpper(c.ID)] {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Run evaluates every enabled check against the target. Issues carry
// deterministic IDs and stable ordering (severity descending, then ID), so
// identical inputs always produce identical results.
func Run(t *Target, disabled map[string]bool) (issues []schema.Issue, passed, skipped []schema.CheckInfo) {
	seen := make(map[string]struct{})
	seq := 0

	put := func(id string) bool {
		if _, ok := seen[id]; ok {
			return false
		}
		seen[id] = struct{}{}
		return true
	}

	for _, c := range List(disabled) {
		info := schema.CheckInfo{ID: c.ID, Category: c.Category, Title: c.Title}

		if c.NeedsSubmission && t.Sub == nil {
			skipped = append(skipped, info)
			continue
		}
		if c.RestrictedOnly && t.Class.Tier != industry.TierRestricted {
			passed = append(passed, info)
			continue
		}

		found := c.Eval(t)
		for k := range found {
			if found[k].Category == "" {
				found[k].Category = c.Category
			}
			id := makeID(c.ID, found[k])
			if !put(id) {
				for {
					seq++
					candidate := fmt.Sprintf("%s-%06d", c.ID, seq)
					if put(candidate) {
						id = candidate
						break
					}
				}
			}
			found[k].ID = id
		}
		if len(found) == 0 {
			passed = append(passed, info)
		}
		issues = append(issues, found...)
	}

	sort.SliceStable(issues, func(i, j int) bool {
		si, sj := schema.SeverityOrdinal(issues[i].Severity), schema.SeverityOrdinal(issues[j].Severity)
		if si != sj {
			return si > sj
		}
		return issues[i].ID < issues[j].ID
	})
	return issues, passed, skipped
}

// makeID derives a stable issue ID from the check ID and the issue
// content, so repeated runs over the same input yield the same IDs.
func makeID(checkID string, issue schema.Issue) string {
	var docs []string
	for _, d := range issue.AffectedDocuments {
		docs = append(docs, string(d))
	}
	data := fmt.Sprintf("%s|%s|%s|%s", checkID, issue.Severity, issue.Title, strings.Join(docs, ","))
	return fmt.Sprintf("%s-%08x", checkID, crc32.ChecksumIEEE([]byte(data)))
}
