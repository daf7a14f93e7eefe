package risk

import (
	"fmt"

	"github.com/dlclint/dlclint/internal/schema"
)

// Aggregate reduces an issue list to an overall risk level.
// Pure and total: the same issue list always yields the same level.
//
//	at_risk          any critical issue, or two or more high issues
//	needs_attention  no critical, at most one high, and at least one
//	                 medium issue or exactly one high
//	pass             otherwise
func Aggregate(issues []schema.Issue) schema.RiskLevel {
	critical, high, medium, _ := Counts(issues)
	switch {
	case critical > 0 || high >= 2:
		return schema.RiskAtRisk
	case high == 1 || medium > 0:
		return schema.RiskNeedsAttention
	default:
		return schema.RiskPass
	}
}

// Counts returns the per-severity issue counts.
func Counts(issues []schema.Issue) (critical, high, medium, low int) {
	for _, issue := range issues {
		switch issue.Severity {
		case schema.SeverityCritical:
			critical++
		case schema.SeverityHigh:
			high++
		case schema.SeverityMedium:
			medium++
		case schema.SeverityLow:
			low++
		}
	}
	return
}

// FilterBySeverity returns only issues at or above the threshold severity.
func FilterBySeverity(issues []schema.Issue, threshold schema.Severity) []schema.Issue {
	if threshold == schema.SeverityLow {
		return issues
	}
	out := make([]schema.Issue, 0, len(issues))
	for _, issue := range issues {
		if schema.SeverityOrdinal(issue.Severity) >= schema.SeverityOrdinal(threshold) {
			out = append(out, issue)
		}
	}
	return out
}

// Summarize produces the one-line summary for an AnalysisResult.
func Summarize(level schema.RiskLevel, issues []schema.Issue, passed int) string {
	critical, high, medium, low := Counts(issues)
	if len(issues) == 0 {
		return fmt.Sprintf("All %d checks passed; the document set is ready for carrier submission.", passed)
	}
	return fmt.Sprintf(
		"%d issue(s) found (%d critical, %d high, %d medium, %d low); overall risk: %s.",
		len(issues), critical, high, medium, low, level,
	)
}
