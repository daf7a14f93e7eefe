package checker

import (
	"github.com/dlclint/dlclint/internal/answers"
	"github.com/dlclint/dlclint/internal/docset"
	"github.com/dlclint/dlclint/internal/risk"
	"github.com/dlclint/dlclint/internal/schema"
)

// Analyze runs the full check matrix over a document set and reduces the
// findings to an AnalysisResult. Referentially transparent: the same
// inputs always yield the same result, and the inputs are never mutated.
// It never errors; malformed input degrades to fewer passing checks.
func Analyze(set *docset.Set, a answers.Answers, disabled map[string]bool) *schema.AnalysisResult {
	t := NewTarget(set, a)
	issues, passed, skipped := Run(t, disabled)
	level := risk.Aggregate(issues)

	if issues == nil {
		issues = []schema.Issue{}
	}
	if passed == nil {
		passed = []schema.CheckInfo{}
	}
	return &schema.AnalysisResult{
		Summary:       risk.Summarize(level, issues, len(passed)),
		OverallRisk:   level,
		Issues:        issues,
		ChecksPassed:  passed,
		ChecksSkipped: skipped,
		Meta:          schema.Meta{Tier: string(t.Class.Tier)},
	}
}
