package risk

import (
	"strings"
	"testing"

	"github.com/dlclint/dlclint/internal/schema"
)

func makeIssues(severities ...schema.Severity) []schema.Issue {
	issues := make([]schema.Issue, len(severities))
	for i, s := range severities {
		issues[i] = schema.Issue{Severity: s}
	}
	return issues
}

func TestAggregate_Empty_Pass(t *testing.T) {
	if got := Aggregate(nil); got != schema.RiskPass {
		t.Errorf("Aggregate(nil) = %q, want pass", got)
	}
}

func TestAggregate_Critical_AtRisk(t *testing.T) {
	if got := Aggregate(makeIssues(schema.SeverityCritical)); got != schema.RiskAtRisk {
		t.Errorf("Aggregate(critical) = %q, want at_risk", got)
	}
}

func TestAggregate_TwoHigh_AtRisk(t *testing.T) {
	if got := Aggregate(makeIssues(schema.SeverityHigh, schema.SeverityHigh)); got != schema.RiskAtRisk {
		t.Errorf("Aggregate(high,high) = %q, want at_risk", got)
	}
}

func TestAggregate_OneHigh_NeedsAttention(t *testing.T) {
	if got := Aggregate(makeIssues(schema.SeverityHigh)); got != schema.RiskNeedsAttention {
		t.Errorf("Aggregate(high) = %q, want needs_attention", got)
	}
}

func TestAggregate_Medium_NeedsAttention(t *testing.T) {
	if got := Aggregate(makeIssues(schema.SeverityMedium)); got != schema.RiskNeedsAttention {
		t.Errorf("Aggregate(medium) = %q, want needs_attention", got)
	}
}

func TestAggregate_LowOnly_Pass(t *testing.T) {
	if got := Aggregate(makeIssues(schema.SeverityLow)); got != schema.RiskPass {
		t.Errorf("Aggregate(low) = %q, want pass", got)
	}
}

func TestCounts(t *testing.T) {
	c, h, m, l := Counts(makeIssues(
		schema.SeverityCritical, schema.SeverityHigh, schema.SeverityHigh,
		schema.SeverityMedium, schema.SeverityLow,
	))
	if c != 1 || h != 2 || m != 1 || l != 1 {
		t.Errorf("Counts = %d,%d,%d,%d", c, h, m, l)
	}
}

func TestFilterBySeverity(t *testing.T) {
	issues := makeIssues(schema.SeverityLow, schema.SeverityMedium, schema.SeverityHigh, schema.SeverityCritical)
	got := FilterBySeverity(issues, schema.SeverityHigh)
	if len(got) != 2 {
		t.Fatalf("filtered len = %d, want 2", len(got))
	}
	for _, issue := range got {
		if schema.SeverityOrdinal(issue.Severity) < schema.SeverityOrdinal(schema.SeverityHigh) {
			t.Errorf("issue below threshold survived: %q", issue.Severity)
		}
	}
	if got := FilterBySeverity(issues, schema.SeverityLow); len(got) != 4 {
		t.Errorf("low threshold should pass everything, got %d", len(got))
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(schema.RiskPass, nil, 16)
	if !strings.Contains(s, "16 checks passed") {
		t.Errorf("Summarize(pass) = %q", s)
	}
	s = Summarize(schema.RiskAtRisk, makeIssues(schema.SeverityCritical, schema.SeverityHigh), 10)
	if !strings.Contains(s, "2 issue(s)") || !strings.Contains(s, "at_risk") {
		t.Errorf("Summarize = %q", s)
	}
}
