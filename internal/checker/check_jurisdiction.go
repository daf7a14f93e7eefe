package checker

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclint/dlclint/internal/answers"
	"github.com/dlclint/dlclint/internal/schema"
)

func init() {
	Register(Check{
		ID:       "CHK-JURISDICTION",
		Category: schema.CategoryJurisdiction,
		Title:    "Governing law, arbitration venue, and claims jurisdiction match the business state",
		Eval:     evalJurisdiction,
	})
}

var jurisdictionClauses = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"governing law", regexp.MustCompile(`(?i)governed by(?: and construed under)? the laws of(?: the state of)? ([^.;\n]+)`)},
	{"arbitration venue", regexp.MustCompile(`(?i)arbitration (?:shall|will|must) (?:be (?:conducted|held|seated)|take place) in ([^.;\n]+)`)},
	{"small claims jurisdiction", regexp.MustCompile(`(?i)small claims court(?:s)? (?:of|in|located in) ([^.;\n]+)`)},
}

// The terms must place every jurisdiction clause in the business's own
// state. A generator that defaults to Delaware or California produces a
// document the business cannot actually stand behind.
func evalJurisdiction(t *Target) []schema.Issue {
	state := t.Answers.Get(answers.KeyBusinessState)
	if state == answers.NotProvided || t.TCText == "" {
		return nil
	}

	var mismatches []string
	for _, clause := range jurisdictionClauses {
		for _, m := range clause.pattern.FindAllStringSubmatch(t.TCText, -1) {
			found := strings.TrimSpace(m[1])
			if !strings.EqualFold(found, state) && !strings.Contains(strings.ToLower(found), strings.ToLower(state)) {
				mismatches = append(mismatches, fmt.Sprintf("%s names %q", clause.name, found))
			}
		}
	}
	if len(mismatches) == 0 {
		return nil
	}
	return []schema.Issue{{
		Severity: schema.SeverityHigh,
		Title:    "Jurisdiction clauses do not match the business state",
		Description: fmt.Sprintf(
			"The questionnaire names %s as the business state, but in the terms: %s.",
			state, strings.Join(mismatches, "; "),
		),
		AffectedDocuments: []schema.DocumentKind{schema.DocTerms},
		Recommendation:    fmt.Sprintf("Set governing law, arbitration venue, and small claims jurisdiction to %s.", state),
	}}
}
