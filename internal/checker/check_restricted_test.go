package checker

import (
	"strings"
	"testing"

	"github.com/dlclint/dlclint/internal/answers"
	"github.com/dlclint/dlclint/internal/docset"
	"github.com/dlclint/dlclint/internal/schema"
)

func restrictedAnswers() answers.Answers {
	a := cleanAnswers()
	a[answers.KeyIndustries] = "Healthcare or Medical Services"
	delete(a, answers.KeyMarketingUseCase)
	delete(a, answers.KeyMarketingFrequency)
	return a
}

func restrictedSet(t *testing.T) *docset.Set {
	t.Helper()
	sub := buildSubmission(t, subFields{
		"use_case_description":       "Appointment reminders for patients. Up to 4 msgs/mo.",
		"marketing_use_case":         "Not applicable",
		"marketing_consent_checkbox": "Not applicable",
		"opt_in_message":             "Acme Home Services LLC: You are opted in to appointment reminder alerts. Up to 4 msgs/mo. Msg & data rates may apply. Reply STOP to opt out. Reply HELP for info.",
		"form_secondary_text":        "By checking the box above, you consent to receive text messages from Acme Home Services LLC.",
	})
	pp := strings.Replace(
		privacyPolicyHTML(transactionalCheckbox),
		"Supported carriers include",
		"We send transactional messages only and do not send marketing or promotional messages. Supported carriers include", 1,
	)
	tc := strings.Replace(
		termsHTML(transactionalCheckbox),
		"Recurring text messages.",
		"Recurring transactional text messages only; we do not send marketing or promotional messages.", 1,
	)
	return &docset.Set{
		Submission:    docset.Document{Content: sub, Version: 1},
		PrivacyPolicy: docset.Document{Content: pp, Version: 1},
		Terms:         docset.Document{Content: tc, Version: 1},
	}
}

func TestAnalyze_RestrictedCompliant_Passes(t *testing.T) {
	result := Analyze(restrictedSet(t), restrictedAnswers(), nil)
	if len(result.Issues) != 0 {
		for _, i := range result.Issues {
			t.Logf("unexpected issue: %s [%s/%s] %s", i.ID, i.Severity, i.Category, i.Description)
		}
		t.Fatalf("compliant restricted set produced %d issues", len(result.Issues))
	}
	if result.Meta.Tier != "restricted" {
		t.Errorf("Meta.Tier = %q, want restricted", result.Meta.Tier)
	}
}

func TestAnalyze_Restricted_PromotionalSample_Critical(t *testing.T) {
	set := restrictedSet(t)
	set.Submission.Content = buildSubmission(t, subFields{
		"use_case_description":       "Appointment reminders for patients. Up to 4 msgs/mo.",
		"marketing_use_case":         "Not applicable",
		"marketing_consent_checkbox": "Not applicable",
		"opt_in_message":             "Acme Home Services LLC: You are opted in to appointment reminder alerts. Up to 4 msgs/mo. Msg & data rates may apply. Reply STOP to opt out. Reply HELP for info.",
		"form_secondary_text":        "By checking the box above, you consent to receive text messages from Acme Home Services LLC.",
		"sample_messages": []string{
			"Acme Home Services LLC: Ask us about our new cosmetic services! Msg & data rates may apply. Reply STOP to opt out.",
		},
	})

	result := Analyze(set, restrictedAnswers(), nil)
	var promoCritical bool
	for _, i := range issuesIn(result, schema.CategoryRestrictedIndustry) {
		if i.Severity == schema.SeverityCritical && strings.Contains(i.Description, "ask us about") {
			promoCritical = true
		}
	}
	if !promoCritical {
		t.Error("promotional sample message not flagged critical for a restricted industry")
	}
}

func TestAnalyze_Restricted_MarketingNotNulled_Critical(t *testing.T) {
	set := restrictedSet(t)
	set.Submission.Content = buildSubmission(t, subFields{
		"use_case_description": "Appointment reminders for patients. Up to 4 msgs/mo.",
		"marketing_use_case":   "Monthly wellness promotions",
		"opt_in_message":       "Acme Home Services LLC: You are opted in to appointment reminder alerts. Up to 4 msgs/mo. Msg & data rates may apply. Reply STOP to opt out. Reply HELP for info.",
		"form_secondary_text":  "By checking the boxes above, you consent to receive text messages from Acme Home Services LLC.",
	})

	result := Analyze(set, restrictedAnswers(), nil)
	var nulledCritical bool
	for _, i := range issuesIn(result, schema.CategoryRestrictedIndustry) {
		if i.Severity == schema.SeverityCritical && strings.Contains(i.Title, "not nulled") {
			nulledCritical = true
		}
	}
	if !nulledCritical {
		t.Error("live marketing fields not flagged for a restricted industry")
	}
}

func TestAnalyze_Restricted_MissingProhibition_High(t *testing.T) {
	set := restrictedSet(t)
	set.PrivacyPolicy.Content = privacyPolicyHTML(transactionalCheckbox) // no prohibition sentence

	result := Analyze(set, restrictedAnswers(), nil)
	var prohibitionHigh bool
	for _, i := range issuesIn(result, schema.CategoryRestrictedIndustry) {
		if i.Severity == schema.SeverityHigh && affects(i, schema.DocPrivacyPolicy) {
			prohibitionHigh = true
		}
	}
	if !prohibitionHigh {
		t.Error("missing prohibition statement in privacy policy not flagged high")
	}
}

func TestAnalyze_Restricted_OptInMentionsMarketing_Medium(t *testing.T) {
	set := restrictedSet(t)
	set.Submission.Content = buildSubmission(t, subFields{
		"use_case_description":       "Appointment reminders for patients. Up to 4 msgs/mo.",
		"marketing_use_case":         "Not applicable",
		"marketing_consent_checkbox": "Not applicable",
		"opt_in_message":             "Acme Home Services LLC: You are opted in to marketing alerts. Up to 4 msgs/mo. Msg & data rates may apply. Reply STOP to opt out. Reply HELP for info.",
		"form_secondary_text":        "By checking the box above, you consent to receive text messages from Acme Home Services LLC.",
	})

	result := Analyze(set, restrictedAnswers(), nil)
	issues := issuesIn(result, schema.CategoryOptInConfirmation)
	if len(issues) != 1 || issues[0].Severity != schema.SeverityMedium {
		t.Fatalf("optin_confirmation issues = %+v, want one medium", issues)
	}
}
