package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dlclint/dlclint/internal/schema"
)

func sampleResult() *schema.AnalysisResult {
	return &schema.AnalysisResult{
		Summary:     "1 issue found (1 high). Attention needed before submission.",
		OverallRisk: schema.RiskNeedsAttention,
		Issues: []schema.Issue{
			{
				ID:                "CHK-CARRIER-LIST-a1b2c3d4",
				Severity:          schema.SeverityHigh,
				Category:          schema.CategoryCarrierList,
				Title:             "Carrier list names Sprint",
				Description:       "Sprint appears in a carrier list.",
				AffectedDocuments: []schema.DocumentKind{schema.DocPrivacyPolicy, schema.DocTerms},
				Recommendation:    "Remove Sprint and use the supported-carrier list exactly.",
			},
		},
		ChecksPassed: []schema.CheckInfo{
			{ID: "CHK-STOP-LANGUAGE", Category: schema.CategoryStopLanguage, Title: "Opt-out guidance is uniform"},
		},
		ChecksSkipped: []schema.CheckInfo{
			{ID: "CHK-SAMPLE-FORMAT", Category: schema.CategorySampleMessages, Title: "Sample messages follow the required format"},
		},
		Meta: schema.Meta{Tool: "dlclint", Version: "1.0", Tier: "unrestricted"},
	}
}

func TestNewRenderer_JSON(t *testing.T) {
	r, err := NewRenderer("json")
	if err != nil {
		t.Fatalf("NewRenderer json: %v", err)
	}
	out, err := r.Render(sampleResult())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var decoded schema.AnalysisResult
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, out)
	}
	if decoded.OverallRisk != schema.RiskNeedsAttention {
		t.Errorf("overall risk mismatch: got %q", decoded.OverallRisk)
	}
	if len(decoded.Issues) != 1 {
		t.Errorf("issues = %d, want 1", len(decoded.Issues))
	}
}

func TestNewRenderer_Markdown(t *testing.T) {
	r, err := NewRenderer("md")
	if err != nil {
		t.Fatalf("NewRenderer md: %v", err)
	}
	out, err := r.Render(sampleResult())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "# Compliance Analysis") {
		t.Errorf("markdown missing header: %q", s)
	}
	if !strings.Contains(s, "needs_attention") {
		t.Errorf("markdown missing risk level: %q", s)
	}
	if !strings.Contains(s, "CHK-CARRIER-LIST-a1b2c3d4") {
		t.Errorf("markdown missing issue ID: %q", s)
	}
	if !strings.Contains(s, "## Checks Skipped") {
		t.Errorf("markdown missing skipped section: %q", s)
	}
}

func TestNewRenderer_MarkdownOmitsEmptySections(t *testing.T) {
	r, _ := NewRenderer("md")
	res := sampleResult()
	res.Issues = nil
	res.ChecksSkipped = nil
	out, err := r.Render(res)
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if strings.Contains(s, "## Issues") {
		t.Errorf("markdown should omit empty issue section: %q", s)
	}
	if strings.Contains(s, "## Checks Skipped") {
		t.Errorf("markdown should omit empty skipped section: %q", s)
	}
}

func TestNewRenderer_UnknownFormat(t *testing.T) {
	if _, err := NewRenderer("xml"); err == nil {
		t.Error("expected error for unknown format, got nil")
	}
}
