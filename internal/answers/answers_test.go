package answers

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGet_MissingKeyDefaultsToNA(t *testing.T) {
	a := Answers{}
	if got := a.Get(KeyWebsite); got != NotProvided {
		t.Errorf("Get(missing) = %q, want %q", got, NotProvided)
	}
}

func TestGet_BlankValueDefaultsToNA(t *testing.T) {
	a := Answers{KeyWebsite: "   "}
	if got := a.Get(KeyWebsite); got != NotProvided {
		t.Errorf("Get(blank) = %q, want %q", got, NotProvided)
	}
}

func TestGet_TrimsValue(t *testing.T) {
	a := Answers{KeyLegalBusinessName: "  Acme Dental LLC  "}
	if got := a.Get(KeyLegalBusinessName); got != "Acme Dental LLC" {
		t.Errorf("Get = %q", got)
	}
}

func TestIndustries_SplitsAndTrims(t *testing.T) {
	a := Answers{KeyIndustries: "Healthcare or Medical Services, Retail ,"}
	got := a.Industries()
	if len(got) != 2 {
		t.Fatalf("Industries len = %d, want 2: %v", len(got), got)
	}
	if got[0] != "Healthcare or Medical Services" || got[1] != "Retail" {
		t.Errorf("Industries = %v", got)
	}
}

func TestIndustries_Empty(t *testing.T) {
	if got := (Answers{}).Industries(); got != nil {
		t.Errorf("Industries = %v, want nil", got)
	}
}

func TestFrequency_PerCampaign(t *testing.T) {
	a := Answers{
		KeyMarketingFrequency:     "up to 4 msgs/mo",
		KeyTransactionalFrequency: "varies",
	}
	if got := a.Frequency("marketing"); got != "up to 4 msgs/mo" {
		t.Errorf("Frequency(marketing) = %q", got)
	}
	if got := a.Frequency("transactional"); got != "varies" {
		t.Errorf("Frequency(transactional) = %q", got)
	}
	if got := a.Frequency("other"); got != NotProvided {
		t.Errorf("Frequency(other) = %q, want %q", got, NotProvided)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answers.json")
	content := `{"legal_business_name": "Acme Dental LLC", "business_state": "Texas"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	a, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if a.Get(KeyBusinessState) != "Texas" {
		t.Errorf("business_state = %q", a.Get(KeyBusinessState))
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("{oops")); err == nil {
		t.Fatal("expected error for malformed answers JSON")
	}
}
