package schema

// AnalysisResult is the top-level output structure rendered for callers.
// Its JSON shape is fixed: downstream consumers render it directly.
type AnalysisResult struct {
	Summary       string      `json:"summary"`
	OverallRisk   RiskLevel   `json:"overall_risk"`
	Issues        []Issue     `json:"issues"`
	ChecksPassed  []CheckInfo `json:"checks_passed"`
	ChecksSkipped []CheckInfo `json:"checks_skipped,omitempty"`
	Meta          Meta        `json:"meta,omitempty"`
}

// Meta holds runtime metadata about the analysis run.
type Meta struct {
	Tool    string `json:"tool,omitempty"`
	Version string `json:"version,omitempty"`
	Tier    string `json:"tier,omitempty"`
}

// Severity levels for issues. Ordered: low < medium < high < critical.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityOrdinal returns the numeric ordering for a severity, used by
// threshold filtering and stable issue sorting. Returns -1 for an
// unrecognised severity.
func SeverityOrdinal(s Severity) int {
	switch s {
	case SeverityLow:
		return 0
	case SeverityMedium:
		return 1
	case SeverityHigh:
		return 2
	case SeverityCritical:
		return 3
	default:
		return -1
	}
}

// RiskLevel is the overall verdict computed from the issue list.
type RiskLevel string

const (
	RiskPass           RiskLevel = "pass"
	RiskNeedsAttention RiskLevel = "needs_attention"
	RiskAtRisk         RiskLevel = "at_risk"
)

// RiskOrdinal returns the numeric ordering for a risk level, used by
// --fail-on comparison. pass(0) < needs_attention(1) < at_risk(2).
// Returns -1 for an unrecognised level.
func RiskOrdinal(r RiskLevel) int {
	switch r {
	case RiskPass:
		return 0
	case RiskNeedsAttention:
		return 1
	case RiskAtRisk:
		return 2
	default:
		return -1
	}
}

// Category classifies the type of compliance defect. The vocabulary is
// closed and versionable: adding a check never changes the meaning of an
// existing category.
type Category string

const (
	CategoryConsentTextConsistency Category = "consent_text_consistency"
	CategoryFrequencyConsistency   Category = "frequency_consistency"
	CategoryConsentElements        Category = "consent_elements"
	CategoryStopLanguage           Category = "stop_language"
	CategoryCarrierList            Category = "carrier_list"
	CategoryJurisdiction           Category = "jurisdiction"
	CategoryBusinessName           Category = "business_name"
	CategoryRequiredSections       Category = "required_sections"
	CategoryRestrictedIndustry     Category = "restricted_industry"
	CategorySampleMessages         Category = "sample_messages"
	CategoryOptInConfirmation      Category = "optin_confirmation"
	CategoryFormLanguage           Category = "form_language"
	CategoryAddressFormat          Category = "address_format"
	CategorySubmissionParse        Category = "submission_parse"
	CategoryVersionCohort          Category = "version_cohort"
	CategoryIndustryVocabulary     Category = "industry_vocabulary"
)

// IsValidCategory reports whether c is one of the defined defect categories.
func IsValidCategory(c Category) bool {
	switch c {
	case CategoryConsentTextConsistency,
		CategoryFrequencyConsistency,
		CategoryConsentElements,
		CategoryStopLanguage,
		CategoryCarrierList,
		CategoryJurisdiction,
		CategoryBusinessName,
		CategoryRequiredSections,
		CategoryRestrictedIndustry,
		CategorySampleMessages,
		CategoryOptInConfirmation,
		CategoryFormLanguage,
		CategoryAddressFormat,
		CategorySubmissionParse,
		CategoryVersionCohort,
		CategoryIndustryVocabulary:
		return true
	}
	return false
}

// DocumentKind identifies one of the three generated artifacts.
type DocumentKind string

const (
	DocSubmission    DocumentKind = "submission_language"
	DocPrivacyPolicy DocumentKind = "privacy_policy"
	DocTerms         DocumentKind = "terms_conditions"
)

// IsValidDocumentKind reports whether k names one of the three artifacts.
func IsValidDocumentKind(k DocumentKind) bool {
	switch k {
	case DocSubmission, DocPrivacyPolicy, DocTerms:
		return true
	}
	return false
}

// Issue represents a single compliance defect found in a document set.
// Issues are produced only by the checker; each analysis run produces a
// fresh, immutable list.
type Issue struct {
	ID                string         `json:"id"`
	Severity          Severity       `json:"severity"`
	Category          Category       `json:"category"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	AffectedDocuments []DocumentKind `json:"affected_documents"`
	Recommendation    string         `json:"recommendation"`
}

// CheckInfo describes a registered check in the passed/skipped lists.
type CheckInfo struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Title    string   `json:"title"`
}
