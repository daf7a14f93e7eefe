package industry

// The rule tables are data, not code: the checking logic that consumes them
// never special-cases an industry by name.

// ProhibitedIndustries are the six categories blocked from A2P 10DLC
// registration entirely. No exceptions, no partial matches.
var ProhibitedIndustries = []string{
	"Cannabis or Hemp Products",
	"Payday Loans",
	"Third-Party Debt Collection",
	"Firearms Dealers",
	"Gambling or Sweepstakes",
	"Illicit Drugs or Paraphernalia",
}

// RestrictedRules maps each restricted industry to its transactional-only
// messaging rule.
var RestrictedRules = map[string]Rule{
	"Healthcare or Medical Services": {
		Prohibited: []string{
			"promotional offers or discounts",
			"new service announcements",
			"cosmetic or elective procedure marketing",
			"wellness product upsells",
		},
		Allowed: []string{
			"appointment reminders and confirmations",
			"prescription ready notifications",
			"test result availability notices",
			"billing and insurance notifications",
		},
		RegulatoryNote: "HIPAA marketing rules (45 CFR 164.508) and carrier transactional-only policy for healthcare senders.",
	},
	"Legal Services": {
		Prohibited: []string{
			"client solicitation",
			"promotional offers for legal services",
			"settlement or outcome advertising",
		},
		Allowed: []string{
			"appointment and court date reminders",
			"case status updates",
			"document signature requests",
			"billing notifications",
		},
		RegulatoryNote: "State bar advertising and solicitation rules (ABA Model Rule 7.3).",
	},
	"Financial Services or Lending": {
		Prohibited: []string{
			"loan or credit offers",
			"rate promotions",
			"refinancing marketing",
		},
		Allowed: []string{
			"account balance and activity alerts",
			"payment due reminders",
			"fraud and security notifications",
			"application status updates",
		},
		RegulatoryNote: "TILA advertising requirements (12 CFR 1026.24) and UDAAP exposure for unsolicited credit marketing.",
	},
	"Debt Forgiveness or Credit Repair": {
		Prohibited: []string{
			"settlement outcome promotions",
			"credit score improvement claims",
			"fee-based enrollment marketing",
		},
		Allowed: []string{
			"enrollment status updates",
			"scheduled consultation reminders",
			"document request notifications",
		},
		RegulatoryNote: "CROA (15 U.S.C. 1679) and the FTC Telemarketing Sales Rule advance-fee provisions.",
	},
}

// unrestrictedVocabulary lists the ordinary industry labels the
// questionnaire offers. Labels outside every vocabulary are reported as
// unknown.
var unrestrictedVocabulary = []string{
	"Retail or E-Commerce",
	"Restaurants or Food Service",
	"Fitness or Wellness",
	"Home Services",
	"Automotive",
	"Beauty or Salon Services",
	"Education or Tutoring",
	"Real Estate",
	"Events or Entertainment",
	"Nonprofit or Religious Organization",
	"Professional Services",
	"Technology or Software",
}

var (
	prohibitedSet   = make(map[string]bool, len(ProhibitedIndustries))
	unrestrictedSet = make(map[string]bool, len(unrestrictedVocabulary))
)

func init() {
	for _, label := range ProhibitedIndustries {
		prohibitedSet[label] = true
	}
	for _, label := range unrestrictedVocabulary {
		unrestrictedSet[label] = true
	}
}
