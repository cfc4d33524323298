package hubspot

import "strings"

// Lead tiers returned by DetermineLeadActions.
const (
	TierQualified          = "QUALIFIED"
	TierMarketingQualified = "MARKETING_QUALIFIED"
	TierNew                = "NEW"
)

// Action types. These describe CRM work to perform; only
// update-property is executed directly, the rest go through a
// WorkflowEnroller.
const (
	ActionUpdateProperty = "update-property"
	ActionCreateTask     = "create-task"
	ActionEnrollSequence = "enroll-sequence"
)

type LeadCriteria struct {
	// One of the enrollment experience levels.
	Experience string
	// Which track the lead cares about: "technical", "business",
	// "personal", or empty.
	Interest string
	Company  string
	// Free-text role/title, scanned for seniority keywords.
	Role string
}

type LeadAction struct {
	Type   string `json:"type"`
	Name   string `json:"name"`
	Detail string `json:"detail,omitempty"`
}

var experiencePoints = map[string]int{
	"none":         5,
	"beginner":     10,
	"intermediate": 20,
	"advanced":     30,
	"expert":       35,
	"professional": 25,
}

var interestPoints = map[string]int{
	"technical": 25,
	"business":  20,
	"personal":  10,
}

var seniorityKeywords = []string{
	"chief", "cto", "ceo", "founder", "vp", "vice president",
	"director", "head of", "lead", "manager",
}

// CalculateLeadScore maps enrollment-form criteria to an integer score
// in [0, 100]. Pure and deterministic; the same criteria always yield
// the same score.
func CalculateLeadScore(criteria LeadCriteria) int {
	score := 0

	score += experiencePoints[strings.ToLower(criteria.Experience)]
	score += interestPoints[strings.ToLower(criteria.Interest)]

	if strings.TrimSpace(criteria.Company) != "" {
		score += 15
	}

	role := strings.ToLower(criteria.Role)
	for _, kw := range seniorityKeywords {
		if strings.Contains(role, kw) {
			score += 15
			break
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return score
}

// DetermineLeadActions buckets a score into a tier and returns the CRM
// actions that tier calls for.
func DetermineLeadActions(score int, criteria LeadCriteria) (string, []LeadAction) {
	switch {
	case score >= 50:
		actions := []LeadAction{
			{Type: ActionUpdateProperty, Name: "lifecyclestage", Detail: "salesqualifiedlead"},
			{Type: ActionCreateTask, Name: "follow-up-call", Detail: "High-score lead, contact within 24h"},
		}
		if criteria.Interest != "" {
			actions = append(actions, LeadAction{
				Type:   ActionEnrollSequence,
				Name:   "sales-outreach-" + strings.ToLower(criteria.Interest),
				Detail: "Tailored outreach sequence",
			})
		}
		return TierQualified, actions

	case score >= 25:
		return TierMarketingQualified, []LeadAction{
			{Type: ActionUpdateProperty, Name: "lifecyclestage", Detail: "marketingqualifiedlead"},
			{Type: ActionEnrollSequence, Name: "nurture-sequence", Detail: "Mid-score nurture drip"},
		}

	default:
		return TierNew, []LeadAction{
			{Type: ActionEnrollSequence, Name: "welcome-series", Detail: "New lead welcome emails"},
		}
	}
}
