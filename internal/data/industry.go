// internal/data/industry.go
package data

import (
	"strings"

	"github.com/logic25/beacon-content-engine/internal/models"
)

// IndustryProfile carries the dashboard vocabulary and smart insights for
// one industry vertical. Fields left empty fall back to the generic profile.
type IndustryProfile struct {
	Key            string               `json:"key"`
	Label          string               `json:"label"`
	TeamNoun       string               `json:"teamNoun"`
	ClientNoun     string               `json:"clientNoun"`
	SampleTopics   []string             `json:"sampleTopics"`
	Insights       []models.InsightData `json:"insights"`
	DigestAudience string               `json:"digestAudience"`
}

// MapIndustryToKey resolves a free-text firm industry to a profile key.
// Matching is substring based and case insensitive; unknown industries
// get the generic profile.
func MapIndustryToKey(industry string) string {
	s := strings.ToLower(industry)
	switch {
	case strings.Contains(s, "account") || strings.Contains(s, "tax") || strings.Contains(s, "financial"):
		return "accounting"
	case strings.Contains(s, "law") || strings.Contains(s, "legal"):
		return "legal"
	case strings.Contains(s, "it ") || strings.Contains(s, "market") || strings.Contains(s, "consult") ||
		strings.Contains(s, "architect") || strings.Contains(s, "engineer"):
		return "technology"
	case strings.Contains(s, "real estate") || strings.Contains(s, "insurance"):
		return "realestate"
	case strings.Contains(s, "recruit") || strings.Contains(s, "staffing"):
		return "recruiting"
	default:
		return "generic"
	}
}

// ProfileFor returns the profile for an industry key, overlaying any
// vertical-specific fields on top of the generic base.
func ProfileFor(key string) IndustryProfile {
	base := industryProfiles["generic"]
	overlay, ok := industryProfiles[key]
	if !ok {
		return base
	}
	merged := base
	merged.Key = overlay.Key
	merged.Label = overlay.Label
	if overlay.TeamNoun != "" {
		merged.TeamNoun = overlay.TeamNoun
	}
	if overlay.ClientNoun != "" {
		merged.ClientNoun = overlay.ClientNoun
	}
	if len(overlay.SampleTopics) > 0 {
		merged.SampleTopics = overlay.SampleTopics
	}
	if len(overlay.Insights) > 0 {
		merged.Insights = overlay.Insights
	}
	if overlay.DigestAudience != "" {
		merged.DigestAudience = overlay.DigestAudience
	}
	return merged
}

var industryProfiles = map[string]IndustryProfile{
	"generic": {
		Key:            "generic",
		Label:          "Professional Services",
		TeamNoun:       "team",
		ClientNoun:     "clients",
		SampleTopics:   []string{"Client Management", "Billing & Fees", "Internal Processes", "Compliance"},
		DigestAudience: "the whole team",
		Insights: []models.InsightData{
			{ID: 1, Title: "Knowledge gaps cluster around billing", Description: "38% of unanswered questions this month involved billing and engagement terms. A billing FAQ doc would cover most of them.", Type: "gap", IconName: "alert-circle"},
			{ID: 2, Title: "New hires lean on the assistant heavily", Description: "Team members in their first 90 days ask 3x more questions than tenured staff. Onboarding content has outsized impact.", Type: "trend", IconName: "trending-up"},
			{ID: 3, Title: "Friday usage spike", Description: "Query volume jumps 40% on Fridays, mostly process questions ahead of deadlines. Consider a weekly process digest.", Type: "pattern", IconName: "calendar"},
		},
	},
	"accounting": {
		Key:          "accounting",
		Label:        "Accounting & Tax",
		TeamNoun:     "staff",
		ClientNoun:   "clients",
		SampleTopics: []string{"Tax Planning", "QBI & Deductions", "Entity Selection", "IRS Procedures"},
		Insights: []models.InsightData{
			{ID: 1, Title: "Tax deadline questions surging", Description: "Questions about filing deadlines and extensions are up 120% as the season approaches. A deadline cheat sheet would deflect most of them.", Type: "trend", IconName: "trending-up"},
			{ID: 2, Title: "QBI guidance is your most-cited doc", Description: "The QBI deduction guide was referenced in 47 answers this month, more than any other document. Keep it current.", Type: "pattern", IconName: "file-text"},
			{ID: 3, Title: "SALT workaround gap", Description: "Six state-specific PTE election questions went unanswered. The knowledge base covers the federal side but not state mechanics.", Type: "gap", IconName: "alert-circle"},
		},
	},
	"legal": {
		Key:          "legal",
		Label:        "Legal Services",
		TeamNoun:     "attorneys",
		ClientNoun:   "clients",
		SampleTopics: []string{"Engagement Letters", "Conflicts Checks", "Billing Guidelines", "Court Deadlines"},
		Insights: []models.InsightData{
			{ID: 1, Title: "Conflicts process questions repeat weekly", Description: "The conflicts check procedure was asked about 14 times this month. The current doc predates the new intake system.", Type: "gap", IconName: "alert-circle"},
			{ID: 2, Title: "Associates drive most usage", Description: "First- and second-year associates account for 61% of queries, concentrated on filing procedures and billing codes.", Type: "trend", IconName: "trending-up"},
			{ID: 3, Title: "Engagement letter template heavily reused", Description: "The standard engagement letter was cited in 29 answers. A matter-type-specific variant set would reduce back-and-forth.", Type: "pattern", IconName: "file-text"},
		},
	},
	"technology": {
		Key:          "technology",
		Label:        "Technology & Consulting",
		TeamNoun:     "consultants",
		ClientNoun:   "clients",
		SampleTopics: []string{"SOW Scoping", "Rate Cards", "Delivery Process", "Security Reviews"},
	},
	"realestate": {
		Key:          "realestate",
		Label:        "Real Estate & Insurance",
		TeamNoun:     "agents",
		ClientNoun:   "clients",
		SampleTopics: []string{"Commission Splits", "Disclosure Rules", "Closing Process", "Policy Terms"},
	},
	"recruiting": {
		Key:          "recruiting",
		Label:        "Recruiting & Staffing",
		TeamNoun:     "recruiters",
		ClientNoun:   "candidates",
		SampleTopics: []string{"Fee Agreements", "Sourcing Process", "Compliance", "Placement Terms"},
	},
}
