// internal/data/mockdata.go
// Seed data for Beacon, a content intelligence platform for professional
// service firms. Everything here is session-local demo data; nothing is read
// from disk or a database at runtime.
package data

import (
	"math/rand"
	"time"

	"github.com/logic25/beacon-content-engine/internal/models"
)

var Metrics = []models.MetricData{
	{Label: "Total Questions", Value: "1,247", Sublabel: "Last 30 days", Trend: 12.5, Icon: "MessageSquare"},
	{Label: "Success Rate", Value: "94.2%", Sublabel: "1,175 answered", Trend: 2.1, Icon: "CheckCircle"},
	{Label: "Active Users", Value: "23", Sublabel: "Across 4 teams", Trend: 8.3, Icon: "Users"},
	{Label: "API Cost", Value: "$18.42", Sublabel: "AI models $14.20 · Embeddings $4.22", Trend: -3.2, Icon: "DollarSign"},
	{Label: "Avg Response", Value: "2.3s", Sublabel: "P95: 4.1s", Trend: -8.5, Icon: "Clock"},
	{Label: "Pending Reviews", Value: "7", Sublabel: "3 corrections · 4 feedback", Trend: 0, Icon: "AlertCircle"},
}

var Conversations = []models.Conversation{
	{
		ID: 1, Timestamp: "2026-02-10T14:32:00", UserName: "Sarah M.",
		Question:        "What are the new IRS guidelines for pass-through entity deductions in 2026?",
		ResponsePreview: "Under the updated IRS guidance for 2026, pass-through entity (PTE) deductions have been modified...",
		FullResponse:    "Under the updated IRS guidance for 2026, **pass-through entity (PTE) deductions** have been modified to reflect new income thresholds and reporting requirements.\n\n1. **Qualified Business Income (QBI) deduction** — The Section 199A deduction remains at 20% but with updated income phase-out thresholds for 2026.\n2. **New reporting requirements** — PTEs must now file Form 8995-A with additional schedules for aggregated businesses.\n3. **SALT workaround updates** — Several states now allow PTE-level tax elections. The IRS has confirmed these are deductible at the entity level.\n4. **K-1 changes** — Updated Box 20 codes for QBI reporting take effect for 2026 tax year returns.\n\nClients with pass-through income should review their entity elections before the March 15 deadline.\n\n**Sources:** IRS Notice 2026-12, Section 199A Final Regs, AICPA Tax Section Update",
		Topic:           "Tax Planning", HadSources: true,
		Sources:  []string{"IRS Notice 2026-12", "Section 199A Final Regulations", "AICPA Tax Section Update"},
		Answered: true, ResponseTimeMs: 1820, Confidence: 0.92,
	},
	{
		ID: 2, Timestamp: "2026-02-10T13:15:00", UserName: "Mike T.",
		Question:        "Can you pull up the engagement letter template for new advisory clients?",
		ResponsePreview: "Here's the current engagement letter template for advisory services...",
		FullResponse:    "Here's the current **engagement letter template** for advisory services.\n\nKey clauses to include:\n- **Scope limitation** — Clearly define what's included and excluded\n- **Fee schedule** — Monthly retainer with quarterly true-up\n- **Termination** — 30-day written notice by either party\n- **Confidentiality** — Standard NDA provisions\n\nAlways customize the scope section for each client and send via DocuSign for tracking.\n\n**Sources:** Firm Engagement Templates, Professional Standards Guide",
		Topic:           "Client Management", HadSources: true,
		Sources:  []string{"Firm Engagement Templates", "Professional Standards Guide"},
		Answered: true, ResponseTimeMs: 3200, Confidence: 0.88,
	},
	{
		ID: 3, Timestamp: "2026-02-10T11:45:00", UserName: "David L.",
		Question:        "What marketing channels work best for B2B professional services?",
		ResponsePreview: "For B2B professional services firms, the highest-performing marketing channels include...",
		FullResponse:    "For B2B professional services firms, the highest-performing marketing channels in 2026 include:\n\n- **LinkedIn organic + ads** — Highest B2B conversion rates, especially for thought leadership\n- **Email newsletters** — 47% of decision-makers say they consume content via email first\n- **Webinars / virtual events** — Great for lead nurturing and establishing expertise\n- **SEO / blog content** — Long-term compounding traffic\n\nFocus on 2-3 channels rather than spreading thin, and track pipeline attribution rather than MQLs.\n\n**Sources:** HubSpot B2B Benchmarks 2026, LinkedIn Marketing Guide, Firm Marketing Playbook",
		Topic:           "Marketing Strategy", HadSources: true,
		Sources:  []string{"HubSpot B2B Benchmarks 2026", "LinkedIn Marketing Guide", "Firm Marketing Playbook"},
		Answered: true, ResponseTimeMs: 2100, Confidence: 0.85,
	},
	{
		ID: 4, Timestamp: "2026-02-09T16:20:00", UserName: "Lisa K.",
		Question:        "How should we handle a client dispute over billing for out-of-scope work?",
		ResponsePreview: "When handling billing disputes for out-of-scope work, follow the firm's escalation procedure...",
		FullResponse:    "When handling billing disputes for out-of-scope work:\n\n1. **Review the engagement letter** — Check the exact scope definition\n2. **Pull the communication trail** — Emails or messages where additional work was discussed\n3. **Escalate in order** — Partner discussion, written scope memo, then mediation if unresolved after 30 days\n\nNever perform out-of-scope work without written approval, and send change order notifications within 48 hours.\n\n**Sources:** Client Dispute Resolution Policy, Engagement Management Guidelines",
		Topic:           "Client Management", HadSources: true,
		Sources:  []string{"Client Dispute Resolution Policy", "Engagement Management Guidelines"},
		Answered: true, ResponseTimeMs: 1950, Confidence: 0.91,
	},
	{
		ID: 5, Timestamp: "2026-02-09T14:00:00", UserName: "James R.",
		Question:        "What's the best CRM setup for a 20-person consulting firm?",
		ResponsePreview: "For a 20-person consulting firm, I'd recommend a tiered CRM approach...",
		FullResponse:    "For a 20-person consulting firm:\n\n**Best overall: HubSpot CRM (Professional)** — built-in email tracking, deal pipeline, and reporting. Runner-up: Pipedrive for firms focused on deal flow.\n\nPrioritize pipeline visibility, email integration, activity reminders, and reporting. Plan an 8-week rollout: import contacts, configure stages, integrate email, train the team, then run the first reporting cycle.\n\nCommon mistakes: over-customizing fields, not enforcing data entry habits, skipping training.\n\n**Sources:** CRM Evaluation Guide, Firm Tech Stack Documentation",
		Topic:           "Technology", HadSources: true,
		Sources:  []string{"CRM Evaluation Guide", "Firm Tech Stack Documentation"},
		Answered: true, ResponseTimeMs: 2400, Confidence: 0.87,
	},
	{
		ID: 6, Timestamp: "2026-02-09T10:30:00", UserName: "Sarah M.",
		Question:        "Are there updated continuing education requirements for CPAs this year?",
		ResponsePreview: "Yes, several state boards have updated CPE requirements for 2026...",
		FullResponse:    "Yes, several state boards have updated CPE requirements for 2026:\n\n- **AICPA** — New ethics course requirement every 2 years (was every 3)\n- **New York** — 40 hours/year, now requires 2 hours in DEI-related topics\n- **California** — 80 hours/2 years, added a cybersecurity requirement (4 hours)\n- **Texas** — 40 hours/year, ethics requirement increased to 4 hours\n\nSet calendar reminders 90 days before deadlines and track hours in the CPE spreadsheet.\n\n**Note:** I wasn't able to verify the exact California cybersecurity requirement — recommend checking the CA Board of Accountancy website directly.\n\n**Sources:** AICPA CPE Standards, NASBA 2026 Updates",
		Topic:           "Compliance", HadSources: false,
		Answered: true, ResponseTimeMs: 1600, Confidence: 0.79,
	},
}

var Topics = []models.TopicBreakdown{
	{Topic: "Tax Planning", Count: 312, Percentage: 25, Color: "hsl(280, 67%, 55%)"},
	{Topic: "Client Management", Count: 249, Percentage: 20, Color: "hsl(217, 91%, 60%)"},
	{Topic: "Marketing Strategy", Count: 199, Percentage: 16, Color: "hsl(36, 95%, 50%)"},
	{Topic: "Compliance", Count: 162, Percentage: 13, Color: "hsl(0, 72%, 51%)"},
	{Topic: "Technology", Count: 125, Percentage: 10, Color: "hsl(142, 71%, 45%)"},
	{Topic: "Operations", Count: 100, Percentage: 8, Color: "hsl(190, 70%, 50%)"},
	{Topic: "HR & Talent", Count: 62, Percentage: 5, Color: "hsl(320, 60%, 50%)"},
	{Topic: "General", Count: 38, Percentage: 3, Color: "hsl(220, 10%, 55%)"},
}

var TopUsers = []models.TopUser{
	{Rank: 1, Name: "Sarah M.", QuestionsAsked: 89},
	{Rank: 2, Name: "Mike T.", QuestionsAsked: 76},
	{Rank: 3, Name: "David L.", QuestionsAsked: 64},
	{Rank: 4, Name: "Lisa K.", QuestionsAsked: 52},
	{Rank: 5, Name: "James R.", QuestionsAsked: 41},
}

var SlashCommands = []models.SlashCommandUsage{
	{Command: "/suggest", Uses: 34},
	{Command: "/help", Uses: 28},
	{Command: "/stats", Uses: 19},
	{Command: "/feedback", Uses: 15},
	{Command: "/report", Uses: 8},
}

var Suggestions = []models.Suggestion{
	{ID: 1, User: "Sarah M.", When: "2026-02-10T09:30:00", WrongAnswer: "Advisory retainers require a 12-month commitment", CorrectAnswer: "Retainer agreements can be structured as month-to-month with 30-day notice", Status: models.SuggestionPending},
	{ID: 2, User: "Mike T.", When: "2026-02-09T14:15:00", WrongAnswer: "The QBI deduction cap is $150,000", CorrectAnswer: "The QBI deduction phases out at $182,100 (single) / $364,200 (joint) for 2026", Status: models.SuggestionPending},
	{ID: 3, User: "David L.", When: "2026-02-08T11:00:00", WrongAnswer: "LinkedIn ads convert at 1-2% for B2B", CorrectAnswer: "LinkedIn ads convert at 2.5-4% for B2B professional services when targeting decision-makers", Status: models.SuggestionPending},
}

var FailedQueries = []models.FailedQuery{
	{ID: 1, Timestamp: "2026-02-10T10:15:00", UserName: "Lisa K.", Question: "What's the latest guidance on revenue recognition for subscription services?", Reason: "No relevant sources found in knowledge base"},
	{ID: 2, Timestamp: "2026-02-09T16:45:00", UserName: "James R.", Question: "Can you pull our utilization rates for January?", Reason: "External API timeout — practice management system unavailable"},
}

var MostAsked = []models.MostAskedQuestion{
	{Rank: 1, Question: "What are the 2026 tax planning strategies for pass-through entities?", TimesAsked: 23},
	{Rank: 2, Question: "How should we structure advisory retainer agreements?", TimesAsked: 18},
	{Rank: 3, Question: "What marketing channels work best for B2B services?", TimesAsked: 15},
	{Rank: 4, Question: "How do we handle client billing disputes?", TimesAsked: 12},
	{Rank: 5, Question: "What are the updated CPE requirements for 2026?", TimesAsked: 9},
}

var Roadmap = []models.RoadmapItem{
	{ID: 1, Idea: "Auto-generate client proposal drafts", RequestedBy: "Sarah M.", Priority: "high", Status: "in_progress", Target: "Q1 2026", Notes: "MVP ready for testing"},
	{ID: 2, Idea: "Integration with practice management software", RequestedBy: "Mike T.", Priority: "high", Status: "planned", Target: "Q2 2026", Notes: "API access pending approval"},
	{ID: 3, Idea: "Multi-language support (Spanish)", RequestedBy: "Lisa K.", Priority: "medium", Status: "backlog", Target: "TBD", Notes: "Requested by 3 users"},
	{ID: 4, Idea: "Slack thread summarization", RequestedBy: "David L.", Priority: "low", Status: "backlog", Target: "TBD", Notes: ""},
	{ID: 5, Idea: "PDF document upload & parsing", RequestedBy: "James R.", Priority: "high", Status: "shipped", Target: "Q4 2025", Notes: "Released v1.2"},
}

var ApprovedCorrections = []models.ApprovedCorrection{
	{ID: 1, DateApproved: "2026-02-07", ApprovedBy: "Managing Partner", WhatWasWrong: "Stated QBI deduction threshold was $150,000", CorrectionApplied: "Updated to reflect 2026 thresholds: $182,100 (single) / $364,200 (MFJ)"},
	{ID: 2, DateApproved: "2026-02-05", ApprovedBy: "Managing Partner", WhatWasWrong: "Incorrect LinkedIn ad conversion rate for B2B", CorrectionApplied: "Updated to 2.5-4% based on 2026 industry benchmarks"},
	{ID: 3, DateApproved: "2026-02-01", ApprovedBy: "Sarah M.", WhatWasWrong: "Missing info on SALT workaround states", CorrectionApplied: "Added list of 36 states with PTE-level tax elections and deductibility confirmation"},
}

// GenerateDailyUsage synthesizes the last n days of query volume, newest
// last. Values are randomized, so consecutive calls differ.
func GenerateDailyUsage(n int) []models.DailyUsage {
	out := make([]models.DailyUsage, 0, n)
	for i := 0; i < n; i++ {
		date := time.Now().AddDate(0, 0, -(n - 1 - i))
		queries := rand.Intn(40) + 20
		answered := int(float64(queries) * (0.88 + rand.Float64()*0.1))
		out = append(out, models.DailyUsage{
			Date:     date.Format("2006-01-02"),
			Queries:  queries,
			Answered: answered,
			Cost:     float64(int((rand.Float64()*0.8+0.3)*100)) / 100,
		})
	}
	return out
}
