// internal/data/ideas.go
package data

import "github.com/logic25/beacon-content-engine/internal/models"

// SeedContentIdeas is the demo idea set shown before the first generation
// run. A successful generation replaces it wholesale.
var SeedContentIdeas = []models.ContentIdea{
	{
		ID:         "seed-idea-1",
		Title:      "Advisory Retainer Agreements: A Complete Guide for Service Firms",
		Type:       models.ContentTypeBlogPost,
		Confidence: 0.94,
		Sources: []models.SourceRef{
			{Type: models.SourceRefConversation, Label: "Mike T. asked about engagement letter templates", ID: "2"},
			{Type: models.SourceRefDocument, Label: "Advisory Retainer Agreement Guide", ID: "6"},
			{Type: models.SourceRefTrend, Label: "18 team questions about retainers in 30 days"},
			{Type: models.SourceRefCorrection, Label: "Retainer commitments can be month-to-month"},
		},
		Reasoning:        "Retainer structures are the 2nd most-asked question (18x), and a recent correction shows the team was confused about commitment terms. High-value blog post targeting 'advisory retainer agreement template'.",
		SuggestedOutline: []string{"What is an advisory retainer?", "Key components every agreement needs", "Three pricing models compared", "Handling scope changes", "Template download"},
		EstimatedImpact:  models.ImpactHigh,
		CreatedAt:        "2026-02-11",
	},
	{
		ID:         "seed-idea-2",
		Title:      "2026 Tax Planning Strategies Every Small Business Owner Must Know",
		Type:       models.ContentTypeNewsletter,
		Confidence: 0.92,
		Sources: []models.SourceRef{
			{Type: models.SourceRefConversation, Label: "Sarah M. asked about pass-through deductions", ID: "1"},
			{Type: models.SourceRefDocument, Label: "Section 199A QBI Deduction Guide", ID: "1"},
			{Type: models.SourceRefDocument, Label: "SALT Workaround State-by-State Guide", ID: "3"},
			{Type: models.SourceRefCorrection, Label: "QBI threshold corrected to $182,100/$364,200"},
		},
		Reasoning:        "Most-asked topic (23 questions), recent correction means even the team was confused. Timely for tax planning season. Could drive newsletter signups.",
		SuggestedOutline: []string{"2026 QBI deduction changes", "SALT workaround expansion to 36 states", "Retirement plan maximization strategies", "Key deadlines and action items"},
		EstimatedImpact:  models.ImpactHigh,
		CreatedAt:        "2026-02-11",
	},
	{
		ID:         "seed-idea-3",
		Title:      "B2B Marketing for Professional Services: What Actually Works in 2026",
		Type:       models.ContentTypeBlogPost,
		Confidence: 0.87,
		Sources: []models.SourceRef{
			{Type: models.SourceRefConversation, Label: "David L. asked about B2B marketing channels", ID: "3"},
			{Type: models.SourceRefDocument, Label: "B2B Marketing Channel Playbook", ID: "10"},
			{Type: models.SourceRefDocument, Label: "LinkedIn Content Strategy Guide", ID: "11"},
			{Type: models.SourceRefCorrection, Label: "LinkedIn converts at 2.5-4%, not 1-2%"},
		},
		Reasoning:        "15 team questions about marketing strategies. Recent correction about LinkedIn conversion rates shows common misconception worth addressing publicly.",
		SuggestedOutline: []string{"Top channels ranked by ROI", "LinkedIn deep-dive with real benchmarks", "Content repurposing strategy", "Measuring what matters: pipeline vs MQLs"},
		EstimatedImpact:  models.ImpactMedium,
		CreatedAt:        "2026-02-11",
	},
	{
		ID:         "seed-idea-4",
		Title:      "How Our Firm Uses AI to Answer 94% of Internal Questions",
		Type:       models.ContentTypeBlogPost,
		Confidence: 0.81,
		Sources: []models.SourceRef{
			{Type: models.SourceRefDocument, Label: "AI Knowledge Base Implementation", ID: "22"},
			{Type: models.SourceRefDocument, Label: "CRM Setup & Configuration Guide", ID: "21"},
			{Type: models.SourceRefDocument, Label: "Apex Manufacturing Case Study", ID: "13"},
			{Type: models.SourceRefTrend, Label: "AI-related queries up 30% in Feb"},
		},
		Reasoning:        "Combines internal process with public thought leadership. Shows expertise and attracts firms interested in AI adoption.",
		SuggestedOutline: []string{"The problem: 15 minutes per question", "What we built", "Real metrics and ROI", "How to implement in your firm"},
		EstimatedImpact:  models.ImpactMedium,
		CreatedAt:        "2026-02-11",
	},
	{
		ID:         "seed-idea-5",
		Title:      "New Team Member Onboarding: Firm Processes & Tools",
		Type:       models.ContentTypeTrainingMaterial,
		Confidence: 0.78,
		Sources: []models.SourceRef{
			{Type: models.SourceRefDocument, Label: "New Client Intake Workflow", ID: "23"},
			{Type: models.SourceRefDocument, Label: "CRM Setup & Configuration Guide", ID: "21"},
			{Type: models.SourceRefDocument, Label: "Quality Control Review Checklist", ID: "20"},
			{Type: models.SourceRefTrend, Label: "New hire starting Q2"},
		},
		Reasoning:        "Combines the most-referenced process documents into a structured training module for onboarding new team members efficiently.",
		SuggestedOutline: []string{"Firm tools overview", "Client intake process", "CRM and time tracking", "Quality review standards", "Practice exercises"},
		EstimatedImpact:  models.ImpactHigh,
		CreatedAt:        "2026-02-11",
	},
}
