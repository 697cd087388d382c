// internal/data/knowledge.go
package data

import "github.com/logic25/beacon-content-engine/internal/models"

var KnowledgeCategories = []models.KnowledgeCategory{
	{Name: "Tax & Compliance", Icon: "📊", Color: "bg-primary/10 text-primary"},
	{Name: "Client Management", Icon: "🤝", Color: "bg-chart-4/10 text-chart-4"},
	{Name: "Marketing & Growth", Icon: "📈", Color: "bg-info/10 text-info"},
	{Name: "Case Studies", Icon: "📋", Color: "bg-success/10 text-success"},
	{Name: "Communication Templates", Icon: "✉️", Color: "bg-warning/10 text-warning"},
	{Name: "Operations", Icon: "⚙️", Color: "bg-destructive/10 text-destructive"},
	{Name: "Technology", Icon: "💻", Color: "bg-chart-2/10 text-chart-2"},
	{Name: "Process Workflows", Icon: "🔄", Color: "bg-chart-3/10 text-chart-3"},
	{Name: "Team Corrections", Icon: "✏️", Color: "bg-chart-5/10 text-chart-5"},
}

var KnowledgeDocuments = []models.KnowledgeDocument{
	// Tax & Compliance
	{ID: 1, Title: "Section 199A QBI Deduction Guide", Category: "Tax & Compliance", Type: models.DocGuide, LastReferenced: "2026-02-10", ReferenceCount: 47, AddedAt: "2025-11-15", Summary: "Complete guide to the Qualified Business Income deduction including phase-out thresholds, W-2 wage limitations, and entity type considerations.", Tags: []string{"QBI", "199A", "deductions"}, FileName: "qbi_deduction_guide.pdf", FileSize: "2.4 MB", ConversationRefs: []int{1, 6}},
	{ID: 2, Title: "2026 Tax Filing Deadlines & Extensions", Category: "Tax & Compliance", Type: models.DocRegulation, LastReferenced: "2026-02-09", ReferenceCount: 38, AddedAt: "2025-11-15", Summary: "Master calendar of all federal and state tax filing deadlines for 2026 including extension dates.", Tags: []string{"deadlines", "extensions", "filing"}, FileName: "tax_deadlines_2026.pdf", FileSize: "1.1 MB", ConversationRefs: []int{3}},
	{ID: 3, Title: "SALT Workaround State-by-State Guide", Category: "Tax & Compliance", Type: models.DocGuide, LastReferenced: "2026-02-10", ReferenceCount: 31, AddedAt: "2025-12-01", Summary: "Which 36 states allow PTE-level tax elections, election deadlines, and deductibility rules.", Tags: []string{"SALT", "PTE", "state tax"}, FileName: "salt_workaround.pdf", FileSize: "1.8 MB", ConversationRefs: []int{1}},
	{ID: 4, Title: "CPE Tracking & Requirements", Category: "Tax & Compliance", Type: models.DocProcedure, LastReferenced: "2026-02-08", ReferenceCount: 22, AddedAt: "2025-12-10", Summary: "State-by-state CPE requirements, approved providers, and tracking procedures.", Tags: []string{"CPE", "education", "compliance"}, ConversationRefs: []int{6}},
	{ID: 5, Title: "Estimated Tax Payment Calculator", Category: "Tax & Compliance", Type: models.DocGuide, LastReferenced: "2026-02-09", ReferenceCount: 19, AddedAt: "2025-12-15", Summary: "How to calculate quarterly estimated tax payments for self-employed clients and business owners.", Tags: []string{"estimated tax", "quarterly", "payments"}},
	{ID: 25, Title: "Entity Selection Comparison Guide", Category: "Tax & Compliance", Type: models.DocGuide, LastReferenced: "2026-02-07", ReferenceCount: 16, AddedAt: "2025-12-20", Summary: "LLC vs S-Corp vs C-Corp comparison covering tax implications, liability, and operational complexity.", Tags: []string{"entity", "LLC", "S-Corp", "C-Corp"}, FileName: "entity_comparison.pdf", FileSize: "1.5 MB"},
	{ID: 26, Title: "Retirement Plan Options for Small Business", Category: "Tax & Compliance", Type: models.DocGuide, LastReferenced: "2026-02-10", ReferenceCount: 24, AddedAt: "2025-11-20", Summary: "Solo 401(k), SEP IRA, SIMPLE IRA, and defined benefit plan comparison with contribution limits.", Tags: []string{"retirement", "401k", "SEP IRA"}},

	// Client Management
	{ID: 6, Title: "Advisory Retainer Agreement Guide", Category: "Client Management", Type: models.DocGuide, LastReferenced: "2026-02-10", ReferenceCount: 52, AddedAt: "2025-10-20", Summary: "How to structure advisory retainer agreements including scope definition, fee models, and change order processes.", Tags: []string{"retainer", "engagement", "advisory"}, FileName: "retainer_guide.pdf", FileSize: "3.8 MB", ConversationRefs: []int{2, 4}},
	{ID: 7, Title: "Client Onboarding Checklist", Category: "Client Management", Type: models.DocProcedure, LastReferenced: "2026-02-10", ReferenceCount: 44, AddedAt: "2026-01-15", Summary: "Step-by-step onboarding process from discovery call to 30-day check-in.", Tags: []string{"onboarding", "checklist", "new client"}, ConversationRefs: []int{2}},
	{ID: 8, Title: "Billing Dispute Resolution Policy", Category: "Client Management", Type: models.DocProcedure, LastReferenced: "2026-02-07", ReferenceCount: 28, AddedAt: "2025-11-01", Summary: "Escalation process for billing disputes including partner discussion, scope memo, and mediation.", Tags: []string{"billing", "disputes", "resolution"}, ConversationRefs: []int{4}},
	{ID: 9, Title: "Client Satisfaction Survey Template", Category: "Client Management", Type: models.DocTemplate, LastReferenced: "2026-02-05", ReferenceCount: 15, AddedAt: "2025-11-20", Summary: "Quarterly client satisfaction survey with NPS, CSAT, and open-ended questions.", Tags: []string{"survey", "satisfaction", "NPS"}},

	// Marketing & Growth
	{ID: 10, Title: "B2B Marketing Channel Playbook", Category: "Marketing & Growth", Type: models.DocGuide, LastReferenced: "2026-02-10", ReferenceCount: 41, AddedAt: "2025-10-15", Summary: "Channel-by-channel guide for professional services marketing: LinkedIn, email, SEO, webinars, and referrals.", Tags: []string{"marketing", "channels", "B2B"}, FileName: "marketing_playbook.pdf", FileSize: "4.3 MB", ConversationRefs: []int{3}},
	{ID: 11, Title: "LinkedIn Content Strategy Guide", Category: "Marketing & Growth", Type: models.DocGuide, LastReferenced: "2026-02-10", ReferenceCount: 25, AddedAt: "2025-12-01", Summary: "How to build thought leadership on LinkedIn with posting cadence, content types, and engagement tactics.", Tags: []string{"LinkedIn", "social media", "content"}, ConversationRefs: []int{3}},
	{ID: 12, Title: "SEO for Professional Services", Category: "Marketing & Growth", Type: models.DocGuide, LastReferenced: "2026-02-08", ReferenceCount: 18, AddedAt: "2026-01-20", Summary: "Keyword research, on-page SEO, and content strategy for service-based businesses.", Tags: []string{"SEO", "keywords", "content"}},

	// Case Studies
	{ID: 13, Title: "Apex Manufacturing — Advisory Transformation", Category: "Case Studies", Type: models.DocCaseStudy, LastReferenced: "2026-02-06", ReferenceCount: 14, AddedAt: "2025-11-10", Summary: "How we helped a $5M manufacturer transition from compliance-only to full advisory services, increasing revenue by 40%.", Tags: []string{"advisory", "manufacturing", "growth"}, FileName: "apex_case_study.pdf", FileSize: "1.2 MB"},
	{ID: 14, Title: "River Valley Medical Group — Tax Restructuring", Category: "Case Studies", Type: models.DocCaseStudy, LastReferenced: "2026-02-04", ReferenceCount: 11, AddedAt: "2025-11-10", Summary: "Medical practice restructuring from C-Corp to S-Corp, saving $120K annually in taxes.", Tags: []string{"medical", "restructuring", "S-Corp"}, FileName: "river_valley_case.pdf", FileSize: "2.1 MB"},
	{ID: 15, Title: "Tech Startup — Series A Readiness", Category: "Case Studies", Type: models.DocCaseStudy, LastReferenced: "2026-02-09", ReferenceCount: 20, AddedAt: "2025-12-05", Summary: "Preparing a SaaS startup for Series A due diligence including financials cleanup, GAAP compliance, and investor reporting.", Tags: []string{"startup", "Series A", "due diligence"}},

	// Communication Templates
	{ID: 16, Title: "New Client Welcome Email", Category: "Communication Templates", Type: models.DocTemplate, LastReferenced: "2026-02-08", ReferenceCount: 33, AddedAt: "2025-11-01", Summary: "Welcome email template with onboarding checklist, document request list, and team introductions.", Tags: []string{"welcome", "email", "onboarding"}},
	{ID: 17, Title: "Client Status Update Template", Category: "Communication Templates", Type: models.DocTemplate, LastReferenced: "2026-02-10", ReferenceCount: 45, AddedAt: "2025-10-25", Summary: "Standard client update email covering engagement progress, deliverable timeline, and next steps.", Tags: []string{"update", "status", "email"}},
	{ID: 18, Title: "Proposal Template — Advisory Services", Category: "Communication Templates", Type: models.DocTemplate, LastReferenced: "2026-02-07", ReferenceCount: 21, AddedAt: "2025-11-15", Summary: "Proposal template for advisory engagements including scope, pricing, and testimonials.", Tags: []string{"proposal", "advisory", "sales"}},

	// Operations
	{ID: 19, Title: "Utilization Rate Tracking Guide", Category: "Operations", Type: models.DocGuide, LastReferenced: "2026-02-09", ReferenceCount: 36, AddedAt: "2026-01-05", Summary: "How to track, measure, and improve team utilization rates with benchmarks by role.", Tags: []string{"utilization", "metrics", "productivity"}, FileName: "utilization_guide.pdf", FileSize: "890 KB", ConversationRefs: []int{5}},
	{ID: 20, Title: "Quality Control Review Checklist", Category: "Operations", Type: models.DocProcedure, LastReferenced: "2026-02-06", ReferenceCount: 17, AddedAt: "2025-12-20", Summary: "Pre-delivery quality review checklist for all client deliverables including accuracy, formatting, and completeness.", Tags: []string{"quality", "review", "checklist"}},

	// Technology
	{ID: 21, Title: "CRM Setup & Configuration Guide", Category: "Technology", Type: models.DocGuide, LastReferenced: "2026-02-09", ReferenceCount: 23, AddedAt: "2025-11-05", Summary: "Step-by-step CRM setup including pipeline stages, custom fields, and automation rules for professional services.", Tags: []string{"CRM", "setup", "automation"}, ConversationRefs: []int{5}},
	{ID: 22, Title: "AI Knowledge Base Implementation", Category: "Technology", Type: models.DocGuide, LastReferenced: "2026-02-03", ReferenceCount: 12, AddedAt: "2026-01-10", Summary: "How to set up and train an internal AI knowledge assistant for your firm.", Tags: []string{"AI", "knowledge base", "implementation"}},

	// Process Workflows
	{ID: 23, Title: "New Client Intake Workflow", Category: "Process Workflows", Type: models.DocProcedure, LastReferenced: "2026-02-10", ReferenceCount: 29, AddedAt: "2025-10-30", Summary: "Complete workflow from initial inquiry to engagement kickoff including document collection and conflict check.", Tags: []string{"intake", "workflow", "onboarding"}},
	{ID: 24, Title: "Deliverable Review & Approval Process", Category: "Process Workflows", Type: models.DocProcedure, LastReferenced: "2026-02-08", ReferenceCount: 26, AddedAt: "2025-11-10", Summary: "Multi-level review process for client deliverables including preparer, reviewer, and partner sign-off.", Tags: []string{"review", "approval", "quality"}},

	// Team Corrections
	{ID: 45, Title: "Correction: QBI Deduction Thresholds", Category: "Team Corrections", Type: models.DocCorrection, LastReferenced: "2026-02-10", ReferenceCount: 8, AddedAt: "2026-02-07", Summary: "Previously stated threshold was $150,000 — corrected to 2026 thresholds: $182,100 (single) / $364,200 (MFJ). Approved by Managing Partner.", Tags: []string{"correction", "QBI", "thresholds"}},
	{ID: 46, Title: "Correction: LinkedIn Ad Conversion Rates", Category: "Team Corrections", Type: models.DocCorrection, LastReferenced: "2026-02-09", ReferenceCount: 5, AddedAt: "2026-02-05", Summary: "Incorrect rate of 1-2% corrected to 2.5-4% based on 2026 B2B benchmarks. Approved by Marketing Team.", Tags: []string{"correction", "LinkedIn", "marketing"}},
	{ID: 47, Title: "Correction: SALT Workaround State Count", Category: "Team Corrections", Type: models.DocCorrection, LastReferenced: "2026-02-06", ReferenceCount: 3, AddedAt: "2026-02-01", Summary: "Updated from 30 states to 36 states with PTE-level tax elections. Approved by Sarah M.", Tags: []string{"correction", "SALT", "states"}},
}

var ConversationDocRefs = []models.ConversationDocRef{
	{ConversationID: 1, DocumentIDs: []int{1, 3}, Question: "What are the new IRS guidelines for pass-through entity deductions in 2026?", UserName: "Sarah M.", Timestamp: "2026-02-10T14:32:00"},
	{ConversationID: 2, DocumentIDs: []int{6, 7}, Question: "Can you pull up the engagement letter template for new advisory clients?", UserName: "Mike T.", Timestamp: "2026-02-10T13:15:00"},
	{ConversationID: 3, DocumentIDs: []int{10, 11}, Question: "What marketing channels work best for B2B professional services?", UserName: "David L.", Timestamp: "2026-02-10T11:45:00"},
	{ConversationID: 4, DocumentIDs: []int{8}, Question: "How should we handle a client dispute over billing for out-of-scope work?", UserName: "Lisa K.", Timestamp: "2026-02-09T16:20:00"},
	{ConversationID: 5, DocumentIDs: []int{21}, Question: "What's the best CRM setup for a 20-person consulting firm?", UserName: "James R.", Timestamp: "2026-02-09T14:00:00"},
	{ConversationID: 6, DocumentIDs: []int{1, 4}, Question: "Are there updated continuing education requirements for CPAs this year?", UserName: "Sarah M.", Timestamp: "2026-02-09T10:30:00"},
}
