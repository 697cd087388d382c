// internal/data/published.go
package data

import "github.com/logic25/beacon-content-engine/internal/models"

var PublishedContent = []models.PublishedContent{
	{
		ID: 1, Title: "How to Structure Advisory Retainer Agreements That Work",
		ContentType: "blog_post", PublishedAt: "2026-01-28", Author: "Managing Partner", Status: "published",
		URL: "/blog/advisory-retainer-agreements", Views: 1243, Clicks: 187, Shares: 34,
		AvgTimeOnPage: "4m 12s", BounceRate: 32, SEOScore: 87,
		TopKeyword: "advisory retainer agreement template", GeneratedFrom: "AI-identified from team questions",
		Body: "# How to Structure Advisory Retainer Agreements That Work\n\nRetainer agreements are the backbone of advisory practices. Done right, they create predictable revenue and clear client expectations. Done wrong, they lead to scope creep and billing disputes.\n\n## Key Components\n\n1. **Define the scope clearly** — List specific deliverables and explicitly note what's excluded.\n2. **Set the fee structure** — Monthly retainer with quarterly true-ups works best for most firms.\n3. **Include change order provisions** — How additional work gets approved and billed.\n4. **Termination clauses** — 30-day notice is standard; include transition support.",
	},
	{
		ID: 2, Title: "January 2026 Professional Services Industry Roundup",
		ContentType: "newsletter", PublishedAt: "2026-01-31", Author: "Marketing Team", Status: "published",
		URL: "/newsletter/jan-2026-roundup", Views: 892, Clicks: 156, Shares: 22,
		OpenRate: 47.3, ClickRate: 12.8, Subscribers: 1240, SEOScore: 72,
		TopKeyword: "professional services trends 2026", GeneratedFrom: "Monthly industry digest",
		Body: "# January 2026 Professional Services Industry Roundup\n\nHere's what changed in the professional services landscape this month.\n\n## Tax & Compliance\n- IRS released updated guidance on pass-through entity deductions\n- New CPE requirements announced by NASBA\n- SALT workaround expanded to 36 states\n\n## Industry Trends\n- AI adoption in professional services grew 45% YoY\n- Client demand for advisory services outpacing compliance work",
	},
	{
		ID: 3, Title: "2026 Tax Planning Strategies for Small Business Owners",
		ContentType: "blog_post", PublishedAt: "2026-02-03", Author: "Sarah M.", Status: "published",
		URL: "/blog/tax-planning-2026", Views: 2156, Clicks: 312, Shares: 67,
		AvgTimeOnPage: "5m 48s", BounceRate: 24, SEOScore: 94,
		TopKeyword: "small business tax planning 2026", GeneratedFrom: "Tax planning candidate",
		Body: "# 2026 Tax Planning Strategies for Small Business Owners\n\nTax planning season is here. Whether you're an LLC, S-Corp, or sole proprietor, these strategies can help minimize your tax burden.\n\n### 1. Maximize the QBI Deduction\nFor 2026, phase-out thresholds are $182,100 (single) and $364,200 (MFJ).\n\n### 2. SALT Workaround\n36 states now allow PTE-level tax elections.\n\n### 3. Retirement Plan Contributions\nSolo 401(k): up to $69,000 for 2026.",
	},
	{
		ID: 4, Title: "February 2026 Industry Update",
		ContentType: "newsletter", PublishedAt: "2026-02-07", Author: "Marketing Team", Status: "published",
		URL: "/newsletter/feb-2026-update", Views: 445, Clicks: 78, Shares: 11,
		OpenRate: 51.2, ClickRate: 14.1, Subscribers: 1258, SEOScore: 68,
		TopKeyword: "professional services February 2026", GeneratedFrom: "Monthly industry digest",
		Body: "# February 2026 Industry Update\n\nYour monthly briefing on professional services trends.\n\n## Highlights\n- IRS pass-through entity guidance now in effect\n- AI-powered knowledge management seeing rapid adoption\n- Client advisory demand continues to outpace compliance",
	},
	{
		ID: 5, Title: "Client Billing Dispute Resolution Guide",
		ContentType: "blog_post", PublishedAt: "2026-02-05", Author: "Lisa K.", Status: "draft",
		URL: "", Views: 0, Clicks: 0, Shares: 0, AvgTimeOnPage: "0s", BounceRate: 0, SEOScore: 81,
		TopKeyword: "professional services billing disputes", GeneratedFrom: "Client management candidate",
		Body: "# Client Billing Dispute Resolution Guide\n\n*DRAFT — Ready for review*\n\nThis guide covers how to handle billing disputes professionally while maintaining client relationships.\n\n## Prevention First\n- Clear engagement letters with specific scope\n- Regular status updates with hours tracking\n- Change order process for out-of-scope work",
	},
}

var WeeklyDigests = []models.WeeklyDigest{
	{
		ID: 1, WeekOf: "2026-02-03", SentAt: "2026-02-07T09:00:00", Status: "sent", RecipientCount: 23,
		Items: []models.DigestItem{
			{Type: "correction_approved", Title: "QBI deduction threshold correction", Description: "Updated from $150,000 to $182,100 (single) / $364,200 (MFJ) for 2026.", SubmittedBy: "Sarah M.", Date: "2026-02-05"},
			{Type: "correction_approved", Title: "LinkedIn ad conversion rate update", Description: "B2B professional services conversion rate updated to 2.5-4%.", SubmittedBy: "Mike T.", Date: "2026-02-05"},
			{Type: "content_published", Title: "2026 Tax Planning Strategies for Small Business Owners", Description: "New blog post published covering QBI deductions, SALT workarounds, and retirement planning.", Date: "2026-02-03"},
		},
	},
	{
		ID: 2, WeekOf: "2026-02-10", Status: "draft", RecipientCount: 23,
		Items: []models.DigestItem{
			{Type: "correction_approved", Title: "SALT workaround state count", Description: "Updated from 30 to 36 states with PTE-level tax elections.", SubmittedBy: "Sarah M.", Date: "2026-02-10"},
			{Type: "content_published", Title: "February 2026 Industry Update", Description: "Monthly newsletter sent to 1,258 subscribers.", Date: "2026-02-07"},
		},
	},
}

var ContentTemplates = []models.ContentTemplate{
	{
		ID: "regulatory-update", Name: "Regulatory Update", Icon: "📋",
		Description: "Announce regulatory changes with impact analysis and action items.",
		Category:    "Updates",
		Structure:   "# [Regulatory Body] [Update Title]\n\n**Effective Date:** [Date]\n**Impact Level:** [High/Medium/Low]\n\n## What Changed\n\n[Describe the regulatory change in 2-3 sentences]\n\n## Who Is Affected\n\n- [Affected group 1]\n- [Affected group 2]\n\n## Action Items\n\n1. [Action 1 with deadline]",
	},
	{
		ID: "how-to-guide", Name: "How-To Guide", Icon: "🧭",
		Description: "Step-by-step walkthrough of a firm process or client-facing task.",
		Category:    "Guides",
		Structure:   "# How to [Task]\n\n## Why This Matters\n\n[1-2 sentences on the outcome]\n\n## Steps\n\n1. [Step one]\n2. [Step two]\n3. [Step three]\n\n## Common Mistakes\n\n- [Mistake 1]\n- [Mistake 2]",
	},
	{
		ID: "monthly-roundup", Name: "Monthly Roundup", Icon: "🗞️",
		Description: "Newsletter edition summarizing the month's changes and trends.",
		Category:    "Newsletters",
		Structure:   "# [Month] [Year] Roundup\n\n## Highlights\n\n- [Highlight 1]\n- [Highlight 2]\n\n## What's Coming Next Month\n\n- [Item 1]\n- [Item 2]",
	},
}
