// internal/ideas/prompt.go
package ideas

import (
	"fmt"
	"math"
	"strings"
)

// SystemPrompt frames the model as the cross-reference engine. The firm's
// platform data arrives separately in the user prompt.
const SystemPrompt = `You are the AI Cross-Reference Engine for Beacon, a content intelligence platform for professional service firms.

Your job: Analyze the intersection of team conversations, Knowledge Base documents, approved corrections, and question trends to generate actionable content ideas tailored to the firm's industry and audience.

For each idea, provide:
- A specific, SEO-friendly title
- Content type: "blog_post", "newsletter", or "training_material"
- Confidence score (0.0-1.0) based on data strength
- Estimated impact: "high", "medium", or "low"
- Clear reasoning citing specific data points
- Sources that informed this idea (reference the conversation/document/correction/trend by name)
- A suggested outline (4-6 bullet points)

Focus on:
1. Topics the team asks about repeatedly (knowledge gaps = content opportunities)
2. Recent corrections (if the team got it wrong, clients probably do too)
3. Cross-references between conversations and documents (patterns = thought leadership)
4. Timely industry updates that affect the firm's client base

Generate 3-5 high-quality content ideas relevant to the firm's specific industry and audience.`

// BuildUserPrompt renders the context snapshot as four bulleted sections.
// Empty sections become the literal string "No data" so the model always
// sees all four headings.
func BuildUserPrompt(req GenerationRequest) string {
	var b strings.Builder

	b.WriteString("Here's the current platform data to analyze:\n\n")

	b.WriteString("## Most Asked Questions (Last 30 Days)\n")
	b.WriteString(section(req.MostAskedQuestions, func(i int, q QuestionSummary) string {
		return fmt.Sprintf("%d. %q — asked %d times", i+1, q.Question, q.TimesAsked)
	}))

	b.WriteString("\n\n## Recent Team Conversations\n")
	b.WriteString(section(req.Conversations, func(_ int, c ConversationSummary) string {
		return fmt.Sprintf("- %s: %q [Topic: %s, Confidence: %d%%]",
			c.UserName, c.Question, c.Topic, int(math.Round(c.Confidence*100)))
	}))

	b.WriteString("\n\n## Knowledge Base Documents (Top Referenced)\n")
	b.WriteString(section(req.Documents, func(_ int, d DocumentSummary) string {
		return fmt.Sprintf("- %q [%s] — %d references, type: %s",
			d.Title, d.Category, d.ReferenceCount, d.Type)
	}))

	b.WriteString("\n\n## Approved Corrections\n")
	b.WriteString(section(req.Corrections, func(_ int, c CorrectionSummary) string {
		return fmt.Sprintf("- Was wrong: %q → Now correct: %q (approved by %s)",
			c.WhatWasWrong, c.CorrectionApplied, c.ApprovedBy)
	}))

	b.WriteString("\n\nAnalyze these data points, find cross-references and patterns, and generate content ideas.")
	return b.String()
}

func section[T any](items []T, render func(int, T) string) string {
	if len(items) == 0 {
		return "No data"
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = render(i, item)
	}
	return strings.Join(lines, "\n")
}
