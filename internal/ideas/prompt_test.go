// internal/ideas/prompt_test.go
package ideas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUserPrompt_AllSectionsPopulated(t *testing.T) {
	req := GenerationRequest{
		Conversations: []ConversationSummary{
			{UserName: "Sarah M.", Question: "What are the QBI thresholds?", Topic: "Tax Planning", Confidence: 0.94},
		},
		Documents: []DocumentSummary{
			{Title: "QBI Deduction Guide", Category: "Tax", ReferenceCount: 47, Type: "guide"},
		},
		Corrections: []CorrectionSummary{
			{WhatWasWrong: "old threshold", CorrectionApplied: "new threshold", ApprovedBy: "Sarah M."},
		},
		MostAskedQuestions: []QuestionSummary{
			{Question: "How do I bill for advisory work?", TimesAsked: 14},
			{Question: "What is our engagement letter process?", TimesAsked: 9},
		},
	}

	prompt := BuildUserPrompt(req)

	assert.Contains(t, prompt, "## Most Asked Questions (Last 30 Days)")
	assert.Contains(t, prompt, "## Recent Team Conversations")
	assert.Contains(t, prompt, "## Knowledge Base Documents (Top Referenced)")
	assert.Contains(t, prompt, "## Approved Corrections")

	// most-asked entries are numbered starting at 1
	assert.Contains(t, prompt, `1. "How do I bill for advisory work?" — asked 14 times`)
	assert.Contains(t, prompt, `2. "What is our engagement letter process?" — asked 9 times`)

	// confidence renders as a rounded whole percent
	assert.Contains(t, prompt, "Confidence: 94%")

	assert.Contains(t, prompt, `"QBI Deduction Guide" [Tax] — 47 references, type: guide`)
	assert.Contains(t, prompt, `Was wrong: "old threshold" → Now correct: "new threshold" (approved by Sarah M.)`)
	assert.NotContains(t, prompt, "No data")
}

func TestBuildUserPrompt_EmptySectionsRenderNoData(t *testing.T) {
	req := GenerationRequest{
		MostAskedQuestions: []QuestionSummary{
			{Question: "How do I bill for advisory work?", TimesAsked: 14},
		},
	}

	prompt := BuildUserPrompt(req)

	// the three missing sections each fall back to the literal placeholder
	assert.Equal(t, 3, strings.Count(prompt, "No data"))
	assert.Contains(t, prompt, "asked 14 times")
}

func TestBuildUserPrompt_ConfidenceRounding(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		want       string
	}{
		{"rounds up", 0.946, "Confidence: 95%"},
		{"rounds down", 0.872, "Confidence: 87%"},
		{"whole number", 0.9, "Confidence: 90%"},
		{"zero", 0, "Confidence: 0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := GenerationRequest{
				Conversations: []ConversationSummary{
					{UserName: "A", Question: "q", Topic: "t", Confidence: tt.confidence},
				},
			}
			assert.Contains(t, BuildUserPrompt(req), tt.want)
		})
	}
}
