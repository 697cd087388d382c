// internal/ideas/context.go
package ideas

import (
	"github.com/logic25/beacon-content-engine/internal/common/config"
	"github.com/logic25/beacon-content-engine/internal/data"
	"github.com/logic25/beacon-content-engine/internal/models"
)

// GatherContext assembles the context snapshot the request client sends
// with each generation: the first N conversations and documents (caller
// limits, not server ones), every approved correction, and the full
// most-asked list.
func GatherContext(cfg config.GenerationConfig) GenerationRequest {
	return GenerationRequest{
		Conversations:      summarizeConversations(data.Conversations, cfg.MaxConversations),
		Documents:          summarizeDocuments(data.KnowledgeDocuments, cfg.MaxDocuments),
		Corrections:        summarizeCorrections(data.ApprovedCorrections),
		MostAskedQuestions: summarizeQuestions(data.MostAsked),
	}
}

func summarizeConversations(convs []models.Conversation, limit int) []ConversationSummary {
	if limit > 0 && len(convs) > limit {
		convs = convs[:limit]
	}
	out := make([]ConversationSummary, len(convs))
	for i, c := range convs {
		out[i] = ConversationSummary{
			UserName:   c.UserName,
			Question:   c.Question,
			Topic:      c.Topic,
			Confidence: c.Confidence,
		}
	}
	return out
}

func summarizeDocuments(docs []models.KnowledgeDocument, limit int) []DocumentSummary {
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	out := make([]DocumentSummary, len(docs))
	for i, d := range docs {
		out[i] = DocumentSummary{
			Title:          d.Title,
			Category:       d.Category,
			ReferenceCount: d.ReferenceCount,
			Type:           string(d.Type),
		}
	}
	return out
}

func summarizeCorrections(corrections []models.ApprovedCorrection) []CorrectionSummary {
	out := make([]CorrectionSummary, len(corrections))
	for i, c := range corrections {
		out[i] = CorrectionSummary{
			WhatWasWrong:      c.WhatWasWrong,
			CorrectionApplied: c.CorrectionApplied,
			ApprovedBy:        c.ApprovedBy,
		}
	}
	return out
}

func summarizeQuestions(questions []models.MostAskedQuestion) []QuestionSummary {
	out := make([]QuestionSummary, len(questions))
	for i, q := range questions {
		out[i] = QuestionSummary{
			Question:   q.Question,
			TimesAsked: q.TimesAsked,
		}
	}
	return out
}
