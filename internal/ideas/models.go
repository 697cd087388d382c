// internal/ideas/models.go
package ideas

// ConversationSummary is the slice of a conversation sent to the engine.
type ConversationSummary struct {
	UserName   string  `json:"userName"`
	Question   string  `json:"question"`
	Topic      string  `json:"topic"`
	Confidence float64 `json:"confidence"`
}

// DocumentSummary is the slice of a knowledge document sent to the engine.
type DocumentSummary struct {
	Title          string `json:"title"`
	Category       string `json:"category"`
	ReferenceCount int    `json:"referenceCount"`
	Type           string `json:"type"`
}

// CorrectionSummary is the slice of an approved correction sent to the engine.
type CorrectionSummary struct {
	WhatWasWrong      string `json:"whatWasWrong"`
	CorrectionApplied string `json:"correctionApplied"`
	ApprovedBy        string `json:"approvedBy"`
}

// QuestionSummary is one most-asked-question entry sent to the engine.
type QuestionSummary struct {
	Question   string `json:"question"`
	TimesAsked int    `json:"timesAsked"`
}

// GenerationRequest is the full context snapshot forwarded to the gateway.
// All four sections are optional; absent sections render as "No data" in
// the prompt rather than being omitted.
type GenerationRequest struct {
	Conversations      []ConversationSummary `json:"conversations"`
	Documents          []DocumentSummary     `json:"documents"`
	Corrections        []CorrectionSummary   `json:"corrections"`
	MostAskedQuestions []QuestionSummary     `json:"mostAskedQuestions"`
}

// GeneratedIdea is one idea as returned by the model, before the request
// client assigns ids and timestamps.
type GeneratedIdea struct {
	Title            string            `json:"title"`
	Type             string            `json:"type"`
	Confidence       float64           `json:"confidence"`
	EstimatedImpact  string            `json:"estimatedImpact"`
	Reasoning        string            `json:"reasoning"`
	Sources          []GeneratedSource `json:"sources"`
	SuggestedOutline []string          `json:"suggestedOutline"`
}

// GeneratedSource is a provenance label emitted by the model.
type GeneratedSource struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}

// IdeasEnvelope is the generation service's success response body.
type IdeasEnvelope struct {
	Ideas []GeneratedIdea `json:"ideas"`
}
