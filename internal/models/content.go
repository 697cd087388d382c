// internal/models/content.go
package models

// ContentType classifies a generated content idea.
type ContentType string

const (
	ContentTypeBlogPost         ContentType = "blog_post"
	ContentTypeNewsletter       ContentType = "newsletter"
	ContentTypeTrainingMaterial ContentType = "training_material"
)

// SourceRefType classifies where an idea's supporting evidence came from.
type SourceRefType string

const (
	SourceRefConversation SourceRefType = "conversation"
	SourceRefDocument     SourceRefType = "document"
	SourceRefCorrection   SourceRefType = "correction"
	SourceRefTrend        SourceRefType = "trend"
)

// ImpactLevel is the model's estimate of how much a piece of content matters.
type ImpactLevel string

const (
	ImpactHigh   ImpactLevel = "high"
	ImpactMedium ImpactLevel = "medium"
	ImpactLow    ImpactLevel = "low"
)

// SourceRef is a display-only provenance label attached to a generated idea.
// It is not a resolvable foreign key; Label is all a reader gets.
type SourceRef struct {
	Type  SourceRefType `json:"type"`
	Label string        `json:"label"`
	ID    string        `json:"id,omitempty"`
}

// ContentIdea is one generated content suggestion with provenance and an
// outline. Ideas are immutable once created and live for the session only.
type ContentIdea struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Type             ContentType `json:"type"`
	Confidence       float64     `json:"confidence"`
	Sources          []SourceRef `json:"sources"`
	Reasoning        string      `json:"reasoning"`
	SuggestedOutline []string    `json:"suggestedOutline"`
	EstimatedImpact  ImpactLevel `json:"estimatedImpact"`
	CreatedAt        string      `json:"createdAt"`
}
