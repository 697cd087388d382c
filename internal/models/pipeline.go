// internal/models/pipeline.go
package models

// ContentStatus tracks a pipeline item through the editorial workflow.
type ContentStatus string

const (
	StatusIdea      ContentStatus = "idea"
	StatusDraft     ContentStatus = "draft"
	StatusReview    ContentStatus = "review"
	StatusPublished ContentStatus = "published"
	StatusDismissed ContentStatus = "dismissed"
)

// PipelineContentType is the content type of a pipeline item. The pipeline
// uses "training" where generated ideas use "training_material".
type PipelineContentType string

const (
	PipelineBlogPost   PipelineContentType = "blog_post"
	PipelineNewsletter PipelineContentType = "newsletter"
	PipelineTraining   PipelineContentType = "training"
)

// SourceTrailType extends SourceRefType with the ai_idea origin used when a
// generated idea is promoted into the pipeline.
type SourceTrailType string

const (
	TrailConversation SourceTrailType = "conversation"
	TrailDocument     SourceTrailType = "document"
	TrailCorrection   SourceTrailType = "correction"
	TrailTrend        SourceTrailType = "trend"
	TrailAIIdea       SourceTrailType = "ai_idea"
)

// SourceTrailEntry records one provenance hop for a pipeline item. The trail
// is written once at creation and never re-derived.
type SourceTrailEntry struct {
	Type      SourceTrailType `json:"type"`
	ID        string          `json:"id"`
	Label     string          `json:"label"`
	Timestamp string          `json:"timestamp,omitempty"`
}

// PipelineItem is a content candidate tracked through manual editorial
// states. Status transitions mutate it in place; everything else is fixed at
// creation.
type PipelineItem struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	ContentType    PipelineContentType `json:"contentType"`
	Status         ContentStatus       `json:"status"`
	Priority       string              `json:"priority"`
	RelevanceScore float64             `json:"relevanceScore"`
	Reasoning      string              `json:"reasoning"`
	KeyTopics      []string            `json:"keyTopics"`
	SourceTrail    []SourceTrailEntry  `json:"sourceTrail"`
	CreatedAt      string              `json:"createdAt"`
	Body           string              `json:"body,omitempty"`
	DismissedAt    string              `json:"dismissedAt,omitempty"`
	SnoozedUntil   string              `json:"snoozedUntil,omitempty"`
}
