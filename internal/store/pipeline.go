// internal/store/pipeline.go
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/logic25/beacon-content-engine/internal/common/logger"
	"github.com/logic25/beacon-content-engine/internal/common/metrics"
	"github.com/logic25/beacon-content-engine/internal/models"
)

// Listener is invoked synchronously after every mutating store operation.
type Listener func()

// PipelineStore is the single source of truth for the content pipeline view.
// It is an observable newest-first list: mutations notify every subscribed
// listener synchronously, with no batching or diffing. Instances are
// constructed and injected; there is no package-level store.
type PipelineStore struct {
	mu        sync.Mutex
	items     []models.PipelineItem
	listeners map[int]Listener
	nextSub   int
	log       logger.Logger
}

// NewPipelineStore creates an empty pipeline store.
func NewPipelineStore(log logger.Logger) *PipelineStore {
	return &PipelineStore{
		listeners: make(map[int]Listener),
		log:       log,
	}
}

// All returns a copy of every item, newest first.
func (s *PipelineStore) All() []models.PipelineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PipelineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Active returns every item that has not been dismissed.
func (s *PipelineStore) Active() []models.PipelineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PipelineItem, 0, len(s.items))
	for _, it := range s.items {
		if it.Status != models.StatusDismissed {
			out = append(out, it)
		}
	}
	return out
}

// Add prepends an item as-is. No de-duplication by id: adding the same id
// twice leaves both entries side by side.
func (s *PipelineStore) Add(item models.PipelineItem) {
	s.mu.Lock()
	s.items = append([]models.PipelineItem{item}, s.items...)
	s.mu.Unlock()

	metrics.PipelineMutationsTotal.WithLabelValues("add").Inc()
	s.log.Debug("pipeline item added", map[string]interface{}{
		"item_id": item.ID,
		"title":   item.Title,
	})
	s.notify()
}

// AddFromConversation synthesizes a pipeline item from a team conversation.
// The conversation itself becomes the first source-trail entry; its cited
// documents follow.
func (s *PipelineStore) AddFromConversation(conv models.Conversation) models.PipelineItem {
	now := time.Now().UTC().Format(time.RFC3339)
	trail := []models.SourceTrailEntry{
		{
			Type:      models.TrailConversation,
			ID:        fmt.Sprintf("%d", conv.ID),
			Label:     truncate(conv.Question, 50),
			Timestamp: now,
		},
	}
	for i, src := range conv.Sources {
		trail = append(trail, models.SourceTrailEntry{
			Type:  models.TrailDocument,
			ID:    fmt.Sprintf("src-%d", i),
			Label: src,
		})
	}

	item := models.PipelineItem{
		ID:             uuid.New().String(),
		Title:          fmt.Sprintf("Content from: %q...", truncate(conv.Question, 60)),
		ContentType:    models.PipelineBlogPost,
		Status:         models.StatusIdea,
		Priority:       "medium",
		RelevanceScore: 0.75,
		Reasoning:      fmt.Sprintf("Generated from a team conversation by %s about %s.", conv.UserName, conv.Topic),
		KeyTopics:      []string{conv.Topic},
		SourceTrail:    trail,
		CreatedAt:      now,
	}

	s.mu.Lock()
	s.items = append([]models.PipelineItem{item}, s.items...)
	s.mu.Unlock()

	metrics.PipelineMutationsTotal.WithLabelValues("add_from_conversation").Inc()
	s.log.Debug("pipeline item added from conversation", map[string]interface{}{
		"item_id":         item.ID,
		"conversation_id": conv.ID,
	})
	s.notify()
	return item
}

// AddFromAIIdea promotes a generated content idea into the pipeline. The
// idea's suggested outline is pre-rendered as a markdown body draft.
func (s *PipelineStore) AddFromAIIdea(idea models.ContentIdea) models.PipelineItem {
	now := time.Now().UTC().Format(time.RFC3339)

	trail := []models.SourceTrailEntry{
		{Type: models.TrailAIIdea, ID: idea.ID, Label: "AI Cross-Reference Engine"},
	}
	for _, src := range idea.Sources {
		trail = append(trail, models.SourceTrailEntry{
			Type:  models.SourceTrailType(src.Type),
			ID:    src.Label,
			Label: src.Label,
		})
	}

	body := "# " + idea.Title
	for i, section := range idea.SuggestedOutline {
		body += fmt.Sprintf("\n\n## %d. %s", i+1, section)
	}

	item := models.PipelineItem{
		ID:             uuid.New().String(),
		Title:          idea.Title,
		ContentType:    pipelineTypeFor(idea.Type),
		Status:         models.StatusIdea,
		Priority:       "high",
		RelevanceScore: 0.85,
		Reasoning:      idea.Reasoning,
		KeyTopics:      []string{},
		SourceTrail:    trail,
		Body:           body,
		CreatedAt:      now,
	}

	s.mu.Lock()
	s.items = append([]models.PipelineItem{item}, s.items...)
	s.mu.Unlock()

	metrics.PipelineMutationsTotal.WithLabelValues("add_from_ai_idea").Inc()
	s.log.Debug("pipeline item added from AI idea", map[string]interface{}{
		"item_id": item.ID,
		"idea_id": idea.ID,
	})
	s.notify()
	return item
}

// UpdateStatus moves an item to a new status. Unknown ids are a silent
// no-op. Only the status changes, plus dismissedAt when dismissing; title,
// source trail and createdAt are never touched.
func (s *PipelineStore) UpdateStatus(id string, status models.ContentStatus) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = status
			if status == models.StatusDismissed {
				s.items[i].DismissedAt = time.Now().UTC().Format(time.RFC3339)
			}
		}
	}
	s.mu.Unlock()

	metrics.PipelineMutationsTotal.WithLabelValues("update_status").Inc()
	s.notify()
}

// Snooze sets snoozedUntil on an item. The timestamp is stored as given;
// nothing checks that it is actually in the future.
func (s *PipelineStore) Snooze(id string, until string) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].SnoozedUntil = until
		}
	}
	s.mu.Unlock()

	metrics.PipelineMutationsTotal.WithLabelValues("snooze").Inc()
	s.notify()
}

// Remove filters an item out of the list. Irreversible.
func (s *PipelineStore) Remove(id string) {
	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.mu.Unlock()

	metrics.PipelineMutationsTotal.WithLabelValues("remove").Inc()
	s.notify()
}

// Subscribe registers a listener and returns its unsubscribe closure.
// Listeners fire synchronously and unconditionally after every mutation.
func (s *PipelineStore) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *PipelineStore) notify() {
	s.mu.Lock()
	ls := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		ls = append(ls, l)
	}
	s.mu.Unlock()

	for _, l := range ls {
		l()
	}
}

func pipelineTypeFor(t models.ContentType) models.PipelineContentType {
	switch t {
	case models.ContentTypeNewsletter:
		return models.PipelineNewsletter
	case models.ContentTypeTrainingMaterial:
		return models.PipelineTraining
	default:
		return models.PipelineBlogPost
	}
}

// truncate cuts s to at most n runes, never splitting a multibyte
// character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
