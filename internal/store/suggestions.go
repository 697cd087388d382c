// internal/store/suggestions.go
package store

import (
	"sync"

	"github.com/logic25/beacon-content-engine/internal/common/logger"
	"github.com/logic25/beacon-content-engine/internal/models"
)

// SuggestionsStore holds team-submitted corrections awaiting review.
// Approve and reject are status transitions; remove drops the entry.
type SuggestionsStore struct {
	mu          sync.Mutex
	suggestions []models.Suggestion
	listeners   map[int]Listener
	nextSub     int
	log         logger.Logger
}

// NewSuggestionsStore creates a store pre-populated with the given seed set.
func NewSuggestionsStore(log logger.Logger, seed []models.Suggestion) *SuggestionsStore {
	suggestions := make([]models.Suggestion, len(seed))
	copy(suggestions, seed)
	return &SuggestionsStore{
		suggestions: suggestions,
		listeners:   make(map[int]Listener),
		log:         log,
	}
}

// All returns a copy of the current suggestions, newest first.
func (s *SuggestionsStore) All() []models.Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Suggestion, len(s.suggestions))
	copy(out, s.suggestions)
	return out
}

// Add prepends a suggestion.
func (s *SuggestionsStore) Add(sg models.Suggestion) {
	s.mu.Lock()
	s.suggestions = append([]models.Suggestion{sg}, s.suggestions...)
	s.mu.Unlock()
	s.notify()
}

// SetStatus marks a suggestion approved or rejected. Unknown ids are a
// silent no-op, matching the pipeline store's transition contract.
func (s *SuggestionsStore) SetStatus(id int, status models.SuggestionStatus) {
	s.mu.Lock()
	for i := range s.suggestions {
		if s.suggestions[i].ID == id {
			s.suggestions[i].Status = status
		}
	}
	s.mu.Unlock()

	s.log.Debug("suggestion status updated", map[string]interface{}{
		"suggestion_id": id,
		"status":        string(status),
	})
	s.notify()
}

// Remove filters a suggestion out of the list.
func (s *SuggestionsStore) Remove(id int) {
	s.mu.Lock()
	kept := s.suggestions[:0]
	for _, sg := range s.suggestions {
		if sg.ID != id {
			kept = append(kept, sg)
		}
	}
	s.suggestions = kept
	s.mu.Unlock()
	s.notify()
}

// Subscribe registers a listener and returns its unsubscribe closure.
func (s *SuggestionsStore) Subscribe(l Listener) func() {
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

func (s *SuggestionsStore) notify() {
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
