// internal/store/ideas.go
package store

import (
	"sync"

	"github.com/logic25/beacon-content-engine/internal/common/logger"
	"github.com/logic25/beacon-content-engine/internal/models"
)

// IdeaStore holds the current set of generated content ideas. A successful
// generation replaces the whole list; there is no merge and no de-dup
// against previous results. Same subscribe/notify contract as the pipeline
// store.
type IdeaStore struct {
	mu        sync.Mutex
	ideas     []models.ContentIdea
	listeners map[int]Listener
	nextSub   int
	log       logger.Logger
}

// NewIdeaStore creates a store pre-populated with the given seed set.
func NewIdeaStore(log logger.Logger, seed []models.ContentIdea) *IdeaStore {
	ideas := make([]models.ContentIdea, len(seed))
	copy(ideas, seed)
	return &IdeaStore{
		ideas:     ideas,
		listeners: make(map[int]Listener),
		log:       log,
	}
}

// All returns a copy of the current idea list.
func (s *IdeaStore) All() []models.ContentIdea {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ContentIdea, len(s.ideas))
	copy(out, s.ideas)
	return out
}

// Replace swaps the entire list for a new one and notifies listeners.
func (s *IdeaStore) Replace(ideas []models.ContentIdea) {
	next := make([]models.ContentIdea, len(ideas))
	copy(next, ideas)

	s.mu.Lock()
	s.ideas = next
	s.mu.Unlock()

	s.log.Debug("idea list replaced", map[string]interface{}{
		"count": len(next),
	})
	s.notify()
}

// Subscribe registers a listener and returns its unsubscribe closure.
func (s *IdeaStore) Subscribe(l Listener) func() {
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

func (s *IdeaStore) notify() {
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
