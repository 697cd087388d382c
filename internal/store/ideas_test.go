// internal/store/ideas_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logic25/beacon-content-engine/internal/common/logger"
	"github.com/logic25/beacon-content-engine/internal/models"
)

func TestIdeaStore_SeededOnConstruction(t *testing.T) {
	seed := []models.ContentIdea{
		{ID: "seed-1", Title: "one"},
		{ID: "seed-2", Title: "two"},
	}
	s := NewIdeaStore(logger.NewTestLogger(t), seed)

	got := s.All()
	require.Len(t, got, 2)
	assert.Equal(t, "seed-1", got[0].ID)

	// mutating the caller's slice must not leak into the store
	seed[0].Title = "changed"
	assert.Equal(t, "one", s.All()[0].Title)
}

func TestIdeaStore_ReplaceIsWholesale(t *testing.T) {
	s := NewIdeaStore(logger.NewTestLogger(t), []models.ContentIdea{
		{ID: "seed-1"}, {ID: "seed-2"}, {ID: "seed-3"},
	})

	notified := 0
	unsub := s.Subscribe(func() { notified++ })
	defer unsub()

	s.Replace([]models.ContentIdea{{ID: "fresh-1"}})

	got := s.All()
	require.Len(t, got, 1, "previous ideas are discarded, not merged")
	assert.Equal(t, "fresh-1", got[0].ID)
	assert.Equal(t, 1, notified)
}

func TestIdeaStore_ReplaceWithEmptyClearsList(t *testing.T) {
	s := NewIdeaStore(logger.NewTestLogger(t), []models.ContentIdea{{ID: "seed-1"}})

	s.Replace(nil)

	assert.Empty(t, s.All())
}
