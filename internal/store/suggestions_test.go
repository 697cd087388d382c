// internal/store/suggestions_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logic25/beacon-content-engine/internal/common/logger"
	"github.com/logic25/beacon-content-engine/internal/models"
)

func newSeededSuggestionsStore(t *testing.T) *SuggestionsStore {
	t.Helper()
	return NewSuggestionsStore(logger.NewTestLogger(t), []models.Suggestion{
		{ID: 1, User: "Sarah M.", WrongAnswer: "old threshold", CorrectAnswer: "new threshold", Status: models.SuggestionPending},
		{ID: 2, User: "Mike T.", WrongAnswer: "old rate", CorrectAnswer: "new rate", Status: models.SuggestionPending},
	})
}

func TestSuggestionsStore_SetStatus(t *testing.T) {
	tests := []struct {
		name   string
		id     int
		status models.SuggestionStatus
	}{
		{"approve pending suggestion", 1, models.SuggestionApproved},
		{"reject pending suggestion", 2, models.SuggestionRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSeededSuggestionsStore(t)

			s.SetStatus(tt.id, tt.status)

			for _, sg := range s.All() {
				if sg.ID == tt.id {
					assert.Equal(t, tt.status, sg.Status)
				} else {
					assert.Equal(t, models.SuggestionPending, sg.Status, "other suggestions untouched")
				}
			}
		})
	}
}

func TestSuggestionsStore_SetStatusUnknownIDIsNoOp(t *testing.T) {
	s := newSeededSuggestionsStore(t)

	s.SetStatus(999, models.SuggestionApproved)

	for _, sg := range s.All() {
		assert.Equal(t, models.SuggestionPending, sg.Status)
	}
}

func TestSuggestionsStore_AddPrependsAndRemoveFilters(t *testing.T) {
	s := newSeededSuggestionsStore(t)

	s.Add(models.Suggestion{ID: 3, User: "Lisa K.", Status: models.SuggestionPending})

	got := s.All()
	require.Len(t, got, 3)
	assert.Equal(t, 3, got[0].ID, "newest suggestion first")

	s.Remove(1)
	got = s.All()
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].ID)
	assert.Equal(t, 2, got[1].ID)
}

func TestSuggestionsStore_SubscribeFiresOnEveryMutation(t *testing.T) {
	s := newSeededSuggestionsStore(t)

	notified := 0
	unsub := s.Subscribe(func() { notified++ })

	s.Add(models.Suggestion{ID: 3})
	s.SetStatus(3, models.SuggestionApproved)
	s.Remove(3)
	assert.Equal(t, 3, notified)

	unsub()
	s.Add(models.Suggestion{ID: 4})
	assert.Equal(t, 3, notified)
}
