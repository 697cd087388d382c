// internal/data/mockdata_test.go
package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDailyUsage(t *testing.T) {
	usage := GenerateDailyUsage(30)
	require.Len(t, usage, 30)

	for _, day := range usage {
		assert.GreaterOrEqual(t, day.Queries, 20)
		assert.Less(t, day.Queries, 60)
		assert.LessOrEqual(t, day.Answered, day.Queries)
		assert.Greater(t, day.Cost, 0.0)

		_, err := time.Parse("2006-01-02", day.Date)
		assert.NoError(t, err)
	}

	// newest day last
	first, _ := time.Parse("2006-01-02", usage[0].Date)
	last, _ := time.Parse("2006-01-02", usage[len(usage)-1].Date)
	assert.True(t, last.After(first))
}

func TestSeedDatasetsAreInternallyConsistent(t *testing.T) {
	// every conversation-to-document cross reference points at real records
	docIDs := make(map[int]bool, len(KnowledgeDocuments))
	for _, d := range KnowledgeDocuments {
		docIDs[d.ID] = true
	}
	convIDs := make(map[int]bool, len(Conversations))
	for _, c := range Conversations {
		convIDs[c.ID] = true
	}

	for _, ref := range ConversationDocRefs {
		assert.True(t, convIDs[ref.ConversationID], "ref points at missing conversation %d", ref.ConversationID)
		for _, id := range ref.DocumentIDs {
			assert.True(t, docIDs[id], "ref points at missing document %d", id)
		}
	}

	// topic percentages describe one whole
	total := 0
	for _, topic := range Topics {
		total += topic.Percentage
	}
	assert.Equal(t, 100, total)

	// seed ideas carry full provenance
	for _, idea := range SeedContentIdeas {
		assert.NotEmpty(t, idea.ID)
		assert.NotEmpty(t, idea.Sources)
		assert.NotEmpty(t, idea.SuggestedOutline)
	}
}
