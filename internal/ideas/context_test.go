// internal/ideas/context_test.go
package ideas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logic25/beacon-content-engine/internal/common/config"
	"github.com/logic25/beacon-content-engine/internal/data"
)

func TestGatherContext_AppliesCallerLimits(t *testing.T) {
	cfg := config.GenerationConfig{MaxConversations: 2, MaxDocuments: 3}

	req := GatherContext(cfg)

	assert.Len(t, req.Conversations, 2)
	assert.Len(t, req.Documents, 3)

	// corrections and most-asked are always sent in full
	assert.Len(t, req.Corrections, len(data.ApprovedCorrections))
	assert.Len(t, req.MostAskedQuestions, len(data.MostAsked))
}

func TestGatherContext_ZeroLimitMeansUnbounded(t *testing.T) {
	req := GatherContext(config.GenerationConfig{})

	assert.Len(t, req.Conversations, len(data.Conversations))
	assert.Len(t, req.Documents, len(data.KnowledgeDocuments))
}

func TestGatherContext_ProjectsOnlyPromptFields(t *testing.T) {
	req := GatherContext(config.GenerationConfig{MaxConversations: 1, MaxDocuments: 1})

	require.NotEmpty(t, req.Conversations)
	first := req.Conversations[0]
	src := data.Conversations[0]
	assert.Equal(t, src.UserName, first.UserName)
	assert.Equal(t, src.Question, first.Question)
	assert.Equal(t, src.Topic, first.Topic)
	assert.Equal(t, src.Confidence, first.Confidence)

	require.NotEmpty(t, req.Documents)
	doc := req.Documents[0]
	docSrc := data.KnowledgeDocuments[0]
	assert.Equal(t, docSrc.Title, doc.Title)
	assert.Equal(t, docSrc.ReferenceCount, doc.ReferenceCount)
	assert.Equal(t, string(docSrc.Type), doc.Type)
}
