// internal/ideas/client.go
package ideas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/logic25/beacon-content-engine/internal/common/errors"
	commonhttp "github.com/logic25/beacon-content-engine/internal/common/http"
	"github.com/logic25/beacon-content-engine/internal/common/logger"
	"github.com/logic25/beacon-content-engine/internal/models"
	"github.com/logic25/beacon-content-engine/internal/store"
)

// Notification mirrors the dashboard toast shown after a generation
// attempt resolves.
type Notification struct {
	Title       string
	Description string
	Failure     bool
}

// Client drives the generation flow on behalf of the dashboard: one
// request at a time, full-list replacement on success, idea list untouched
// on any failure. There is no retry and no way to abort an in-flight
// request.
type Client struct {
	endpoint string
	http     *commonhttp.Client
	ideas    *store.IdeaStore
	logger   logger.Logger
	busy     atomic.Bool
	onNotify func(Notification)
}

// NewClient builds a request client posting to the given generation
// endpoint. onNotify may be nil.
func NewClient(endpoint string, timeout time.Duration, ideaStore *store.IdeaStore, log logger.Logger, onNotify func(Notification)) *Client {
	return &Client{
		endpoint: endpoint,
		http:     commonhttp.NewClient(timeout),
		ideas:    ideaStore,
		logger: log.With(map[string]interface{}{
			"component": "idea-client",
		}),
		onNotify: onNotify,
	}
}

// Busy reports whether a generation is currently in flight.
func (c *Client) Busy() bool {
	return c.busy.Load()
}

// Generate runs one generation attempt end to end. Re-entrant calls while
// a request is in flight are rejected with GenerationBusy. On success the
// store's list is replaced wholesale, each idea stamped with a fresh UUID
// and creation time; on any failure the list is left exactly as it was.
func (c *Client) Generate(ctx context.Context, req GenerationRequest) ([]models.ContentIdea, error) {
	if !c.busy.CompareAndSwap(false, true) {
		return nil, errors.NewGenerationBusyError()
	}
	defer c.busy.Store(false)

	envelope, err := c.post(ctx, req)
	if err != nil {
		c.logger.WithError(err).Error("idea generation request failed", nil)
		c.notify(Notification{
			Title:       "Generation failed",
			Description: failureDescription(err),
			Failure:     true,
		})
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	fresh := make([]models.ContentIdea, len(envelope.Ideas))
	for i, idea := range envelope.Ideas {
		fresh[i] = models.ContentIdea{
			ID:               uuid.New().String(),
			Title:            idea.Title,
			Type:             models.ContentType(idea.Type),
			Confidence:       idea.Confidence,
			Sources:          toSourceRefs(idea.Sources),
			Reasoning:        idea.Reasoning,
			SuggestedOutline: idea.SuggestedOutline,
			EstimatedImpact:  models.ImpactLevel(idea.EstimatedImpact),
			CreatedAt:        now,
		}
	}

	c.ideas.Replace(fresh)
	c.logger.Info("idea list refreshed", map[string]interface{}{
		"count": len(fresh),
	})
	c.notify(Notification{
		Title:       "New ideas generated! ✨",
		Description: fmt.Sprintf("%d content ideas from AI analysis.", len(fresh)),
	})
	return fresh, nil
}

func (c *Client) post(ctx context.Context, genReq GenerationRequest) (*IdeasEnvelope, error) {
	body, err := json.Marshal(genReq)
	if err != nil {
		return nil, errors.NewNetworkFailureError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, errors.NewNetworkFailureError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.NewNetworkFailureError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewNetworkFailureError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &failure) == nil && failure.Error != "" {
			switch resp.StatusCode {
			case http.StatusTooManyRequests:
				return nil, errors.NewRateLimitedError()
			case http.StatusPaymentRequired:
				return nil, errors.NewQuotaExhaustedError()
			}
			return nil, errors.NewUpstreamError(resp.StatusCode, failure.Error)
		}
		return nil, errors.NewUpstreamError(resp.StatusCode, string(raw))
	}

	var envelope IdeasEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errors.NewUnexpectedResponseShapeError(err.Error())
	}
	if envelope.Ideas == nil {
		return nil, errors.NewUnexpectedResponseShapeError("response has no ideas array")
	}
	return &envelope, nil
}

func (c *Client) notify(n Notification) {
	if c.onNotify != nil {
		c.onNotify(n)
	}
}

func failureDescription(err error) string {
	if se, ok := err.(*errors.StandardError); ok {
		return se.Message
	}
	return "Could not generate ideas. Try again."
}

func toSourceRefs(sources []GeneratedSource) []models.SourceRef {
	refs := make([]models.SourceRef, len(sources))
	for i, s := range sources {
		refs[i] = models.SourceRef{
			Type:  models.SourceRefType(s.Type),
			Label: s.Label,
		}
	}
	return refs
}
