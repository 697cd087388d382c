// internal/server/server_test.go
package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logic25/beacon-content-engine/internal/common/config"
	"github.com/logic25/beacon-content-engine/internal/common/logger"
	"github.com/logic25/beacon-content-engine/internal/data"
	"github.com/logic25/beacon-content-engine/internal/ideas"
	"github.com/logic25/beacon-content-engine/internal/models"
	"github.com/logic25/beacon-content-engine/internal/store"
)

// testEnv wires a full server against a fake upstream gateway. The request
// client posts back into the server's own generation endpoint, mirroring
// production wiring.
type testEnv struct {
	server   *Server
	api      *httptest.Server
	upstream *httptest.Server
	stores   Stores
}

func newTestEnv(t *testing.T, upstream http.HandlerFunc) *testEnv {
	t.Helper()

	upstreamServer := httptest.NewServer(upstream)
	t.Cleanup(upstreamServer.Close)

	log := logger.NewTestLogger(t)
	cfg := &config.Config{}
	cfg.Server.Address = ":0"
	cfg.Gateway = config.GatewayConfig{
		BaseURL: upstreamServer.URL,
		APIKey:  "test-key",
		Model:   "google/gemini-3-flash-preview",
		Timeout: 5000,
	}
	cfg.Generation = config.GenerationConfig{MaxConversations: 6, MaxDocuments: 15}
	cfg.Firm = config.FirmConfig{Name: "Meridian Advisory Group", Industry: "Accounting & Tax Services"}

	stores := Stores{
		Pipeline:    store.NewPipelineStore(log),
		Ideas:       store.NewIdeaStore(log, data.SeedContentIdeas),
		Suggestions: store.NewSuggestionsStore(log, data.Suggestions),
	}
	service := ideas.NewService(cfg.Gateway, log)

	srv := New(cfg, log, stores, service, nil)
	apiServer := httptest.NewServer(srv.Handler())
	t.Cleanup(apiServer.Close)

	// the client calls back into our own generation endpoint
	client := ideas.NewClient(apiServer.URL+"/api/generate-content-ideas", 5*time.Second, stores.Ideas, log, nil)
	srv.client = client

	return &testEnv{server: srv, api: apiServer, upstream: upstreamServer, stores: stores}
}

func okUpstream(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		args := `{"ideas":[{"title":"Estimated Tax Guide","type":"blog_post","confidence":0.9,"estimatedImpact":"high","reasoning":"asked often","sources":[{"type":"trend","label":"tax questions"}],"suggestedOutline":["Who pays","When","How much","Mistakes"]}]}`
		body := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{
					"tool_calls": []map[string]interface{}{
						{"function": map[string]interface{}{"name": ideas.ToolName, "arguments": args}},
					},
				}},
			},
		}
		writeJSON(w, http.StatusOK, body)
	}
}

func (e *testEnv) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(e.api.URL + path)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) post(t *testing.T, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(e.api.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestServer_PreflightShortCircuits(t *testing.T) {
	env := newTestEnv(t, okUpstream(t))

	req, err := http.NewRequest(http.MethodOptions, env.api.URL+"/api/generate-content-ideas", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "authorization")
	assert.Equal(t, int64(0), resp.ContentLength)
}

func TestServer_DashboardEndpoints(t *testing.T) {
	env := newTestEnv(t, okUpstream(t))

	tests := []struct {
		path    string
		minimum int
	}{
		{"/api/metrics", 4},
		{"/api/conversations", 3},
		{"/api/topics", 5},
		{"/api/users/top", 3},
		{"/api/commands", 3},
		{"/api/most-asked", 3},
		{"/api/failed-queries", 1},
		{"/api/roadmap", 3},
		{"/api/corrections", 2},
		{"/api/knowledge/documents", 10},
		{"/api/knowledge/categories", 5},
		{"/api/knowledge/refs", 3},
		{"/api/published", 3},
		{"/api/digests", 1},
		{"/api/templates", 2},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := env.get(t, tt.path)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

			var list []json.RawMessage
			decodeInto(t, resp, &list)
			assert.GreaterOrEqual(t, len(list), tt.minimum)
		})
	}
}

func TestServer_DailyUsageHonorsDaysParam(t *testing.T) {
	env := newTestEnv(t, okUpstream(t))

	var usage []models.DailyUsage
	decodeInto(t, env.get(t, "/api/usage/daily?days=7"), &usage)
	assert.Len(t, usage, 7)

	decodeInto(t, env.get(t, "/api/usage/daily"), &usage)
	assert.Len(t, usage, 30)
}

func TestServer_IndustryProfile(t *testing.T) {
	env := newTestEnv(t, okUpstream(t))

	// configured firm industry resolves to the accounting vertical
	var profile data.IndustryProfile
	decodeInto(t, env.get(t, "/api/profile"), &profile)
	assert.Equal(t, "accounting", profile.Key)
	assert.NotEmpty(t, profile.Insights)

	// explicit override
	decodeInto(t, env.get(t, "/api/profile?industry=Law+Firm"), &profile)
	assert.Equal(t, "legal", profile.Key)

	// unknown industries get the generic profile
	decodeInto(t, env.get(t, "/api/profile?industry=Beekeeping"), &profile)
	assert.Equal(t, "generic", profile.Key)
}

func TestServer_GenerateContentIdeasPassthrough(t *testing.T) {
	env := newTestEnv(t, okUpstream(t))

	resp := env.post(t, "/api/generate-content-ideas", `{"mostAskedQuestions":[{"question":"q","timesAsked":2}]}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	decodeInto(t, resp, &payload)
	ideasList := payload["ideas"].([]interface{})
	require.Len(t, ideasList, 1)
	assert.Equal(t, "Estimated Tax Guide", ideasList[0].(map[string]interface{})["title"])
}

func TestServer_GenerateContentIdeasErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		upstreamStatus int
		wantStatus     int
		wantInBody     string
	}{
		{"rate limited", http.StatusTooManyRequests, http.StatusTooManyRequests, "try again"},
		{"quota exhausted", http.StatusPaymentRequired, http.StatusPaymentRequired, "credits"},
		{"other upstream failure", http.StatusBadGateway, http.StatusInternalServerError, "AI gateway error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.upstreamStatus)
				w.Write([]byte("upstream says no"))
			})

			resp := env.post(t, "/api/generate-content-ideas", `{}`)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body struct {
				Error string `json:"error"`
			}
			decodeInto(t, resp, &body)
			assert.Contains(t, body.Error, tt.wantInBody)
		})
	}
}

func TestServer_GenerateContentIdeasRejectsBadBody(t *testing.T) {
	env := newTestEnv(t, okUpstream(t))

	resp := env.post(t, "/api/generate-content-ideas", `{not json`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_TriggerGenerationRefreshesStore(t *testing.T) {
	env := newTestEnv(t, okUpstream(t))

	before := env.stores.Ideas.All()
	require.NotEmpty(t, before)

	resp := env.post(t, "/api/ideas/generate", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Ideas []models.ContentIdea `json:"ideas"`
	}
	decodeInto(t, resp, &body)
	require.Len(t, body.Ideas, 1)
	assert.Equal(t, "Estimated Tax Guide", body.Ideas[0].Title)
	assert.NotEmpty(t, body.Ideas[0].ID)

	stored := env.stores.Ideas.All()
	require.Len(t, stored, 1)
	assert.NotEqual(t, before[0].ID, stored[0].ID)
}

func TestServer_TriggerGenerationFailureKeepsSeedIdeas(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("slow down"))
	})

	resp := env.post(t, "/api/ideas/generate", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	stored := env.stores.Ideas.All()
	assert.Len(t, stored, len(data.SeedContentIdeas))
}

func TestServer_PipelineCompose(t *testing.T) {
	env := newTestEnv(t, okUpstream(t))

	resp := env.post(t, "/api/pipeline", `{"title":"Billing FAQ","contentType":"newsletter","reasoning":"asked weekly"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var item models.PipelineItem
	decodeInto(t, resp, &item)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, models.StatusIdea, item.Status)
	assert.Equal(t, models.PipelineNewsletter, item.ContentType)
	assert.Equal(t, "medium", item.Priority)

	var list []models.PipelineItem
	decodeInto(t, env.get(t, "/api/pipeline"), &list)
	require.Len(t, list, 1)
}

func TestServer_PipelineComposeRequiresTitle(t *testing.T) {
	env := newTestEnv(t, okUpstream(t))

	resp := env.post(t, "/api/pipeline", `{"contentType":"blog_post"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_PipelineFromConversation(t *testing.T) {
	env := newTestEnv(t, okUpstream(t))

	known := data.Conversations[0].ID
	resp := env.post(t, "/api/pipeline/from-conversation", `{"conversationId":`+itoa(known)+`}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var item models.PipelineItem
	decodeInto(t, resp, &item)
	assert.Equal(t, models.TrailConversation, item.SourceTrail[0].Type)

	resp = env.post(t, "/api/pipeline/from-conversation", `{"conversationId":99999}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_PipelineFromIdea(t *testing.T) {
	env := newTestEnv(t, okUpstream(t))

	seedID := data.SeedContentIdeas[0].ID
	resp := env.post(t, "/api/pipeline/from-idea", `{"ideaId":"`+seedID+`"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var item models.PipelineItem
	decodeInto(t, resp, &item)
	assert.Equal(t, models.TrailAIIdea, item.SourceTrail[0].Type)
	assert.Equal(t, "high", item.Priority)

	resp = env.post(t, "/api/pipeline/from-idea", `{"ideaId":"no-such-idea"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_PipelineStatusTransitions(t *testing.T) {
	env := newTestEnv(t, okUpstream(t))

	var item models.PipelineItem
	decodeInto(t, env.post(t, "/api/pipeline", `{"title":"Draft me"}`), &item)

	resp := env.post(t, "/api/pipeline/"+item.ID+"/status", `{"status":"draft"}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	var list []models.PipelineItem
	decodeInto(t, env.get(t, "/api/pipeline"), &list)
	assert.Equal(t, models.StatusDraft, list[0].Status)

	// invalid status is rejected before touching the store
	resp = env.post(t, "/api/pipeline/"+item.ID+"/status", `{"status":"archived"}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// dismissing hides the item from the default listing
	resp = env.post(t, "/api/pipeline/"+item.ID+"/status", `{"status":"dismissed"}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	decodeInto(t, env.get(t, "/api/pipeline"), &list)
	assert.Empty(t, list)
	decodeInto(t, env.get(t, "/api/pipeline?all=true"), &list)
	require.Len(t, list, 1)
	assert.NotEmpty(t, list[0].DismissedAt)
}

func TestServer_PipelineSnoozeAndRemove(t *testing.T) {
	env := newTestEnv(t, okUpstream(t))

	var item models.PipelineItem
	decodeInto(t, env.post(t, "/api/pipeline", `{"title":"Snooze me"}`), &item)

	resp := env.post(t, "/api/pipeline/"+item.ID+"/snooze", `{"until":"2026-09-15T00:00:00Z"}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	var list []models.PipelineItem
	decodeInto(t, env.get(t, "/api/pipeline"), &list)
	assert.Equal(t, "2026-09-15T00:00:00Z", list[0].SnoozedUntil)

	req, err := http.NewRequest(http.MethodDelete, env.api.URL+"/api/pipeline/"+item.ID, nil)
	require.NoError(t, err)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)

	decodeInto(t, env.get(t, "/api/pipeline?all=true"), &list)
	assert.Empty(t, list)
}

func TestServer_SuggestionsWorkflow(t *testing.T) {
	env := newTestEnv(t, okUpstream(t))

	var before []models.Suggestion
	decodeInto(t, env.get(t, "/api/suggestions"), &before)
	require.NotEmpty(t, before)
	target := before[0].ID

	resp := env.post(t, "/api/suggestions/"+itoa(target)+"/approve", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	var after []models.Suggestion
	decodeInto(t, env.get(t, "/api/suggestions"), &after)
	for _, sg := range after {
		if sg.ID == target {
			assert.Equal(t, models.SuggestionApproved, sg.Status)
		}
	}

	// new submissions land at the front, pending
	resp = env.post(t, "/api/suggestions", `{"user":"Lisa K.","wrongAnswer":"old","correctAnswer":"new"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var added models.Suggestion
	decodeInto(t, resp, &added)
	assert.Equal(t, models.SuggestionPending, added.Status)

	req, err := http.NewRequest(http.MethodDelete, env.api.URL+"/api/suggestions/"+itoa(added.ID), nil)
	require.NoError(t, err)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
