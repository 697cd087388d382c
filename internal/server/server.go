// internal/server/server.go
package server

import (
	"context"
	"encoding/json"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/logic25/beacon-content-engine/internal/common/config"
	"github.com/logic25/beacon-content-engine/internal/common/errors"
	"github.com/logic25/beacon-content-engine/internal/common/logger"
	"github.com/logic25/beacon-content-engine/internal/ideas"
	"github.com/logic25/beacon-content-engine/internal/store"
)

// Server is the dashboard API: read endpoints over the seed datasets and
// stores, the idea generation proxy, and the pipeline/suggestions
// workflows. A second listener serves metrics and pprof when enabled.
type Server struct {
	cfg         *config.Config
	logger      logger.Logger
	errs        *errors.ErrorHandler
	pipeline    *store.PipelineStore
	ideaStore   *store.IdeaStore
	suggestions *store.SuggestionsStore
	service     *ideas.Service
	client      *ideas.Client

	httpServer *http.Server
	opsServer  *http.Server
}

// Stores bundles the injected store instances.
type Stores struct {
	Pipeline    *store.PipelineStore
	Ideas       *store.IdeaStore
	Suggestions *store.SuggestionsStore
}

// New wires a server over the given stores and generation components.
func New(cfg *config.Config, log logger.Logger, stores Stores, service *ideas.Service, client *ideas.Client) *Server {
	s := &Server{
		cfg:         cfg,
		logger:      log.With(map[string]interface{}{"component": "api-server"}),
		errs:        errors.NewErrorHandler(log),
		pipeline:    stores.Pipeline,
		ideaStore:   stores.Ideas,
		suggestions: stores.Suggestions,
		service:     service,
		client:      client,
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      s.Handler(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}
	return s
}

// Handler builds the routed, middleware-wrapped handler. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// dashboard datasets
	mux.HandleFunc("GET /api/metrics", s.handleMetrics)
	mux.HandleFunc("GET /api/usage/daily", s.handleDailyUsage)
	mux.HandleFunc("GET /api/conversations", s.handleConversations)
	mux.HandleFunc("GET /api/topics", s.handleTopics)
	mux.HandleFunc("GET /api/users/top", s.handleTopUsers)
	mux.HandleFunc("GET /api/commands", s.handleSlashCommands)
	mux.HandleFunc("GET /api/most-asked", s.handleMostAsked)
	mux.HandleFunc("GET /api/failed-queries", s.handleFailedQueries)
	mux.HandleFunc("GET /api/roadmap", s.handleRoadmap)
	mux.HandleFunc("GET /api/corrections", s.handleCorrections)
	mux.HandleFunc("GET /api/knowledge/documents", s.handleKnowledgeDocuments)
	mux.HandleFunc("GET /api/knowledge/categories", s.handleKnowledgeCategories)
	mux.HandleFunc("GET /api/knowledge/refs", s.handleConversationRefs)
	mux.HandleFunc("GET /api/published", s.handlePublished)
	mux.HandleFunc("GET /api/digests", s.handleDigests)
	mux.HandleFunc("GET /api/templates", s.handleTemplates)
	mux.HandleFunc("GET /api/profile", s.handleIndustryProfile)

	// idea generation
	mux.HandleFunc("POST /api/generate-content-ideas", s.handleGenerateContentIdeas)
	mux.HandleFunc("GET /api/ideas", s.handleListIdeas)
	mux.HandleFunc("POST /api/ideas/generate", s.handleTriggerGeneration)

	// content pipeline
	mux.HandleFunc("GET /api/pipeline", s.handleListPipeline)
	mux.HandleFunc("POST /api/pipeline", s.handleComposePipelineItem)
	mux.HandleFunc("POST /api/pipeline/from-conversation", s.handlePipelineFromConversation)
	mux.HandleFunc("POST /api/pipeline/from-idea", s.handlePipelineFromIdea)
	mux.HandleFunc("POST /api/pipeline/{id}/status", s.handlePipelineStatus)
	mux.HandleFunc("POST /api/pipeline/{id}/snooze", s.handlePipelineSnooze)
	mux.HandleFunc("DELETE /api/pipeline/{id}", s.handlePipelineRemove)

	// suggestions review
	mux.HandleFunc("GET /api/suggestions", s.handleListSuggestions)
	mux.HandleFunc("POST /api/suggestions", s.handleAddSuggestion)
	mux.HandleFunc("POST /api/suggestions/{id}/approve", s.handleApproveSuggestion)
	mux.HandleFunc("POST /api/suggestions/{id}/reject", s.handleRejectSuggestion)
	mux.HandleFunc("DELETE /api/suggestions/{id}", s.handleRemoveSuggestion)

	return s.withCORS(s.withRequestLogging(mux))
}

// Start runs the API listener and, when enabled, the ops listener. It
// blocks until the server stops.
func (s *Server) Start() error {
	if s.cfg.Ops.Enabled {
		go s.serveOps()
	}

	s.logger.Info("API server listening", map[string]interface{}{
		"address": s.cfg.Server.Address,
	})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests on both listeners.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.opsServer != nil {
		_ = s.opsServer.Shutdown(ctx)
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) serveOps() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/debug/pprof/", http.DefaultServeMux)

	s.opsServer = &http.Server{
		Addr:    s.cfg.Ops.Address,
		Handler: mux,
	}

	s.logger.Info("ops server listening", map[string]interface{}{
		"address": s.cfg.Ops.Address,
	})
	if err := s.opsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.WithError(err).Error("ops server failed", nil)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
