// internal/server/dashboard_handlers.go
package server

import (
	"net/http"
	"strconv"

	"github.com/logic25/beacon-content-engine/internal/data"
)

// The dashboard read endpoints serve the firm's seed datasets directly.
// They are session-scoped demo data; nothing here touches the stores.

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, data.Metrics)
}

func (s *Server) handleDailyUsage(w http.ResponseWriter, r *http.Request) {
	days := 30
	if v := r.URL.Query().Get("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 90 {
			days = n
		}
	}
	writeJSON(w, http.StatusOK, data.GenerateDailyUsage(days))
}

func (s *Server) handleConversations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, data.Conversations)
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, data.Topics)
}

func (s *Server) handleTopUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, data.TopUsers)
}

func (s *Server) handleSlashCommands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, data.SlashCommands)
}

func (s *Server) handleMostAsked(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, data.MostAsked)
}

func (s *Server) handleFailedQueries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, data.FailedQueries)
}

func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, data.Roadmap)
}

func (s *Server) handleCorrections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, data.ApprovedCorrections)
}

func (s *Server) handleKnowledgeDocuments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, data.KnowledgeDocuments)
}

func (s *Server) handleKnowledgeCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, data.KnowledgeCategories)
}

func (s *Server) handleConversationRefs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, data.ConversationDocRefs)
}

func (s *Server) handlePublished(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, data.PublishedContent)
}

func (s *Server) handleDigests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, data.WeeklyDigests)
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, data.ContentTemplates)
}

// handleIndustryProfile resolves the firm's industry (or an explicit
// ?industry= override) to its dashboard profile.
func (s *Server) handleIndustryProfile(w http.ResponseWriter, r *http.Request) {
	industry := r.URL.Query().Get("industry")
	if industry == "" {
		industry = s.cfg.Firm.Industry
	}
	key := data.MapIndustryToKey(industry)
	writeJSON(w, http.StatusOK, data.ProfileFor(key))
}
