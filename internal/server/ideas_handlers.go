// internal/server/ideas_handlers.go
package server

import (
	"encoding/json"
	"net/http"

	"github.com/logic25/beacon-content-engine/internal/common/errors"
	"github.com/logic25/beacon-content-engine/internal/ideas"
	"github.com/logic25/beacon-content-engine/internal/models"
)

// handleGenerateContentIdeas is the generation proxy: it forwards the
// caller's context snapshot to the gateway and passes the validated ideas
// payload through untouched.
func (s *Server) handleGenerateContentIdeas(w http.ResponseWriter, r *http.Request) {
	var req ideas.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errs.WriteHTTPError(w, r, errors.NewInvalidRequestBodyError(err))
		return
	}

	payload, err := s.service.Generate(r.Context(), req)
	if err != nil {
		s.errs.WriteHTTPError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleListIdeas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ideaStore.All())
}

// handleTriggerGeneration runs the dashboard's generation flow: gather the
// context snapshot, call the generation endpoint, replace the idea list.
// A second trigger while one is in flight gets a conflict.
func (s *Server) handleTriggerGeneration(w http.ResponseWriter, r *http.Request) {
	req := ideas.GatherContext(s.cfg.Generation)

	fresh, err := s.client.Generate(r.Context(), req)
	if err != nil {
		s.errs.WriteHTTPError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Ideas []models.ContentIdea `json:"ideas"`
	}{Ideas: fresh})
}
