// internal/server/pipeline_handlers.go
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/logic25/beacon-content-engine/internal/common/errors"
	"github.com/logic25/beacon-content-engine/internal/data"
	"github.com/logic25/beacon-content-engine/internal/models"
)

// handleListPipeline returns active items by default; ?all=true includes
// dismissed ones.
func (s *Server) handleListPipeline(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("all") == "true" {
		writeJSON(w, http.StatusOK, s.pipeline.All())
		return
	}
	writeJSON(w, http.StatusOK, s.pipeline.Active())
}

type composeRequest struct {
	Title       string                     `json:"title"`
	ContentType models.PipelineContentType `json:"contentType"`
	Priority    string                     `json:"priority"`
	Reasoning   string                     `json:"reasoning"`
	KeyTopics   []string                   `json:"keyTopics"`
	Body        string                     `json:"body"`
}

// handleComposePipelineItem creates a user-authored item directly in the
// idea stage.
func (s *Server) handleComposePipelineItem(w http.ResponseWriter, r *http.Request) {
	var req composeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errs.WriteHTTPError(w, r, errors.NewInvalidRequestBodyError(err))
		return
	}
	if req.Title == "" {
		s.errs.WriteHTTPError(w, r, errors.NewInvalidRequestBodyError(fmt.Errorf("title is required")))
		return
	}
	if req.ContentType == "" {
		req.ContentType = models.PipelineBlogPost
	}
	if req.Priority == "" {
		req.Priority = "medium"
	}

	item := models.PipelineItem{
		ID:          uuid.New().String(),
		Title:       req.Title,
		ContentType: req.ContentType,
		Status:      models.StatusIdea,
		Priority:    req.Priority,
		Reasoning:   req.Reasoning,
		KeyTopics:   req.KeyTopics,
		SourceTrail: []models.SourceTrailEntry{},
		Body:        req.Body,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	s.pipeline.Add(item)
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handlePipelineFromConversation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ConversationID int `json:"conversationId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errs.WriteHTTPError(w, r, errors.NewInvalidRequestBodyError(err))
		return
	}

	for _, conv := range data.Conversations {
		if conv.ID == req.ConversationID {
			item := s.pipeline.AddFromConversation(conv)
			writeJSON(w, http.StatusCreated, item)
			return
		}
	}
	s.errs.WriteHTTPError(w, r, errors.NewNotFoundError("Conversation"))
}

func (s *Server) handlePipelineFromIdea(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IdeaID string `json:"ideaId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errs.WriteHTTPError(w, r, errors.NewInvalidRequestBodyError(err))
		return
	}

	for _, idea := range s.ideaStore.All() {
		if idea.ID == req.IdeaID {
			item := s.pipeline.AddFromAIIdea(idea)
			writeJSON(w, http.StatusCreated, item)
			return
		}
	}
	s.errs.WriteHTTPError(w, r, errors.NewNotFoundError("Content idea"))
}

var validStatuses = map[models.ContentStatus]bool{
	models.StatusIdea:      true,
	models.StatusDraft:     true,
	models.StatusReview:    true,
	models.StatusPublished: true,
	models.StatusDismissed: true,
}

// handlePipelineStatus applies a status transition. The store treats
// unknown ids as a no-op, so this always answers 204 for a valid status.
func (s *Server) handlePipelineStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status models.ContentStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errs.WriteHTTPError(w, r, errors.NewInvalidRequestBodyError(err))
		return
	}
	if !validStatuses[req.Status] {
		s.errs.WriteHTTPError(w, r, errors.NewInvalidRequestBodyError(fmt.Errorf("unknown status %q", req.Status)))
		return
	}

	s.pipeline.UpdateStatus(r.PathValue("id"), req.Status)
	w.WriteHeader(http.StatusNoContent)
}

// handlePipelineSnooze stores the given timestamp as-is; whether it is
// actually in the future is the caller's business.
func (s *Server) handlePipelineSnooze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Until string `json:"until"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errs.WriteHTTPError(w, r, errors.NewInvalidRequestBodyError(err))
		return
	}
	if req.Until == "" {
		s.errs.WriteHTTPError(w, r, errors.NewInvalidRequestBodyError(fmt.Errorf("until is required")))
		return
	}

	s.pipeline.Snooze(r.PathValue("id"), req.Until)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePipelineRemove(w http.ResponseWriter, r *http.Request) {
	s.pipeline.Remove(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}
