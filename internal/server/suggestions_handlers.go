// internal/server/suggestions_handlers.go
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/logic25/beacon-content-engine/internal/common/errors"
	"github.com/logic25/beacon-content-engine/internal/models"
)

func (s *Server) handleListSuggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.suggestions.All())
}

type addSuggestionRequest struct {
	User          string `json:"user"`
	WrongAnswer   string `json:"wrongAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
}

func (s *Server) handleAddSuggestion(w http.ResponseWriter, r *http.Request) {
	var req addSuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errs.WriteHTTPError(w, r, errors.NewInvalidRequestBodyError(err))
		return
	}
	if req.CorrectAnswer == "" {
		s.errs.WriteHTTPError(w, r, errors.NewInvalidRequestBodyError(fmt.Errorf("correctAnswer is required")))
		return
	}

	sg := models.Suggestion{
		ID:            int(time.Now().UnixMilli()),
		User:          req.User,
		When:          "Just now",
		WrongAnswer:   req.WrongAnswer,
		CorrectAnswer: req.CorrectAnswer,
		Status:        models.SuggestionPending,
	}
	s.suggestions.Add(sg)
	writeJSON(w, http.StatusCreated, sg)
}

func (s *Server) handleApproveSuggestion(w http.ResponseWriter, r *http.Request) {
	s.setSuggestionStatus(w, r, models.SuggestionApproved)
}

func (s *Server) handleRejectSuggestion(w http.ResponseWriter, r *http.Request) {
	s.setSuggestionStatus(w, r, models.SuggestionRejected)
}

func (s *Server) setSuggestionStatus(w http.ResponseWriter, r *http.Request, status models.SuggestionStatus) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errs.WriteHTTPError(w, r, errors.NewInvalidRequestBodyError(fmt.Errorf("suggestion id must be numeric")))
		return
	}
	s.suggestions.SetStatus(id, status)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemoveSuggestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errs.WriteHTTPError(w, r, errors.NewInvalidRequestBodyError(fmt.Errorf("suggestion id must be numeric")))
		return
	}
	s.suggestions.Remove(id)
	w.WriteHeader(http.StatusNoContent)
}
