package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/edu-recommender/internal/types"
)

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListContent returns the full content catalogue.
func (s *Server) handleListContent(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.All())
}

// handleListUsers returns all learner personas.
func (s *Server) handleListUsers(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Users())
}

// handleGetUser returns a single persona by id.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	user, ok := s.store.UserByID(id)
	if !ok {
		s.errorResponse(w, HTTPStatus(&ErrUserNotFound{UserID: id}), (&ErrUserNotFound{UserID: id}).Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, user)
}

// handleRecommend accepts a user profile and returns top-3 recommendations.
// The profile is validated before the pipeline runs; a validation failure is
// a 422 and never reaches the embedding stage.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var profile types.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	if err := profile.Validate(); err != nil {
		verr := &ErrValidation{Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	resp, err := s.runner.Run(r.Context(), profile)
	if err != nil {
		log.Printf("Recommendation pipeline failed for user %s: %v", profile.UserID, err)
		s.errorResponse(w, http.StatusBadGateway, "recommendation pipeline failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
