package handler

import (
	"errors"
	"net/http"

	"github.com/jmarek/space-voyages/backend/internal/domain"
)

// recommendFallbackMessage is shown to the end user whenever the upstream API
// or the store fails.
const recommendFallbackMessage = "Error: unable to get recommendation at this time."

// recommendRequest is the body of POST /api/recommendations.
// UserId is accepted for forward compatibility but not currently used to
// personalize beyond the preference text.
type recommendRequest struct {
	UserID     string `json:"userId"`
	Preference string `json:"preference"`
}

// recommendResponse is the success body of POST /api/recommendations.
type recommendResponse struct {
	Recommendation string `json:"recommendation"`
}

// Recommendations handles POST /api/recommendations.
// An empty catalog is not an error: the service returns a fixed friendly
// message and this handler passes it through as a normal recommendation.
func (s *Server) Recommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := decodeJSON(r, &req); err != nil {
		writeFlatError(w, http.StatusBadRequest, "Invalid request: preference is required")
		return
	}

	rec, err := s.recommend.Recommend(r.Context(), req.Preference)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeFlatError(w, http.StatusBadRequest, "Invalid request: preference is required")
			return
		}
		writeFlatError(w, http.StatusInternalServerError, recommendFallbackMessage)
		return
	}
	writeJSON(w, http.StatusOK, recommendResponse{Recommendation: rec})
}
