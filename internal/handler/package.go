package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jmarek/space-voyages/backend/internal/domain"
)

// ListPackages handles GET /packages.
// Query parameters: destination (substring), max_duration (days), min_price,
// max_price, sort (price-asc default, price-desc, duration-asc, duration-desc,
// departure-asc, departure-desc). Unset or malformed numeric filters are
// ignored rather than rejected, matching the lenient browser-form behavior.
func (s *Server) ListPackages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	spec := domain.NewFilterSpec(
		q.Get("destination"),
		intParam(q.Get("max_duration")),
		int64Param(q.Get("min_price")),
		int64Param(q.Get("max_price")),
		domain.SortKey(q.Get("sort")),
	)

	pkgs, err := s.catalog.List(r.Context(), spec)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "upstream_error", "failed to fetch packages")
		return
	}
	if pkgs == nil {
		pkgs = []domain.Package{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": pkgs})
}

// GetPackage handles GET /packages/{id}.
func (s *Server) GetPackage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid package id")
		return
	}

	pkg, err := s.catalog.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "package not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "upstream_error", "failed to fetch package")
		return
	}
	writeJSON(w, http.StatusOK, pkg)
}

// bookRequest is the body of POST /packages/{id}/book.
type bookRequest struct {
	Seats int `json:"seats"`
}

// BookPackage handles POST /packages/{id}/book.
// It reserves the requested number of seats and returns the updated package.
// 409 when fewer seats remain than requested.
func (s *Server) BookPackage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid package id")
		return
	}

	var req bookRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	pkg, err := s.catalog.Book(r.Context(), id, req.Seats)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, "validation_error", "seats must be at least 1")
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found", "package not found")
		case errors.Is(err, domain.ErrConflict):
			writeError(w, http.StatusConflict, "conflict", "not enough seats available")
		default:
			writeError(w, http.StatusInternalServerError, "upstream_error", "failed to book package")
		}
		return
	}
	writeJSON(w, http.StatusOK, pkg)
}

// intParam parses a positive integer query value, returning nil for anything
// absent or unparseable.
func intParam(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// int64Param is intParam for 64-bit price values.
func int64Param(s string) *int64 {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
