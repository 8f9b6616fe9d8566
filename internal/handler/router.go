package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes assembles the API routes onto a fresh chi router. Middleware is the
// caller's concern — main wires request IDs, logging, CORS, and body limits
// around the returned router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/packages", func(r chi.Router) {
		r.Get("/", s.ListPackages)
		r.Get("/{id}", s.GetPackage)
		r.Post("/{id}/book", s.BookPackage)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/chatbot", s.Chatbot)
		r.Post("/recommendations", s.Recommendations)
	})

	return r
}

// decodeJSON decodes the request body into v, rejecting unknown top-level
// content types implicitly via json syntax errors. A nil body fails too, so
// every POST handler gets a uniform "bad body" signal.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("empty body")
	}
	return json.NewDecoder(r.Body).Decode(v)
}
