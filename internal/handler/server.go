// Package handler implements the HTTP handlers for the Space Voyages API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (package.go, chat.go, recommend.go, health.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/jmarek/space-voyages/backend/internal/domain"
)

// CatalogServicer defines the business operations the package handlers depend
// on. Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type CatalogServicer interface {
	List(ctx context.Context, spec domain.FilterSpec) ([]domain.Package, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Package, error)
	Book(ctx context.Context, id uuid.UUID, seats int) (domain.Package, error)
}

// Recommender defines the operation behind POST /api/recommendations.
type Recommender interface {
	Recommend(ctx context.Context, preference string) (string, error)
}

// ChatReplier defines the operation behind POST /api/chatbot.
type ChatReplier interface {
	Reply(ctx context.Context, conversation []domain.ChatTurn) (string, error)
}

// Server holds the handler dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	catalog   CatalogServicer
	recommend Recommender
	chat      ChatReplier
}

// NewServer constructs the Server with all its dependencies.
func NewServer(catalog CatalogServicer, recommend Recommender, chat ChatReplier) *Server {
	return &Server{catalog: catalog, recommend: recommend, chat: chat}
}
