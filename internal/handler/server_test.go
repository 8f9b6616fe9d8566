package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jmarek/space-voyages/backend/internal/domain"
	"github.com/jmarek/space-voyages/backend/internal/handler"
)

// mockCatalog is a test double for handler.CatalogServicer.
// Set only the method fields your test needs.
type mockCatalog struct {
	list    func(ctx context.Context, spec domain.FilterSpec) ([]domain.Package, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Package, error)
	book    func(ctx context.Context, id uuid.UUID, seats int) (domain.Package, error)
}

func (m *mockCatalog) List(ctx context.Context, spec domain.FilterSpec) ([]domain.Package, error) {
	return m.list(ctx, spec)
}
func (m *mockCatalog) GetByID(ctx context.Context, id uuid.UUID) (domain.Package, error) {
	return m.getByID(ctx, id)
}
func (m *mockCatalog) Book(ctx context.Context, id uuid.UUID, seats int) (domain.Package, error) {
	return m.book(ctx, id, seats)
}

var _ handler.CatalogServicer = (*mockCatalog)(nil)

// mockRecommender is a test double for handler.Recommender.
type mockRecommender struct {
	recommend func(ctx context.Context, preference string) (string, error)
}

func (m *mockRecommender) Recommend(ctx context.Context, preference string) (string, error) {
	return m.recommend(ctx, preference)
}

var _ handler.Recommender = (*mockRecommender)(nil)

// mockChat is a test double for handler.ChatReplier.
type mockChat struct {
	reply func(ctx context.Context, conversation []domain.ChatTurn) (string, error)
}

func (m *mockChat) Reply(ctx context.Context, conversation []domain.ChatTurn) (string, error) {
	return m.reply(ctx, conversation)
}

var _ handler.ChatReplier = (*mockChat)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into its chi router,
// mirroring exactly how main.go wires it in production. Nil mocks are fine
// for routes a test never exercises.
func newHTTPHandler(catalog handler.CatalogServicer, rec handler.Recommender, chat handler.ChatReplier) http.Handler {
	return handler.NewServer(catalog, rec, chat).Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func packageFixture() domain.Package {
	return domain.Package{
		ID:             uuid.New(),
		Name:           "Mars Adventure",
		Destination:    "Mars Base Alpha",
		Duration:       14,
		MinPrice:       500000,
		MaxPrice:       800000,
		Price:          650000,
		Capacity:       12,
		AvailableSeats: 3,
	}
}
