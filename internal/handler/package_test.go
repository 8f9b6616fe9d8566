package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmarek/space-voyages/backend/internal/domain"
)

// ---- GET /packages ---------------------------------------------------------

func TestListPackages_200(t *testing.T) {
	pkgs := []domain.Package{packageFixture(), packageFixture()}
	catalog := &mockCatalog{
		list: func(_ context.Context, _ domain.FilterSpec) ([]domain.Package, error) {
			return pkgs, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/packages", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(catalog, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []domain.Package `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Data, 2)
}

func TestListPackages_ParsesQueryParams(t *testing.T) {
	var got domain.FilterSpec
	catalog := &mockCatalog{
		list: func(_ context.Context, spec domain.FilterSpec) ([]domain.Package, error) {
			got = spec
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet,
		"/packages?destination=mars&max_duration=14&min_price=1000&max_price=700000&sort=duration-desc", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(catalog, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "mars", got.Destination)
	require.NotNil(t, got.MaxDuration)
	assert.Equal(t, 14, *got.MaxDuration)
	require.NotNil(t, got.MinPrice)
	assert.Equal(t, int64(1000), *got.MinPrice)
	require.NotNil(t, got.MaxPrice)
	assert.Equal(t, int64(700000), *got.MaxPrice)
	assert.Equal(t, domain.SortDurationDesc, got.Sort)
}

func TestListPackages_DefaultSortIsPriceAsc(t *testing.T) {
	var got domain.FilterSpec
	catalog := &mockCatalog{
		list: func(_ context.Context, spec domain.FilterSpec) ([]domain.Package, error) {
			got = spec
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/packages", nil)
	newHTTPHandler(catalog, nil, nil).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, domain.SortPriceAsc, got.Sort)
}

func TestListPackages_EmptyCatalogIsEmptyArray(t *testing.T) {
	catalog := &mockCatalog{
		list: func(_ context.Context, _ domain.FilterSpec) ([]domain.Package, error) {
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/packages", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(catalog, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// The UI expects "data": [] rather than "data": null.
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestListPackages_500_StoreFailure(t *testing.T) {
	catalog := &mockCatalog{
		list: func(_ context.Context, _ domain.FilterSpec) ([]domain.Package, error) {
			return nil, fmt.Errorf("%w: connection refused", domain.ErrUpstream)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/packages", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(catalog, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Generic user-safe message only — no upstream detail.
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

// ---- GET /packages/{id} ----------------------------------------------------

func TestGetPackage_200(t *testing.T) {
	fixture := packageFixture()
	catalog := &mockCatalog{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Package, error) {
			assert.Equal(t, fixture.ID, id)
			return fixture, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/packages/"+fixture.ID.String(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(catalog, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Package
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.Name, resp.Name)
}

func TestGetPackage_404(t *testing.T) {
	catalog := &mockCatalog{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Package, error) {
			return domain.Package{}, fmt.Errorf("wrapped: %w", domain.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/packages/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(catalog, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestGetPackage_400_BadID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/packages/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(&mockCatalog{}, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- POST /packages/{id}/book ----------------------------------------------

func TestBookPackage_200(t *testing.T) {
	fixture := packageFixture()
	fixture.AvailableSeats = 1
	catalog := &mockCatalog{
		book: func(_ context.Context, id uuid.UUID, seats int) (domain.Package, error) {
			assert.Equal(t, 2, seats)
			return fixture, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/packages/"+fixture.ID.String()+"/book",
		jsonBody(t, map[string]int{"seats": 2}))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(catalog, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Package
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.AvailableSeats)
}

func TestBookPackage_409_NotEnoughSeats(t *testing.T) {
	catalog := &mockCatalog{
		book: func(_ context.Context, _ uuid.UUID, _ int) (domain.Package, error) {
			return domain.Package{}, fmt.Errorf("wrapped: %w", domain.ErrConflict)
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/packages/"+uuid.NewString()+"/book",
		jsonBody(t, map[string]int{"seats": 99}))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(catalog, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBookPackage_400_ZeroSeats(t *testing.T) {
	catalog := &mockCatalog{
		book: func(_ context.Context, _ uuid.UUID, _ int) (domain.Package, error) {
			return domain.Package{}, fmt.Errorf("wrapped: %w", domain.ErrValidation)
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/packages/"+uuid.NewString()+"/book",
		jsonBody(t, map[string]int{"seats": 0}))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(catalog, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
