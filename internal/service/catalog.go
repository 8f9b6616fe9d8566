// Package service contains the business logic for the Space Voyages API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmarek/space-voyages/backend/internal/domain"
	"github.com/jmarek/space-voyages/backend/internal/repo"
)

// CatalogService implements the package listing, detail, and booking operations.
type CatalogService struct {
	repo repo.PackageRepo
}

// NewCatalogService constructs a CatalogService backed by the provided PackageRepo.
func NewCatalogService(r repo.PackageRepo) *CatalogService {
	return &CatalogService{repo: r}
}

// List fetches the full catalog snapshot, then filters and sorts it in memory
// according to spec. A store failure surfaces as domain.ErrUpstream so the
// caller renders an error state rather than an empty catalog.
func (s *CatalogService) List(ctx context.Context, spec domain.FilterSpec) ([]domain.Package, error) {
	pkgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.List: %w: %w", domain.ErrUpstream, err)
	}
	return SortPackages(FilterPackages(pkgs, spec), spec.Sort), nil
}

// GetByID returns a single package by ID.
func (s *CatalogService) GetByID(ctx context.Context, id uuid.UUID) (domain.Package, error) {
	pkg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Package{}, fmt.Errorf("service.CatalogService.GetByID: %w", err)
	}
	return pkg, nil
}

// Book reserves seats on a package. The seat count must be at least one;
// the repo guarantees the decrement never oversells.
func (s *CatalogService) Book(ctx context.Context, id uuid.UUID, seats int) (domain.Package, error) {
	if seats < 1 {
		return domain.Package{}, fmt.Errorf("service.CatalogService.Book: %w: seats must be at least 1", domain.ErrValidation)
	}
	pkg, err := s.repo.ReserveSeats(ctx, id, seats)
	if err != nil {
		return domain.Package{}, fmt.Errorf("service.CatalogService.Book: %w", err)
	}
	return pkg, nil
}
