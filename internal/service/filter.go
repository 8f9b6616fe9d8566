package service

import (
	"sort"
	"strings"

	"github.com/jmarek/space-voyages/backend/internal/domain"
)

// FilterPackages returns the packages satisfying every set constraint of spec.
// A package passes iff all of the following hold for the constraints present:
// destination contains the filter substring (case-insensitive), duration does
// not exceed the maximum, and price falls inside the requested band.
// Pure function: no store or network access, input slice untouched.
func FilterPackages(pkgs []domain.Package, spec domain.FilterSpec) []domain.Package {
	out := make([]domain.Package, 0, len(pkgs))
	dest := strings.ToLower(spec.Destination)
	for _, p := range pkgs {
		if dest != "" && !strings.Contains(strings.ToLower(p.Destination), dest) {
			continue
		}
		if spec.MaxDuration != nil && p.Duration > *spec.MaxDuration {
			continue
		}
		if spec.MinPrice != nil && p.Price < *spec.MinPrice {
			continue
		}
		if spec.MaxPrice != nil && p.Price > *spec.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortPackages returns a copy of pkgs ordered by the given key. The sort is
// stable, so ties keep the input's relative order (most recently created
// first, per the repo's retrieval order). An unknown key leaves the input
// order intact.
func SortPackages(pkgs []domain.Package, key domain.SortKey) []domain.Package {
	out := make([]domain.Package, len(pkgs))
	copy(out, pkgs)

	var less func(a, b domain.Package) bool
	switch key {
	case domain.SortPriceAsc:
		less = func(a, b domain.Package) bool { return a.Price < b.Price }
	case domain.SortPriceDesc:
		less = func(a, b domain.Package) bool { return b.Price < a.Price }
	case domain.SortDurationAsc:
		less = func(a, b domain.Package) bool { return a.Duration < b.Duration }
	case domain.SortDurationDesc:
		less = func(a, b domain.Package) bool { return b.Duration < a.Duration }
	case domain.SortDepartureAsc:
		less = func(a, b domain.Package) bool { return a.Departure.Before(b.Departure) }
	case domain.SortDepartureDesc:
		less = func(a, b domain.Package) bool { return b.Departure.Before(a.Departure) }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
