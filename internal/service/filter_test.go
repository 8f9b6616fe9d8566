package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmarek/space-voyages/backend/internal/domain"
	"github.com/jmarek/space-voyages/backend/internal/service"
)

func pkg(name string, price int64, duration int, destination string, departure time.Time) domain.Package {
	return domain.Package{
		Name:        name,
		Price:       price,
		Duration:    duration,
		Destination: destination,
		Departure:   departure,
	}
}

func testCatalog() []domain.Package {
	day := func(d int) time.Time { return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC) }
	return []domain.Package{
		pkg("Jupiter Odyssey", 980000, 21, "Europa & Ganymede Stations", day(20)),
		pkg("Mars Adventure", 650000, 14, "Mars Base Alpha", day(10)),
		pkg("Lunar Getaway", 350000, 7, "Moon Resort & Spa", day(5)),
		pkg("Space Walk Experience", 95000, 2, "Low Earth Orbit", day(1)),
	}
}

// ---- FilterPackages --------------------------------------------------------

func TestFilterPackages_DestinationCaseInsensitive(t *testing.T) {
	got := service.FilterPackages(testCatalog(), domain.FilterSpec{Destination: "mars"})

	require.Len(t, got, 1)
	assert.Equal(t, "Mars Adventure", got[0].Name)
}

func TestFilterPackages_DurationIsAMaximum(t *testing.T) {
	got := service.FilterPackages(testCatalog(), domain.FilterSpec{MaxDuration: intPtr(14)})

	// Everything up to and including 14 days passes; 21 days does not.
	require.Len(t, got, 3)
	for _, p := range got {
		assert.LessOrEqual(t, p.Duration, 14)
	}
}

func TestFilterPackages_PriceBand(t *testing.T) {
	got := service.FilterPackages(testCatalog(), domain.FilterSpec{
		MinPrice: int64Ptr(100000),
		MaxPrice: int64Ptr(700000),
	})

	require.Len(t, got, 2)
	assert.Equal(t, "Mars Adventure", got[0].Name)
	assert.Equal(t, "Lunar Getaway", got[1].Name)
}

func TestFilterPackages_Scenario_MarsUnder14Days(t *testing.T) {
	catalog := []domain.Package{
		pkg("A", 0, 14, "Mars Base Alpha", time.Time{}),
		pkg("B", 0, 7, "Moon Resort", time.Time{}),
	}

	got := service.FilterPackages(catalog, domain.FilterSpec{
		Destination: "mars",
		MaxDuration: intPtr(14),
	})

	require.Len(t, got, 1)
	assert.Equal(t, "Mars Base Alpha", got[0].Destination)
}

// TestFilterPackages_Monotonic checks that adding a constraint never grows
// the result set.
func TestFilterPackages_Monotonic(t *testing.T) {
	catalog := testCatalog()

	base := service.FilterPackages(catalog, domain.FilterSpec{})
	withDest := service.FilterPackages(catalog, domain.FilterSpec{Destination: "o"})
	withBoth := service.FilterPackages(catalog, domain.FilterSpec{Destination: "o", MaxDuration: intPtr(7)})

	assert.GreaterOrEqual(t, len(base), len(withDest))
	assert.GreaterOrEqual(t, len(withDest), len(withBoth))
}

func TestFilterPackages_EmptySpecKeepsAll(t *testing.T) {
	catalog := testCatalog()

	got := service.FilterPackages(catalog, domain.FilterSpec{})

	assert.Len(t, got, len(catalog))
}

// ---- SortPackages ----------------------------------------------------------

func names(pkgs []domain.Package) []string {
	out := make([]string, len(pkgs))
	for i, p := range pkgs {
		out[i] = p.Name
	}
	return out
}

func TestSortPackages_PriceAsc(t *testing.T) {
	got := service.SortPackages(testCatalog(), domain.SortPriceAsc)

	assert.Equal(t, []string{"Space Walk Experience", "Lunar Getaway", "Mars Adventure", "Jupiter Odyssey"}, names(got))
}

// TestSortPackages_DescReversesAsc checks that descending order is exactly
// the reverse of ascending when no prices tie.
func TestSortPackages_DescReversesAsc(t *testing.T) {
	catalog := testCatalog()

	asc := service.SortPackages(catalog, domain.SortPriceAsc)
	desc := service.SortPackages(catalog, domain.SortPriceDesc)

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i].Name, desc[len(desc)-1-i].Name)
	}
}

func TestSortPackages_DurationDesc(t *testing.T) {
	got := service.SortPackages(testCatalog(), domain.SortDurationDesc)

	assert.Equal(t, []string{"Jupiter Odyssey", "Mars Adventure", "Lunar Getaway", "Space Walk Experience"}, names(got))
}

func TestSortPackages_DepartureAsc(t *testing.T) {
	got := service.SortPackages(testCatalog(), domain.SortDepartureAsc)

	assert.Equal(t, []string{"Space Walk Experience", "Lunar Getaway", "Mars Adventure", "Jupiter Odyssey"}, names(got))
}

// TestSortPackages_StableOnTies checks that equal keys keep input order.
func TestSortPackages_StableOnTies(t *testing.T) {
	catalog := []domain.Package{
		pkg("Newest", 100, 5, "X", time.Time{}),
		pkg("Older", 100, 5, "Y", time.Time{}),
	}

	got := service.SortPackages(catalog, domain.SortPriceAsc)

	assert.Equal(t, []string{"Newest", "Older"}, names(got))
}

func TestSortPackages_DoesNotMutateInput(t *testing.T) {
	catalog := testCatalog()
	first := catalog[0].Name

	_ = service.SortPackages(catalog, domain.SortPriceAsc)

	assert.Equal(t, first, catalog[0].Name)
}
