package domain

// SortKey names one of the supported catalog orderings.
// The zero value is not valid; use NewFilterSpec or SortPriceAsc explicitly.
type SortKey string

const (
	SortPriceAsc      SortKey = "price-asc"
	SortPriceDesc     SortKey = "price-desc"
	SortDurationAsc   SortKey = "duration-asc"
	SortDurationDesc  SortKey = "duration-desc"
	SortDepartureAsc  SortKey = "departure-asc"
	SortDepartureDesc SortKey = "departure-desc"
)

// FilterSpec carries catalog filter and sort criteria from the HTTP layer to
// the query service. It is client-constructed, ephemeral, and never persisted.
// Nil pointer fields mean "constraint not set"; an empty Destination means the
// same for the substring match.
type FilterSpec struct {
	// Destination is matched case-insensitively as a substring of the
	// package's destination.
	Destination string
	// MaxDuration is an upper bound in days, not an exact match.
	MaxDuration *int
	// MinPrice and MaxPrice bound the current price, inclusive.
	MinPrice *int64
	MaxPrice *int64
	// Sort selects the result ordering. Defaults to SortPriceAsc.
	Sort SortKey
}

// NewFilterSpec builds a FilterSpec from raw optional values, normalizing
// out-of-range inputs. Non-positive numeric constraints are treated as unset
// (the browser sends empty strings for untouched filter inputs, which parse
// to zero), and an unrecognized sort key falls back to price ascending.
func NewFilterSpec(destination string, maxDuration *int, minPrice, maxPrice *int64, sort SortKey) FilterSpec {
	spec := FilterSpec{Destination: destination, Sort: SortPriceAsc}
	if maxDuration != nil && *maxDuration > 0 {
		spec.MaxDuration = maxDuration
	}
	if minPrice != nil && *minPrice > 0 {
		spec.MinPrice = minPrice
	}
	if maxPrice != nil && *maxPrice > 0 {
		spec.MaxPrice = maxPrice
	}
	switch sort {
	case SortPriceAsc, SortPriceDesc, SortDurationAsc, SortDurationDesc, SortDepartureAsc, SortDepartureDesc:
		spec.Sort = sort
	}
	return spec
}
