// Package domain contains the core data types for the Space Voyages application.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Package represents a bookable space-travel offering.
// It is the only persistent aggregate in the system; the catalog is the full
// set of packages and is always materialized in memory before filtering.
type Package struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Destination    string    `json:"destination"`
	Description    string    `json:"description,omitempty"`
	Duration       int       `json:"duration"` // days
	MinPrice       int64     `json:"minPrice"`
	MaxPrice       int64     `json:"maxPrice"`
	Price          int64     `json:"price"`
	Capacity       int       `json:"capacity"`
	AvailableSeats int       `json:"availableSeats"`
	Amenities      []string  `json:"amenities,omitempty"`
	Gallery        []string  `json:"gallery,omitempty"`
	ImageURL       string    `json:"imageUrl,omitempty"`
	Departure      time.Time `json:"departure"` // informational, never validated against now
	Rating         float64   `json:"rating"`
	Featured       bool      `json:"featured"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RepriceBand returns the inclusive price band the repricing job may draw from.
// ok is false when the package is not repriceable: either bound absent (zero)
// or the band inverted/empty (max <= min). Such packages are skipped, never mutated.
func (p Package) RepriceBand() (lo, hi int64, ok bool) {
	if p.MinPrice <= 0 || p.MaxPrice <= 0 || p.MaxPrice <= p.MinPrice {
		return 0, 0, false
	}
	return p.MinPrice, p.MaxPrice, true
}
