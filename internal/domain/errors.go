package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing preference, non-positive seat count).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a booking asks for more seats than remain.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrUpstream is returned when the package store or the external
// text-generation API fails. Handlers must map this to HTTP 500 with a
// generic user-safe message; the underlying detail is logged server-side only.
var ErrUpstream = errors.New("upstream unavailable")
