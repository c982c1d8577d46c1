// Package repository provides filter-based access to the four document
// collections backing the marketplace (users, classes, selected, payments).
// Sentinel errors defined here let handlers distinguish failure scenarios
// without inspecting driver internals.
package repository

import "errors"

// ErrNotFound is returned by FindOne-style lookups when no document matches
// the filter. Most handlers translate a miss into an empty 200 response
// rather than a 404; the admin middleware translates it into a 403.
var ErrNotFound = errors.New("document not found")

// ErrInvalidID is returned when a path parameter is not a valid document id.
var ErrInvalidID = errors.New("invalid document id")
