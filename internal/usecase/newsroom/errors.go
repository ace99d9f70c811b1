// Package newsroom provides use cases for driving the publishing registry.
// It implements the operations a harness calls to create authors and
// magazines and to publish articles, with structured logging and metric
// recording around the domain model.
package newsroom

import "errors"

// Sentinel errors for newsroom use case operations.
var (
	// ErrNilAuthor indicates that a nil author was passed to an operation
	// that requires one.
	ErrNilAuthor = errors.New("author is required")

	// ErrNilMagazine indicates that a nil magazine was passed to an
	// operation that requires one.
	ErrNilMagazine = errors.New("magazine is required")
)
