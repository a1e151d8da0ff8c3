package curvature

import (
	"errors"
	"fmt"
)

var (
	// ErrNonPositiveRadius is returned when a kernel or estimator is configured
	// with a radius <= 0.
	ErrNonPositiveRadius = errors.New("kernel radius must be positive")

	// ErrUnknownDistribution is returned for a kernel distribution token outside
	// the recognized set.
	ErrUnknownDistribution = errors.New("unknown kernel distribution")

	// ErrUnknownMethod is returned for a method token outside the recognized set.
	ErrUnknownMethod = errors.New("unknown estimation method")

	// ErrUnimplementedMethod is returned when a declared method has no estimator
	// defined.
	ErrUnimplementedMethod = errors.New("method has no estimator defined")

	// ErrDegenerateNeighborhood is the sentinel wrapped by
	// DegenerateNeighborhoodError; use errors.Is to test for it.
	ErrDegenerateNeighborhood = errors.New("no neighbor within kernel radius")

	// ErrLengthMismatch is returned when two per-element sequences that must be
	// aligned have different lengths.
	ErrLengthMismatch = errors.New("per-element sequences have different lengths")

	// ErrNilMesh is returned when a nil mesh is passed.
	ErrNilMesh = errors.New("mesh is nil")
)

// DegenerateNeighborhoodError reports an element whose kernel ball contained
// no other sample, making its curvature undefined. It unwraps to
// ErrDegenerateNeighborhood.
type DegenerateNeighborhoodError struct {
	Element int
	Radius  float64
}

func (e *DegenerateNeighborhoodError) Error() string {
	return fmt.Sprintf("element %d: no neighbor within kernel radius %g", e.Element, e.Radius)
}

func (e *DegenerateNeighborhoodError) Unwrap() error { return ErrDegenerateNeighborhood }
