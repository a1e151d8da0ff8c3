// Package varifold estimates local curvature of a discretely sampled oriented
// surface from a radius-bounded, kernel-weighted analysis of how the surface
// normal varies around each sample point, and compares the result against
// analytically known curvature.
package varifold

import (
	"github.com/golang/geo/r3"
)

// FieldSink receives named per-element output fields. Implementations decide
// what to do with them (render, persist, aggregate); the pipeline only pushes.
// Fields are indexed like the sample elements of the chosen method: per face
// for centroid methods, per vertex for the dual method.
type FieldSink interface {
	AddScalarField(name string, values []float64)
	AddVectorField(name string, vectors []r3.Vector)
}

// FieldSet is an in-memory FieldSink, useful for inspection and tests.
type FieldSet struct {
	Scalars map[string][]float64
	Vectors map[string][]r3.Vector
}

// NewFieldSet returns an empty FieldSet.
func NewFieldSet() *FieldSet {
	return &FieldSet{
		Scalars: make(map[string][]float64),
		Vectors: make(map[string][]r3.Vector),
	}
}

// AddScalarField stores a named scalar field, replacing any previous field of
// the same name.
func (fs *FieldSet) AddScalarField(name string, values []float64) {
	fs.Scalars[name] = values
}

// AddVectorField stores a named vector field, replacing any previous field of
// the same name.
func (fs *FieldSet) AddVectorField(name string, vectors []r3.Vector) {
	fs.Vectors[name] = vectors
}
