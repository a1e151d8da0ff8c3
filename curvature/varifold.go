package curvature

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Varifold is the per-element output record: the sample position, the normal
// that was used for it, and the estimated curvature vector. One Varifold per
// sample element, in sample order.
type Varifold struct {
	Position    r3.Vector
	PlaneNormal r3.Vector
	Curvature   r3.Vector
}

// Assemble zips samples with their per-element curvature vectors. Elements
// whose estimation failed carry a zero curvature vector; the caller keeps the
// aligned error slice to tell them apart. Length and ordering mirror the
// sample sequence.
func Assemble(samples []SamplePoint, curvatures []r3.Vector) ([]Varifold, error) {
	if len(samples) != len(curvatures) {
		return nil, fmt.Errorf("%w: %d samples, %d curvature vectors", ErrLengthMismatch, len(samples), len(curvatures))
	}
	out := make([]Varifold, len(samples))
	for i, s := range samples {
		out[i] = Varifold{
			Position:    s.Position,
			PlaneNormal: s.Normal,
			Curvature:   curvatures[i],
		}
	}
	return out, nil
}
