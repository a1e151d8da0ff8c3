package curvature

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Distribution selects the shape of the radial weighting kernel.
type Distribution int

const (
	// FlatDisc weighs all samples inside the ball uniformly.
	FlatDisc Distribution = iota
	// Cone decreases linearly from the center to the rim.
	Cone
	// HalfSphere decreases quadratically from the center to the rim.
	HalfSphere
)

func (d Distribution) String() string {
	switch d {
	case FlatDisc:
		return "flat_disc"
	case Cone:
		return "cone"
	case HalfSphere:
		return "half_sphere"
	default:
		return "unknown"
	}
}

// ParseDistribution maps a distribution token to its Distribution. Recognized
// tokens are "fd" (flat disc), "c" (cone) and "hs" (half sphere); anything
// else returns ErrUnknownDistribution rather than falling back to a default.
func ParseDistribution(token string) (Distribution, error) {
	switch token {
	case "fd":
		return FlatDisc, nil
	case "c":
		return Cone, nil
	case "hs":
		return HalfSphere, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDistribution, token)
	}
}

// weight evaluates the kernel at the normalized distance t = d/radius.
// It is zero for t >= 1 regardless of distribution.
func (d Distribution) weight(t float64) float64 {
	if t >= 1 {
		return 0
	}
	switch d {
	case FlatDisc:
		return 3.0 / (4.0 * math.Pi)
	case Cone:
		return (1 - t) * math.Pi / 12.0
	case HalfSphere:
		return (1 - t*t) / (2.0 * math.Pi)
	}
	return 0
}

// weightDerivative evaluates the kernel derivative at t = d/radius.
// It is zero for t >= 1 regardless of distribution.
func (d Distribution) weightDerivative(t float64) float64 {
	if t >= 1 {
		return 0
	}
	switch d {
	case FlatDisc:
		return 0
	case Cone:
		return -math.Pi / 12.0
	case HalfSphere:
		return -t / math.Pi
	}
	return 0
}

// WeightPair holds a kernel weight and its derivative, both evaluated at the
// same normalized distance.
type WeightPair struct {
	Weight     float64
	Derivative float64
}

// RadialKernel is a weighting function of distance to a fixed center, cut off
// at a fixed radius. Weights depend only on the distance ratio d/radius, not
// on the absolute radius.
type RadialKernel struct {
	center       r3.Vector
	radius       float64
	distribution Distribution
}

// NewRadialKernel builds a kernel centered at center with the given cutoff
// radius and distribution. A radius <= 0 is a configuration error.
func NewRadialKernel(center r3.Vector, radius float64, dist Distribution) (*RadialKernel, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrNonPositiveRadius, radius)
	}
	return &RadialKernel{center: center, radius: radius, distribution: dist}, nil
}

// Center returns the kernel center.
func (k *RadialKernel) Center() r3.Vector { return k.center }

// Radius returns the cutoff radius.
func (k *RadialKernel) Radius() float64 { return k.radius }

// Weight evaluates the kernel at normalized distance t = d/radius.
func (k *RadialKernel) Weight(t float64) float64 { return k.distribution.weight(t) }

// WeightDerivative evaluates the kernel derivative at t = d/radius.
func (k *RadialKernel) WeightDerivative(t float64) float64 {
	return k.distribution.weightDerivative(t)
}

// At evaluates the kernel at a point, returning the zero pair for points at
// distance >= radius from the center.
func (k *RadialKernel) At(p r3.Vector) WeightPair {
	t := p.Sub(k.center).Norm() / k.radius
	if t >= 1 {
		return WeightPair{}
	}
	return WeightPair{
		Weight:     k.distribution.weight(t),
		Derivative: k.distribution.weightDerivative(t),
	}
}

// Evaluate maps each point to its weight pair, preserving order.
func (k *RadialKernel) Evaluate(points []r3.Vector) []WeightPair {
	out := make([]WeightPair, len(points))
	for i, p := range points {
		out[i] = k.At(p)
	}
	return out
}
