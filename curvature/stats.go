package curvature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrorStats summarizes the elementwise absolute difference between an
// estimated scalar field and its expected counterpart. Max is the L-infinity
// error; L2 follows the root-mean-square convention.
type ErrorStats struct {
	Min float64
	Max float64
	L2  float64
}

// AbsoluteDifference returns the elementwise |estimated - expected|.
func AbsoluteDifference(estimated, expected []float64) ([]float64, error) {
	if len(estimated) != len(expected) {
		return nil, fmt.Errorf("%w: %d estimated, %d expected", ErrLengthMismatch, len(estimated), len(expected))
	}
	out := make([]float64, len(estimated))
	for i := range estimated {
		out[i] = math.Abs(estimated[i] - expected[i])
	}
	return out, nil
}

// CompareScalars computes the error summary between two equal-length scalar
// fields. Inputs are not modified.
func CompareScalars(estimated, expected []float64) (ErrorStats, error) {
	diff, err := AbsoluteDifference(estimated, expected)
	if err != nil {
		return ErrorStats{}, err
	}
	if len(diff) == 0 {
		return ErrorStats{}, nil
	}
	sq := make([]float64, len(diff))
	for i, d := range diff {
		sq[i] = d * d
	}
	return ErrorStats{
		Min: floats.Min(diff),
		Max: floats.Max(diff),
		L2:  math.Sqrt(stat.Mean(sq, nil)),
	}, nil
}
