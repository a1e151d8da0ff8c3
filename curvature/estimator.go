package curvature

import (
	"fmt"
	"sync"

	"github.com/golang/geo/r3"
)

// coincidentEps is the distance below which two samples are treated as
// coincident; a coincident neighbor carries no direction and is skipped.
const coincidentEps = 1e-12

// Estimator computes one curvature vector per sample element from how
// neighboring normals deviate from the radial direction, weighted by a radial
// kernel. It is agnostic to which normal source produced the samples.
type Estimator struct {
	cfg Config
}

// NewEstimator creates an Estimator from cfg; a nil cfg uses DefaultConfig.
// Configuration errors are rejected here, before any element is processed.
func NewEstimator(cfg *Config) (*Estimator, error) {
	if cfg == nil {
		c := DefaultConfig()
		cfg = &c
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Estimator{cfg: *cfg}, nil
}

// Radius returns the configured kernel radius.
func (e *Estimator) Radius() float64 { return e.cfg.Radius }

// project returns the component of v orthogonal to n.
func project(v, n r3.Vector) r3.Vector {
	nn := n.Norm2()
	if nn < coincidentEps {
		return v
	}
	return v.Sub(n.Mul(v.Dot(n) / nn))
}

// CurvatureAt computes the curvature vector of element f against the whole
// sample set. Samples outside the kernel radius contribute zero weight, so
// restricting the scan to a ball query yields the identical result.
func (e *Estimator) CurvatureAt(samples []SamplePoint, f int) (r3.Vector, error) {
	return e.curvatureAt(samples, f, nil)
}

// curvatureAt accumulates over candidates (all samples when nil).
func (e *Estimator) curvatureAt(samples []SamplePoint, f int, candidates []int) (r3.Vector, error) {
	b := samples[f].Position
	kernel, err := NewRadialKernel(b, e.cfg.Radius, e.cfg.Distribution)
	if err != nil {
		return r3.Vector{}, err
	}

	n := len(samples)
	if candidates != nil {
		n = len(candidates)
	}

	var sumWeights float64
	var sumVector r3.Vector
	for i := 0; i < n; i++ {
		j := i
		if candidates != nil {
			j = candidates[i]
		}
		if j == f {
			continue
		}
		v := samples[j].Position.Sub(b)
		dist := v.Norm()
		if dist < coincidentEps {
			continue
		}
		w := kernel.Weight(dist / e.cfg.Radius)
		if w <= 0 {
			continue
		}
		sumWeights += w
		sumVector = sumVector.Add(project(v, samples[j].Normal).Mul(w / dist))
	}

	if sumWeights == 0 {
		return r3.Vector{}, &DegenerateNeighborhoodError{Element: f, Radius: e.cfg.Radius}
	}
	return sumVector.Mul(-1.0 / (sumWeights * e.cfg.Radius)), nil
}

// Curvatures computes one curvature vector per sample element. Per-element
// failures (degenerate neighborhoods) are recorded in the aligned error slice
// and never abort the batch; successful elements carry a nil error.
//
// Elements are mutually independent, so with Workers > 1 the loop is split
// across goroutines writing to element-indexed slots. Results are identical
// to the serial loop.
func (e *Estimator) Curvatures(samples []SamplePoint) ([]r3.Vector, []error) {
	query := e.buildQuery(samples)
	out := make([]r3.Vector, len(samples))
	errs := make([]error, len(samples))

	compute := func(f int) {
		var candidates []int
		if query != nil {
			candidates = query.PointsInBall(samples[f].Position, e.cfg.Radius)
		}
		out[f], errs[f] = e.curvatureAt(samples, f, candidates)
	}

	workers := e.cfg.Workers
	if workers <= 1 || len(samples) < 2*workers {
		for f := range samples {
			compute(f)
		}
		return out, errs
	}

	var wg sync.WaitGroup
	chunk := (len(samples) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(samples) {
			hi = len(samples)
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for f := lo; f < hi; f++ {
				compute(f)
			}
		}(lo, hi)
	}
	wg.Wait()
	return out, errs
}

// buildQuery returns the configured neighborhood backend over the sample
// positions, or nil for brute force (the per-element loop already scans all
// samples in that case).
func (e *Estimator) buildQuery(samples []SamplePoint) NeighborhoodQuery {
	if e.cfg.Backend != KDTreeBackend {
		return nil
	}
	positions := make([]r3.Vector, len(samples))
	for i, s := range samples {
		positions[i] = s.Position
	}
	return NewKDTree(positions)
}

// CountDegenerate returns how many entries of errs are non-nil.
func CountDegenerate(errs []error) int {
	n := 0
	for _, err := range errs {
		if err != nil {
			n++
		}
	}
	return n
}

// Describe returns a short human-readable summary of the estimator
// configuration, for log lines.
func (e *Estimator) Describe() string {
	return fmt.Sprintf("radius=%g distribution=%s backend=%s workers=%d",
		e.cfg.Radius, e.cfg.Distribution, e.cfg.Backend, e.cfg.Workers)
}
