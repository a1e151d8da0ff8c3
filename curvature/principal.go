package curvature

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// PrincipalDirections estimates, for each element, the pair of tangent
// directions along which neighboring normals deviate most and least. It
// builds the kernel-weighted covariance of the tangential normal deviations
// and takes the eigenvectors of its two largest eigenvalues; both lie close
// to the tangent plane of the element. Elements whose kernel ball contains no
// other sample are recorded in the aligned error slice with zero directions.
func (e *Estimator) PrincipalDirections(samples []SamplePoint) (d1, d2 []r3.Vector, errs []error) {
	query := e.buildQuery(samples)
	d1 = make([]r3.Vector, len(samples))
	d2 = make([]r3.Vector, len(samples))
	errs = make([]error, len(samples))
	for f := range samples {
		var candidates []int
		if query != nil {
			candidates = query.PointsInBall(samples[f].Position, e.cfg.Radius)
		}
		d1[f], d2[f], errs[f] = e.principalAt(samples, f, candidates)
	}
	return d1, d2, errs
}

func (e *Estimator) principalAt(samples []SamplePoint, f int, candidates []int) (r3.Vector, r3.Vector, error) {
	b := samples[f].Position
	nf := samples[f].Normal
	kernel, err := NewRadialKernel(b, e.cfg.Radius, e.cfg.Distribution)
	if err != nil {
		return r3.Vector{}, r3.Vector{}, err
	}

	n := len(samples)
	if candidates != nil {
		n = len(candidates)
	}

	var cov [6]float64 // upper triangle of the symmetric 3x3 accumulator
	var sumWeights float64
	for i := 0; i < n; i++ {
		j := i
		if candidates != nil {
			j = candidates[i]
		}
		if j == f {
			continue
		}
		dist := samples[j].Position.Sub(b).Norm()
		if dist < coincidentEps {
			continue
		}
		w := kernel.Weight(dist / e.cfg.Radius)
		if w <= 0 {
			continue
		}
		dev := project(samples[j].Normal.Sub(nf), nf)
		sumWeights += w
		cov[0] += w * dev.X * dev.X
		cov[1] += w * dev.X * dev.Y
		cov[2] += w * dev.X * dev.Z
		cov[3] += w * dev.Y * dev.Y
		cov[4] += w * dev.Y * dev.Z
		cov[5] += w * dev.Z * dev.Z
	}
	if sumWeights == 0 {
		return r3.Vector{}, r3.Vector{}, &DegenerateNeighborhoodError{Element: f, Radius: e.cfg.Radius}
	}

	covMat := mat.NewSymDense(3, []float64{
		cov[0], cov[1], cov[2],
		cov[1], cov[3], cov[4],
		cov[2], cov[4], cov[5],
	})

	var eigen mat.EigenSym
	if ok := eigen.Factorize(covMat, true); !ok {
		return r3.Vector{}, r3.Vector{}, &DegenerateNeighborhoodError{Element: f, Radius: e.cfg.Radius}
	}
	var vecs mat.Dense
	eigen.VectorsTo(&vecs)

	// Eigenvalues are in ascending order: column 2 is the direction of
	// strongest normal variation, column 1 the weakest tangential one.
	first := r3.Vector{X: vecs.At(0, 2), Y: vecs.At(1, 2), Z: vecs.At(2, 2)}
	second := r3.Vector{X: vecs.At(0, 1), Y: vecs.At(1, 1), Z: vecs.At(2, 1)}
	return first, second, nil
}
