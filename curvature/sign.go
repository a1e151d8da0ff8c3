package curvature

import "math"

// SignedNorms derives the signed scalar curvature field from varifolds:
// s[i] = sign(planeNormal . curvature) * |curvature|.
func SignedNorms(varifolds []Varifold) []float64 {
	out := make([]float64, len(varifolds))
	for i, vf := range varifolds {
		norm := vf.Curvature.Norm()
		if vf.PlaneNormal.Dot(vf.Curvature) < 0 {
			norm = -norm
		}
		out[i] = norm
	}
	return out
}

// SignConsistencyPass re-signs a scalar field by majority vote over each
// element's geometric 1-ring, given by neighbors (which must exclude the
// element itself). The output magnitude equals the input magnitude; only the
// sign changes, and only where the signed neighbor sum is negative. Neighbors
// are read from the frozen input snapshot, never from partially updated
// output, so the result does not depend on sweep order. A field already
// consistent with its own majority vote is left unchanged.
func SignConsistencyPass(s []float64, neighbors func(i int) []int) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		var sum float64
		for _, j := range neighbors(i) {
			sum += s[j]
		}
		if sum >= 0 {
			out[i] = math.Abs(v)
		} else {
			out[i] = -math.Abs(v)
		}
	}
	return out
}
