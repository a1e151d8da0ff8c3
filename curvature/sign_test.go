package curvature

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"

	"github.com/meshpipe/varifold/mesh"
)

func TestSignedNorms(t *testing.T) {
	varifolds := []Varifold{
		{PlaneNormal: r3.Vector{Z: 1}, Curvature: r3.Vector{Z: 2}},            // aligned
		{PlaneNormal: r3.Vector{Z: 1}, Curvature: r3.Vector{Z: -0.5}},         // opposed
		{PlaneNormal: r3.Vector{Z: 1}, Curvature: r3.Vector{X: 3}},            // orthogonal
		{PlaneNormal: r3.Vector{Z: 1}, Curvature: r3.Vector{}},                // zero
		{PlaneNormal: r3.Vector{X: 1}, Curvature: r3.Vector{X: -3, Y: 4}},     // opposed, norm 5
	}
	got := SignedNorms(varifolds)
	want := []float64{2, -0.5, 3, 0, -5}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-15 {
			t.Errorf("element %d: signed norm = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestSignConsistencyPass_FixesIsolatedFlip(t *testing.T) {
	// 4x4 face grid; face 5 is interior with neighbors 1, 4, 6, 9.
	m := mesh.PlanePatch(4, 4, 4, 4)
	s := make([]float64, m.NbFaces())
	for i := range s {
		s[i] = 1
	}
	s[5] = -1.5

	once := SignConsistencyPass(s, m.NeighborFaces)
	for i, v := range once {
		if v < 0 {
			t.Errorf("face %d still negative after one pass: %g", i, v)
		}
	}
	if math.Abs(once[5]-1.5) > 1e-15 {
		t.Errorf("flipped face magnitude changed: %g, want 1.5", once[5])
	}

	twice := SignConsistencyPass(once, m.NeighborFaces)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second pass changed an already consistent field (-once +twice):\n%s", diff)
	}
}

func TestSignConsistencyPass_ConsistentFieldUnchanged(t *testing.T) {
	m := mesh.PlanePatch(4, 4, 4, 4)
	s := make([]float64, m.NbFaces())
	for i := range s {
		s[i] = 0.5 + 0.1*float64(i)
	}
	out := SignConsistencyPass(s, m.NeighborFaces)
	if diff := cmp.Diff(s, out); diff != "" {
		t.Errorf("consistent positive field changed (-in +out):\n%s", diff)
	}
}

func TestSignConsistencyPass_PreservesMagnitudes(t *testing.T) {
	m := mesh.PlanePatch(4, 4, 4, 4)
	s := make([]float64, m.NbFaces())
	for i := range s {
		s[i] = float64(i) - 7.5 // mixed signs, distinct magnitudes
	}
	out := SignConsistencyPass(s, m.NeighborFaces)
	for i := range s {
		if math.Abs(math.Abs(out[i])-math.Abs(s[i])) > 1e-15 {
			t.Errorf("face %d: magnitude changed from %g to %g", i, math.Abs(s[i]), math.Abs(out[i]))
		}
	}
}
