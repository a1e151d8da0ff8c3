package curvature

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"

	"github.com/meshpipe/varifold/mesh"
)

func TestPrincipalDirections_TangentOnSphere(t *testing.T) {
	const radius = 3.0
	m := mesh.Sphere(radius, r3.Vector{}, 32, 32)
	samples := TrivialSamples(m)

	cfg := DefaultConfig()
	cfg.Radius = 0.8
	est, err := NewEstimator(&cfg)
	if err != nil {
		t.Fatalf("NewEstimator: %v", err)
	}

	d1, d2, errs := est.PrincipalDirections(samples)
	if len(d1) != len(samples) || len(d2) != len(samples) || len(errs) != len(samples) {
		t.Fatalf("output lengths %d/%d/%d, want %d", len(d1), len(d2), len(errs), len(samples))
	}

	checked := 0
	for f := range samples {
		if math.Abs(samples[f].Position.Z) > 0.3*radius {
			continue
		}
		if errs[f] != nil {
			t.Fatalf("face %d: %v", f, errs[f])
		}
		n := samples[f].Normal
		if dot := math.Abs(d1[f].Dot(n)); dot > 1e-6 {
			t.Errorf("face %d: first direction not tangent, |d1.n| = %g", f, dot)
		}
		if dot := math.Abs(d2[f].Dot(n)); dot > 1e-6 {
			t.Errorf("face %d: second direction not tangent, |d2.n| = %g", f, dot)
		}
		if l := d1[f].Norm(); math.Abs(l-1) > 1e-9 {
			t.Errorf("face %d: |d1| = %g, want 1", f, l)
		}
		if l := d2[f].Norm(); math.Abs(l-1) > 1e-9 {
			t.Errorf("face %d: |d2| = %g, want 1", f, l)
		}
		if dot := math.Abs(d1[f].Dot(d2[f])); dot > 1e-9 {
			t.Errorf("face %d: directions not orthogonal, |d1.d2| = %g", f, dot)
		}
		checked++
	}
	if checked == 0 {
		t.Fatal("no equatorial faces checked")
	}
}

func TestPrincipalDirections_Degenerate(t *testing.T) {
	samples := gridSamples(1, 1.0)
	cfg := DefaultConfig()
	cfg.Radius = 0.4
	est, err := NewEstimator(&cfg)
	if err != nil {
		t.Fatalf("NewEstimator: %v", err)
	}
	d1, d2, errs := est.PrincipalDirections(samples)
	for i := range samples {
		if errs[i] == nil {
			t.Errorf("element %d: expected degenerate error", i)
		}
		if d1[i] != (r3.Vector{}) || d2[i] != (r3.Vector{}) {
			t.Errorf("element %d: degenerate element carries directions %v, %v", i, d1[i], d2[i])
		}
	}
}
