package curvature

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"

	"github.com/meshpipe/varifold/mesh"
)

func TestTrivialSamples(t *testing.T) {
	m := mesh.PlanePatch(2, 2, 2, 2)
	samples := TrivialSamples(m)
	if len(samples) != m.NbFaces() {
		t.Fatalf("got %d samples, want %d", len(samples), m.NbFaces())
	}
	wantCentroids := []r3.Vector{
		{X: 0.5, Y: 0.5},
		{X: 1.5, Y: 0.5},
		{X: 0.5, Y: 1.5},
		{X: 1.5, Y: 1.5},
	}
	for f, s := range samples {
		if s.Index != f {
			t.Errorf("sample %d: Index = %d", f, s.Index)
		}
		if s.Position.Sub(wantCentroids[f]).Norm() > 1e-12 {
			t.Errorf("sample %d: Position = %v, want %v", f, s.Position, wantCentroids[f])
		}
		if s.Normal.Sub(r3.Vector{Z: 1}).Norm() > 1e-12 {
			t.Errorf("sample %d: Normal = %v, want +z", f, s.Normal)
		}
	}
}

func TestDualSamples(t *testing.T) {
	m := mesh.PlanePatch(2, 2, 2, 2)
	samples := DualSamples(m)
	if len(samples) != m.NbVertices() {
		t.Fatalf("got %d samples, want %d", len(samples), m.NbVertices())
	}
	for v, s := range samples {
		if s.Index != v {
			t.Errorf("sample %d: Index = %d", v, s.Index)
		}
		if s.Position != m.Position(v) {
			t.Errorf("sample %d: Position = %v, want %v", v, s.Position, m.Position(v))
		}
		if s.Normal.Sub(r3.Vector{Z: 1}).Norm() > 1e-12 {
			t.Errorf("sample %d: Normal = %v, want +z", v, s.Normal)
		}
	}
}

func TestCorrectedSamples(t *testing.T) {
	m := mesh.PlanePatch(2, 2, 2, 2)
	normals := make([]r3.Vector, m.NbFaces())
	for i := range normals {
		s := 1 / math.Sqrt(2)
		normals[i] = r3.Vector{X: s, Z: s}
	}
	samples, err := CorrectedSamples(m, normals)
	if err != nil {
		t.Fatalf("CorrectedSamples: %v", err)
	}
	for f, s := range samples {
		if s.Normal != normals[f] {
			t.Errorf("sample %d: Normal = %v, want %v", f, s.Normal, normals[f])
		}
		if s.Position != m.FaceCentroid(f) {
			t.Errorf("sample %d: Position = %v, want centroid %v", f, s.Position, m.FaceCentroid(f))
		}
	}

	if _, err := CorrectedSamples(m, normals[:2]); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("short normal array: expected ErrLengthMismatch, got %v", err)
	}
}

func TestSamplesFor(t *testing.T) {
	m := mesh.PlanePatch(2, 2, 2, 2)

	if _, err := SamplesFor(TrivialNormalFaceCentroid, nil, nil); !errors.Is(err, ErrNilMesh) {
		t.Errorf("nil mesh: expected ErrNilMesh, got %v", err)
	}
	for _, method := range []Method{ProbabilisticOfTrivials, VertexInterpolation} {
		if _, err := SamplesFor(method, m, nil); !errors.Is(err, ErrUnimplementedMethod) {
			t.Errorf("%s: expected ErrUnimplementedMethod, got %v", method, err)
		}
	}

	samples, err := SamplesFor(DualNormalFaceCentroid, m, nil)
	if err != nil {
		t.Fatalf("SamplesFor(dnfc): %v", err)
	}
	if len(samples) != m.NbVertices() {
		t.Errorf("dnfc produced %d samples, want %d per vertex", len(samples), m.NbVertices())
	}

	samples, err = SamplesFor(TrivialNormalFaceCentroid, m, nil)
	if err != nil {
		t.Fatalf("SamplesFor(tnfc): %v", err)
	}
	if len(samples) != m.NbFaces() {
		t.Errorf("tnfc produced %d samples, want %d per face", len(samples), m.NbFaces())
	}
}

func TestParseMethod(t *testing.T) {
	cases := []struct {
		token string
		want  Method
	}{
		{"tnfc", TrivialNormalFaceCentroid},
		{"dnfc", DualNormalFaceCentroid},
		{"cnfc", CorrectedNormalFaceCentroid},
		{"pot", ProbabilisticOfTrivials},
		{"vi", VertexInterpolation},
	}
	for _, tc := range cases {
		got, err := ParseMethod(tc.token)
		if err != nil {
			t.Errorf("ParseMethod(%q): %v", tc.token, err)
		}
		if got != tc.want {
			t.Errorf("ParseMethod(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
	for _, token := range []string{"", "trivial", "TNFC", "x"} {
		if _, err := ParseMethod(token); !errors.Is(err, ErrUnknownMethod) {
			t.Errorf("ParseMethod(%q): expected ErrUnknownMethod, got %v", token, err)
		}
	}
}

func TestMethodPerVertex(t *testing.T) {
	if !DualNormalFaceCentroid.PerVertex() {
		t.Error("dnfc should be per vertex")
	}
	for _, method := range []Method{TrivialNormalFaceCentroid, CorrectedNormalFaceCentroid} {
		if method.PerVertex() {
			t.Errorf("%s should be per face", method)
		}
	}
}
