package curvature

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/meshpipe/varifold/mesh"
)

// SamplePoint is one (position, normal) sample produced by a normal source.
// Index identifies the owning face or vertex in the mesh's own indexing, so
// per-element outputs can be attached back to the mesh.
type SamplePoint struct {
	Position r3.Vector
	Normal   r3.Vector
	Index    int
}

// Method selects which normal source feeds the estimator.
type Method int

const (
	// TrivialNormalFaceCentroid samples one facet normal per face centroid.
	TrivialNormalFaceCentroid Method = iota
	// DualNormalFaceCentroid samples one averaged normal per vertex.
	DualNormalFaceCentroid
	// CorrectedNormalFaceCentroid samples one externally estimated normal per
	// face centroid.
	CorrectedNormalFaceCentroid
	// ProbabilisticOfTrivials is declared but has no estimator defined;
	// selecting it fails with ErrUnimplementedMethod.
	ProbabilisticOfTrivials
	// VertexInterpolation is declared but has no estimator defined; selecting
	// it fails with ErrUnimplementedMethod.
	VertexInterpolation
)

func (m Method) String() string {
	switch m {
	case TrivialNormalFaceCentroid:
		return "trivial_normal_face_centroid"
	case DualNormalFaceCentroid:
		return "dual_normal_face_centroid"
	case CorrectedNormalFaceCentroid:
		return "corrected_normal_face_centroid"
	case ProbabilisticOfTrivials:
		return "probabilistic_of_trivials"
	case VertexInterpolation:
		return "vertex_interpolation"
	default:
		return "unknown"
	}
}

// PerVertex reports whether the method samples one element per vertex rather
// than one per face.
func (m Method) PerVertex() bool { return m == DualNormalFaceCentroid }

// ParseMethod maps a method token to its Method. Recognized tokens are
// "tnfc", "dnfc", "cnfc", "pot" and "vi"; anything else returns
// ErrUnknownMethod rather than falling back to a default.
func ParseMethod(token string) (Method, error) {
	switch token {
	case "tnfc":
		return TrivialNormalFaceCentroid, nil
	case "dnfc":
		return DualNormalFaceCentroid, nil
	case "cnfc":
		return CorrectedNormalFaceCentroid, nil
	case "pot":
		return ProbabilisticOfTrivials, nil
	case "vi":
		return VertexInterpolation, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, token)
	}
}

// TrivialSamples returns one sample per mesh face: the face centroid paired
// with the facet normal.
func TrivialSamples(m *mesh.Mesh) []SamplePoint {
	samples := make([]SamplePoint, m.NbFaces())
	for f := 0; f < m.NbFaces(); f++ {
		samples[f] = SamplePoint{
			Position: m.FaceCentroid(f),
			Normal:   m.FaceNormal(f),
			Index:    f,
		}
	}
	return samples
}

// DualSamples returns one sample per mesh vertex: the vertex position paired
// with the area-weighted average of incident facet normals.
func DualSamples(m *mesh.Mesh) []SamplePoint {
	samples := make([]SamplePoint, m.NbVertices())
	for v := 0; v < m.NbVertices(); v++ {
		samples[v] = SamplePoint{
			Position: m.Position(v),
			Normal:   m.VertexNormal(v),
			Index:    v,
		}
	}
	return samples
}

// CorrectedSamples returns one sample per mesh face: the face centroid paired
// with an externally supplied normal estimate, indexed like the faces.
func CorrectedSamples(m *mesh.Mesh, normals []r3.Vector) ([]SamplePoint, error) {
	if len(normals) != m.NbFaces() {
		return nil, fmt.Errorf("%w: %d normals for %d faces", ErrLengthMismatch, len(normals), m.NbFaces())
	}
	samples := make([]SamplePoint, m.NbFaces())
	for f := 0; f < m.NbFaces(); f++ {
		samples[f] = SamplePoint{
			Position: m.FaceCentroid(f),
			Normal:   normals[f],
			Index:    f,
		}
	}
	return samples, nil
}

// SamplesFor dispatches to the normal source selected by method. corrected is
// only consulted for CorrectedNormalFaceCentroid. Declared-but-undefined
// methods fail with ErrUnimplementedMethod.
func SamplesFor(method Method, m *mesh.Mesh, corrected []r3.Vector) ([]SamplePoint, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	switch method {
	case TrivialNormalFaceCentroid:
		return TrivialSamples(m), nil
	case DualNormalFaceCentroid:
		return DualSamples(m), nil
	case CorrectedNormalFaceCentroid:
		return CorrectedSamples(m, corrected)
	case ProbabilisticOfTrivials, VertexInterpolation:
		return nil, fmt.Errorf("%w: %s", ErrUnimplementedMethod, method)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}
}
