package mesh

import (
	"math"

	"github.com/golang/geo/r3"
)

// Sphere builds a latitude/longitude sphere of the given radius around
// center. Faces are quads except for the triangle fans at the poles, and are
// oriented with outward normals. latBands >= 2, lngBands >= 3.
func Sphere(radius float64, center r3.Vector, latBands, lngBands int) *Mesh {
	vertices := make([]r3.Vector, 0, 2+(latBands-1)*lngBands)
	vertices = append(vertices, center.Add(r3.Vector{Z: radius})) // north pole
	for i := 1; i < latBands; i++ {
		theta := math.Pi * float64(i) / float64(latBands)
		for j := 0; j < lngBands; j++ {
			phi := 2 * math.Pi * float64(j) / float64(lngBands)
			vertices = append(vertices, center.Add(r3.Vector{
				X: radius * math.Sin(theta) * math.Cos(phi),
				Y: radius * math.Sin(theta) * math.Sin(phi),
				Z: radius * math.Cos(theta),
			}))
		}
	}
	south := len(vertices)
	vertices = append(vertices, center.Add(r3.Vector{Z: -radius}))

	ring := func(i, j int) int { return 1 + (i-1)*lngBands + j%lngBands }

	var faces [][]int
	for j := 0; j < lngBands; j++ {
		faces = append(faces, []int{0, ring(1, j), ring(1, j+1)})
	}
	for i := 1; i < latBands-1; i++ {
		for j := 0; j < lngBands; j++ {
			faces = append(faces, []int{ring(i, j), ring(i+1, j), ring(i+1, j+1), ring(i, j+1)})
		}
	}
	for j := 0; j < lngBands; j++ {
		faces = append(faces, []int{south, ring(latBands-1, j+1), ring(latBands-1, j)})
	}

	m, err := New(vertices, faces)
	if err != nil {
		panic("mesh: sphere construction: " + err.Error())
	}
	return m
}

// Torus builds a torus of major radius major and tube radius minor, centered
// at the origin with the z axis as its axis of revolution. majorBands and
// minorBands are the face counts around the main ring and the tube. Faces are
// quads oriented with outward normals.
func Torus(major, minor float64, majorBands, minorBands int) *Mesh {
	vertices := make([]r3.Vector, 0, majorBands*minorBands)
	for i := 0; i < minorBands; i++ {
		theta := 2 * math.Pi * float64(i) / float64(minorBands)
		for j := 0; j < majorBands; j++ {
			phi := 2 * math.Pi * float64(j) / float64(majorBands)
			rad := major + minor*math.Cos(theta)
			vertices = append(vertices, r3.Vector{
				X: rad * math.Cos(phi),
				Y: rad * math.Sin(phi),
				Z: minor * math.Sin(theta),
			})
		}
	}

	at := func(i, j int) int { return (i%minorBands)*majorBands + j%majorBands }

	var faces [][]int
	for i := 0; i < minorBands; i++ {
		for j := 0; j < majorBands; j++ {
			faces = append(faces, []int{at(i, j), at(i, j+1), at(i+1, j+1), at(i+1, j)})
		}
	}

	m, err := New(vertices, faces)
	if err != nil {
		panic("mesh: torus construction: " + err.Error())
	}
	return m
}

// PlanePatch builds a flat rectangular patch in the z=0 plane spanning
// [0,width] x [0,height], subdivided into nu x nv quad faces oriented with
// +z normals.
func PlanePatch(width, height float64, nu, nv int) *Mesh {
	vertices := make([]r3.Vector, 0, (nu+1)*(nv+1))
	for j := 0; j <= nv; j++ {
		for i := 0; i <= nu; i++ {
			vertices = append(vertices, r3.Vector{
				X: width * float64(i) / float64(nu),
				Y: height * float64(j) / float64(nv),
			})
		}
	}

	at := func(i, j int) int { return j*(nu+1) + i }

	var faces [][]int
	for j := 0; j < nv; j++ {
		for i := 0; i < nu; i++ {
			faces = append(faces, []int{at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1)})
		}
	}

	m, err := New(vertices, faces)
	if err != nil {
		panic("mesh: plane patch construction: " + err.Error())
	}
	return m
}

// SphereMeanCurvature returns the mean curvature of a sphere of the given
// radius (constant 1/radius with outward normals).
func SphereMeanCurvature(radius float64) float64 { return 1.0 / radius }

// TorusMeanCurvature returns the mean curvature of the torus of major radius
// major and tube radius minor at a point p on (or near) its surface, with
// outward normals. For a torus the value depends only on the tube angle, so p
// is projected onto the tube circle first.
func TorusMeanCurvature(major, minor float64, p r3.Vector) float64 {
	radXY := math.Hypot(p.X, p.Y)
	cosTheta := (radXY - major) / minor
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}
	return (major + 2*minor*cosTheta) / (2 * minor * (major + minor*cosTheta))
}
