// Package mesh provides an immutable indexed face set with the normal,
// centroid and adjacency queries needed by curvature estimation.
package mesh

import (
	"fmt"
	"sort"

	"github.com/golang/geo/r3"
)

// Mesh is an oriented surface stored as vertex positions plus faces given as
// ordered vertex index loops. Faces may have three or more vertices (digital
// surfaces produce quads). A Mesh is immutable after construction; all derived
// quantities are computed once in New.
type Mesh struct {
	vertices []r3.Vector
	faces    [][]int

	centroids     []r3.Vector
	faceNormals   []r3.Vector
	vertexNormals []r3.Vector
	facesOfVertex [][]int
	neighborFaces [][]int
	vertexRing    [][]int
}

// New builds a mesh from vertex positions and face index loops.
// Faces must have at least 3 vertices and reference valid vertex indices.
func New(vertices []r3.Vector, faces [][]int) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("mesh: no vertices")
	}
	for f, face := range faces {
		if len(face) < 3 {
			return nil, fmt.Errorf("mesh: face %d has %d vertices, need at least 3", f, len(face))
		}
		for _, v := range face {
			if v < 0 || v >= len(vertices) {
				return nil, fmt.Errorf("mesh: face %d references vertex %d, have %d vertices", f, v, len(vertices))
			}
		}
	}

	m := &Mesh{
		vertices: append([]r3.Vector(nil), vertices...),
		faces:    make([][]int, len(faces)),
	}
	for f, face := range faces {
		m.faces[f] = append([]int(nil), face...)
	}

	m.computeCentroids()
	m.computeFaceNormals()
	m.computeVertexNormals()
	m.computeAdjacency()
	return m, nil
}

// NbVertices returns the number of vertices.
func (m *Mesh) NbVertices() int { return len(m.vertices) }

// NbFaces returns the number of faces.
func (m *Mesh) NbFaces() int { return len(m.faces) }

// Position returns the position of vertex v.
func (m *Mesh) Position(v int) r3.Vector { return m.vertices[v] }

// Positions returns the vertex positions. The returned slice is shared and
// must not be modified.
func (m *Mesh) Positions() []r3.Vector { return m.vertices }

// IncidentVertices returns the ordered vertex loop of face f. The returned
// slice is shared and must not be modified.
func (m *Mesh) IncidentVertices(f int) []int { return m.faces[f] }

// FaceCentroid returns the centroid of face f.
func (m *Mesh) FaceCentroid(f int) r3.Vector { return m.centroids[f] }

// FaceCentroids returns per-face centroids, indexed like the faces.
func (m *Mesh) FaceCentroids() []r3.Vector { return m.centroids }

// FaceNormal returns the unit facet normal of face f, computed from the
// vertex positions. Degenerate faces yield a zero vector.
func (m *Mesh) FaceNormal(f int) r3.Vector { return m.faceNormals[f] }

// VertexNormal returns the area-weighted average of the facet normals of the
// faces incident to vertex v, normalized.
func (m *Mesh) VertexNormal(v int) r3.Vector { return m.vertexNormals[v] }

// FacesAroundVertex returns the faces incident to vertex v.
func (m *Mesh) FacesAroundVertex(v int) []int { return m.facesOfVertex[v] }

// NeighborFaces returns the faces sharing an edge with face f, excluding f.
func (m *Mesh) NeighborFaces(f int) []int { return m.neighborFaces[f] }

// VertexNeighbors returns the vertices sharing an edge with vertex v,
// excluding v.
func (m *Mesh) VertexNeighbors(v int) []int { return m.vertexRing[v] }

func (m *Mesh) computeCentroids() {
	m.centroids = make([]r3.Vector, len(m.faces))
	for f, face := range m.faces {
		var c r3.Vector
		for _, v := range face {
			c = c.Add(m.vertices[v])
		}
		m.centroids[f] = c.Mul(1.0 / float64(len(face)))
	}
}

// newellVector returns the (unnormalized) Newell normal of face f. Its norm
// is twice the face area for planar faces, which makes it the area weight for
// vertex normal averaging.
func (m *Mesh) newellVector(f int) r3.Vector {
	face := m.faces[f]
	var n r3.Vector
	for i, vi := range face {
		vj := face[(i+1)%len(face)]
		a := m.vertices[vi]
		b := m.vertices[vj]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n
}

func (m *Mesh) computeFaceNormals() {
	m.faceNormals = make([]r3.Vector, len(m.faces))
	for f := range m.faces {
		n := m.newellVector(f)
		if norm := n.Norm(); norm > 1e-12 {
			m.faceNormals[f] = n.Mul(1.0 / norm)
		}
	}
}

func (m *Mesh) computeVertexNormals() {
	acc := make([]r3.Vector, len(m.vertices))
	for f, face := range m.faces {
		n := m.newellVector(f)
		for _, v := range face {
			acc[v] = acc[v].Add(n)
		}
	}
	m.vertexNormals = make([]r3.Vector, len(m.vertices))
	for v, n := range acc {
		if norm := n.Norm(); norm > 1e-12 {
			m.vertexNormals[v] = n.Mul(1.0 / norm)
		}
	}
}

type edgeKey struct{ a, b int }

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

func (m *Mesh) computeAdjacency() {
	m.facesOfVertex = make([][]int, len(m.vertices))
	edgeFaces := make(map[edgeKey][]int)
	for f, face := range m.faces {
		for i, vi := range face {
			m.facesOfVertex[vi] = append(m.facesOfVertex[vi], f)
			vj := face[(i+1)%len(face)]
			k := makeEdgeKey(vi, vj)
			edgeFaces[k] = append(edgeFaces[k], f)
		}
	}

	m.neighborFaces = make([][]int, len(m.faces))
	for _, fs := range edgeFaces {
		for _, f := range fs {
			for _, g := range fs {
				if g != f && !containsInt(m.neighborFaces[f], g) {
					m.neighborFaces[f] = append(m.neighborFaces[f], g)
				}
			}
		}
	}

	m.vertexRing = make([][]int, len(m.vertices))
	for k := range edgeFaces {
		if !containsInt(m.vertexRing[k.a], k.b) {
			m.vertexRing[k.a] = append(m.vertexRing[k.a], k.b)
		}
		if !containsInt(m.vertexRing[k.b], k.a) {
			m.vertexRing[k.b] = append(m.vertexRing[k.b], k.a)
		}
	}

	// Map iteration order is randomized; sort so adjacency is deterministic.
	for f := range m.neighborFaces {
		sort.Ints(m.neighborFaces[f])
	}
	for v := range m.vertexRing {
		sort.Ints(m.vertexRing[v])
	}
}

func containsInt(s []int, x int) bool {
	for _, v := range s {
		if v == x {
			return true
		}
	}
	return false
}
