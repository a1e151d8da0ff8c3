package curvature

import (
	"sort"

	"github.com/golang/geo/r3"

	"go.viam.com/rdk/pointcloud"
)

// NeighborhoodQuery answers radius-ball queries over a fixed, ordered point
// sequence. Implementations return the indices of all points strictly inside
// the ball; the order is ascending by index so that identical inputs yield
// identical outputs across backends.
type NeighborhoodQuery interface {
	PointsInBall(center r3.Vector, radius float64) []int
}

// BruteForce is the linear-scan NeighborhoodQuery backend. O(n) per query.
type BruteForce struct {
	points []r3.Vector
}

// NewBruteForce builds a brute-force query over the given points. The slice
// is retained and must not be modified afterwards.
func NewBruteForce(points []r3.Vector) *BruteForce {
	return &BruteForce{points: points}
}

// PointsInBall returns the indices of all points strictly inside the ball.
func (q *BruteForce) PointsInBall(center r3.Vector, radius float64) []int {
	rSq := radius * radius
	var out []int
	for i, p := range q.points {
		d := p.Sub(center)
		if d.Norm2() < rSq {
			out = append(out, i)
		}
	}
	return out
}

// KDTree is the spatial-index NeighborhoodQuery backend, built on a k-d tree
// over the point coordinates. O(log n + k) per query.
type KDTree struct {
	kd *pointcloud.KDTree
	// The tree stores one node per distinct position; indices maps a position
	// back to every original index holding it, so duplicates behave exactly
	// like the brute-force scan.
	indices map[r3.Vector][]int
}

// NewKDTree builds a k-d tree query over the given points.
func NewKDTree(points []r3.Vector) *KDTree {
	cloud := pointcloud.New()
	indices := make(map[r3.Vector][]int, len(points))
	for i, p := range points {
		//nolint:errcheck
		cloud.Set(p, nil)
		indices[p] = append(indices[p], i)
	}
	return &KDTree{
		kd:      pointcloud.ToKDTree(cloud),
		indices: indices,
	}
}

// PointsInBall returns the indices of all points strictly inside the ball.
func (q *KDTree) PointsInBall(center r3.Vector, radius float64) []int {
	neighbors := q.kd.RadiusNearestNeighbors(center, radius, true)
	var out []int
	for _, nb := range neighbors {
		if nb.P.Sub(center).Norm() >= radius {
			continue
		}
		out = append(out, q.indices[nb.P]...)
	}
	sort.Ints(out)
	return out
}
