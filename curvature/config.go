package curvature

import "fmt"

// QueryBackend selects the NeighborhoodQuery implementation used by batch
// estimation.
type QueryBackend int

const (
	// BruteForceBackend scans all samples per query.
	BruteForceBackend QueryBackend = iota
	// KDTreeBackend queries a k-d tree built once per sample set.
	KDTreeBackend
)

func (b QueryBackend) String() string {
	switch b {
	case BruteForceBackend:
		return "brute_force"
	case KDTreeBackend:
		return "kdtree"
	default:
		return "unknown"
	}
}

// Config holds the configuration of a curvature estimation run.
type Config struct {
	Radius       float64      // Kernel cutoff radius; must be > 0
	Distribution Distribution // Radial kernel shape
	Method       Method       // Normal source selection
	Backend      QueryBackend // Neighborhood query backend
	Workers      int          // Parallel workers for the per-element loop; <= 1 runs serially
}

// DefaultConfig returns a Config with sensible defaults: a half-sphere kernel
// of radius 0.5 over trivial face-centroid normals, brute-force neighbor
// queries, serial execution.
func DefaultConfig() Config {
	return Config{
		Radius:       0.5,
		Distribution: HalfSphere,
		Method:       TrivialNormalFaceCentroid,
		Backend:      BruteForceBackend,
		Workers:      1,
	}
}

// Validate rejects configurations that cannot produce a well-defined run.
func (c Config) Validate() error {
	if c.Radius <= 0 {
		return fmt.Errorf("%w: %g", ErrNonPositiveRadius, c.Radius)
	}
	if c.Distribution < FlatDisc || c.Distribution > HalfSphere {
		return fmt.Errorf("%w: %d", ErrUnknownDistribution, int(c.Distribution))
	}
	if c.Method < TrivialNormalFaceCentroid || c.Method > VertexInterpolation {
		return fmt.Errorf("%w: %d", ErrUnknownMethod, int(c.Method))
	}
	if c.Backend < BruteForceBackend || c.Backend > KDTreeBackend {
		return fmt.Errorf("unknown query backend: %d", int(c.Backend))
	}
	return nil
}
