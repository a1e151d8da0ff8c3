// Command varifold-cli estimates curvature on an analytic test shape and
// reports error statistics against the shape's known mean curvature.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"

	"go.viam.com/rdk/logging"

	varifold "github.com/meshpipe/varifold"
	"github.com/meshpipe/varifold/curvature"
	"github.com/meshpipe/varifold/internal/runcfg"
	"github.com/meshpipe/varifold/mesh"
)

const validShapes = "sphere, torus, plane"

func main() {
	configPath := flag.String("config", "", "path to run configuration JSON file (optional)")
	shape := flag.String("shape", "sphere", "shape to estimate on: "+validShapes)
	size := flag.Float64("size", 3.0, "sphere radius / torus major radius / plane width")
	minor := flag.Float64("minor", 1.0, "torus tube radius")
	res := flag.Int("res", 48, "bands per parameter direction")
	radius := flag.Float64("radius", 0.5, "kernel cutoff radius")
	distribution := flag.String("distribution", "hs", "kernel distribution token: fd, c, hs")
	method := flag.String("method", "tnfc", "method token: tnfc, dnfc, cnfc, pot, vi")
	kdtree := flag.Bool("kdtree", false, "use the k-d tree neighborhood backend")
	workers := flag.Int("workers", 1, "parallel workers for the per-element loop")
	normalsPath := flag.String("normals", "", "path to JSON per-face normal array (required for cnfc)")
	principal := flag.Bool("principal", false, "also compute principal direction fields")
	flag.Parse()

	logger := logging.NewLogger("varifold-cli")

	cfg, err := buildConfig(*configPath, *radius, *distribution, *method, *kdtree, *workers)
	if err != nil {
		logger.Fatal(err)
	}

	m, expected, err := buildShape(*shape, *size, *minor, *res, cfg.Method)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infof("%s mesh: %d vertices, %d faces", *shape, m.NbVertices(), m.NbFaces())

	var corrected []r3.Vector
	if cfg.Method == curvature.CorrectedNormalFaceCentroid {
		if *normalsPath == "" {
			logger.Fatal("-normals is required for the cnfc method")
		}
		corrected, err = loadNormals(*normalsPath)
		if err != nil {
			logger.Fatal(err)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pipeline, err := varifold.NewPipeline(&cfg, logger)
	if err != nil {
		logger.Fatal(err)
	}

	sink := varifold.NewFieldSet()
	result, err := pipeline.Run(ctx, m, varifold.RunOptions{
		CorrectedNormals:    corrected,
		ExpectedH:           expected,
		Sink:                sink,
		PrincipalDirections: *principal,
	})
	if err != nil {
		logger.Fatal(err)
	}

	logger.Infof("computed H: min=%g max=%g", floats.Min(result.SignedH), floats.Max(result.SignedH))
	if expected != nil {
		logger.Infof("expected H: min=%g max=%g", floats.Min(expected), floats.Max(expected))
	}
	if result.Stats != nil {
		logger.Infof("|He-H|_oo = %g", result.Stats.Max)
		logger.Infof("|He-H|_2  = %g", result.Stats.L2)
	}
	if n := curvature.CountDegenerate(result.ElementErrors); n > 0 {
		logger.Warnf("%d elements were degenerate (radius %g below sample spacing?)", n, cfg.Radius)
	}
}

// buildConfig resolves flags, with an optional config file taking precedence
// over the individual flags.
func buildConfig(path string, radius float64, distToken, methodToken string, kdtree bool, workers int) (curvature.Config, error) {
	if path != "" {
		rc, err := runcfg.Load(path)
		if err != nil {
			return curvature.Config{}, err
		}
		return rc.ToConfig()
	}

	cfg := curvature.DefaultConfig()
	cfg.Radius = radius
	dist, err := curvature.ParseDistribution(distToken)
	if err != nil {
		return curvature.Config{}, err
	}
	cfg.Distribution = dist
	method, err := curvature.ParseMethod(methodToken)
	if err != nil {
		return curvature.Config{}, err
	}
	cfg.Method = method
	if kdtree {
		cfg.Backend = curvature.KDTreeBackend
	}
	cfg.Workers = workers
	return cfg, cfg.Validate()
}

// buildShape constructs the requested analytic mesh and its ground-truth mean
// curvature field, evaluated per face or per vertex to match the method.
func buildShape(shape string, size, minor float64, res int, method curvature.Method) (*mesh.Mesh, []float64, error) {
	var m *mesh.Mesh
	var at func(p r3.Vector) float64

	switch shape {
	case "sphere":
		m = mesh.Sphere(size, r3.Vector{}, res, res)
		at = func(r3.Vector) float64 { return mesh.SphereMeanCurvature(size) }
	case "torus":
		m = mesh.Torus(size, minor, res, res)
		at = func(p r3.Vector) float64 { return mesh.TorusMeanCurvature(size, minor, p) }
	case "plane":
		m = mesh.PlanePatch(size, size, res, res)
		at = func(r3.Vector) float64 { return 0 }
	default:
		return nil, nil, fmt.Errorf("unknown shape %q; valid shapes: %s", shape, validShapes)
	}

	var expected []float64
	if method.PerVertex() {
		expected = make([]float64, m.NbVertices())
		for v := range expected {
			expected[v] = at(m.Position(v))
		}
	} else {
		expected = make([]float64, m.NbFaces())
		for f := range expected {
			expected[f] = at(m.FaceCentroid(f))
		}
	}
	return m, expected, nil
}

// loadNormals reads a JSON array of [x, y, z] triples.
func loadNormals(path string) ([]r3.Vector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading normals file: %w", err)
	}
	var raw [][3]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing normals file: %w", err)
	}
	out := make([]r3.Vector, len(raw))
	for i, n := range raw {
		out[i] = r3.Vector{X: n[0], Y: n[1], Z: n[2]}
	}
	return out, nil
}
