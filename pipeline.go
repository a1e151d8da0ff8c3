package varifold

import (
	"context"
	"fmt"

	"github.com/golang/geo/r3"

	"go.viam.com/rdk/logging"

	"github.com/meshpipe/varifold/curvature"
	"github.com/meshpipe/varifold/mesh"
)

// RunOptions carries the optional inputs and outputs of a pipeline run.
type RunOptions struct {
	// CorrectedNormals is the externally estimated per-face normal array
	// required by the corrected method; ignored by the other methods.
	CorrectedNormals []r3.Vector
	// ExpectedH, when non-nil, is the ground-truth scalar curvature field the
	// signed output is compared against.
	ExpectedH []float64
	// Sink, when non-nil, receives the named output fields.
	Sink FieldSink
	// PrincipalDirections additionally computes per-element principal
	// direction fields for the sink.
	PrincipalDirections bool
}

// Result is the output of a pipeline run.
type Result struct {
	// Varifolds holds one (position, normal, curvature vector) record per
	// sample element, in the mesh's own face or vertex order.
	Varifolds []curvature.Varifold
	// SignedH is the signed scalar curvature after the sign-consistency pass,
	// aligned with Varifolds.
	SignedH []float64
	// ElementErrors is aligned with Varifolds; a non-nil entry marks an
	// element whose neighborhood was degenerate.
	ElementErrors []error
	// Stats compares SignedH against the expected field; nil when no ground
	// truth was supplied.
	Stats *curvature.ErrorStats
}

// Pipeline runs the full estimation chain: normal source, per-element
// curvature vectors, varifold assembly, sign-consistency pass, and optional
// error statistics.
type Pipeline struct {
	cfg    curvature.Config
	logger logging.Logger
}

// NewPipeline creates a Pipeline with the given configuration; a nil cfg uses
// curvature.DefaultConfig. Configuration errors are fatal here, before any
// mesh is touched.
func NewPipeline(cfg *curvature.Config, logger logging.Logger) (*Pipeline, error) {
	if cfg == nil {
		c := curvature.DefaultConfig()
		cfg = &c
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewLogger("varifold")
	}
	return &Pipeline{cfg: *cfg, logger: logger}, nil
}

// Run estimates curvature over m according to the pipeline configuration.
// Per-element degeneracies are reported in the result, not as a run failure;
// configuration and input errors abort the run with no partial output.
func (p *Pipeline) Run(ctx context.Context, m *mesh.Mesh, opts RunOptions) (*Result, error) {
	if m == nil {
		return nil, curvature.ErrNilMesh
	}

	samples, err := curvature.SamplesFor(p.cfg.Method, m, opts.CorrectedNormals)
	if err != nil {
		return nil, fmt.Errorf("normal source %s: %w", p.cfg.Method, err)
	}
	p.logger.Debugf("method %s produced %d samples", p.cfg.Method, len(samples))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	est, err := curvature.NewEstimator(&p.cfg)
	if err != nil {
		return nil, err
	}
	p.logger.Debugf("estimating curvature vectors (%s)", est.Describe())
	vectors, elementErrs := est.Curvatures(samples)
	if n := curvature.CountDegenerate(elementErrs); n > 0 {
		p.logger.Warnf("%d of %d elements had no neighbor within radius %g",
			n, len(samples), p.cfg.Radius)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	varifolds, err := curvature.Assemble(samples, vectors)
	if err != nil {
		return nil, err
	}

	signed := curvature.SignedNorms(varifolds)
	signed = curvature.SignConsistencyPass(signed, p.neighborFunc(m))

	result := &Result{
		Varifolds:     varifolds,
		SignedH:       signed,
		ElementErrors: elementErrs,
	}

	if opts.ExpectedH != nil {
		stats, err := curvature.CompareScalars(signed, opts.ExpectedH)
		if err != nil {
			return nil, fmt.Errorf("comparing against expected curvature: %w", err)
		}
		result.Stats = &stats
	}

	if opts.Sink != nil {
		p.publish(result, opts, est, samples)
	}
	return result, nil
}

// neighborFunc returns the geometric 1-ring of the method's elements: edge
// neighbors for face-indexed methods, ring vertices for the dual method.
func (p *Pipeline) neighborFunc(m *mesh.Mesh) func(int) []int {
	if p.cfg.Method.PerVertex() {
		return m.VertexNeighbors
	}
	return m.NeighborFaces
}

// publish pushes the named output fields to the sink.
func (p *Pipeline) publish(result *Result, opts RunOptions, est *curvature.Estimator, samples []curvature.SamplePoint) {
	n := len(result.Varifolds)
	vectors := make([]r3.Vector, n)
	normals := make([]r3.Vector, n)
	for i, vf := range result.Varifolds {
		vectors[i] = vf.Curvature
		normals[i] = vf.PlaneNormal
	}
	opts.Sink.AddVectorField("local curvature", vectors)
	opts.Sink.AddVectorField("used normals", normals)
	opts.Sink.AddScalarField("computed H", result.SignedH)

	if opts.ExpectedH != nil {
		opts.Sink.AddScalarField("true H", opts.ExpectedH)
		if diff, err := curvature.AbsoluteDifference(result.SignedH, opts.ExpectedH); err == nil {
			opts.Sink.AddScalarField("error H", diff)
		}
	}

	if opts.PrincipalDirections {
		d1, d2, errs := est.PrincipalDirections(samples)
		if n := curvature.CountDegenerate(errs); n > 0 {
			p.logger.Debugf("principal directions degenerate on %d elements", n)
		}
		opts.Sink.AddVectorField("principal direction 1", d1)
		opts.Sink.AddVectorField("principal direction 2", d2)
	}
}
