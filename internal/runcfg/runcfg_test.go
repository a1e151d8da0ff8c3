package runcfg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/meshpipe/varifold/curvature"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadAndResolve(t *testing.T) {
	path := writeConfig(t, `{"radius": 1.5, "distribution": "fd", "method": "dnfc", "kdtree": true, "workers": 4}`)
	rc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg, err := rc.ToConfig()
	if err != nil {
		t.Fatalf("ToConfig: %v", err)
	}
	if cfg.Radius != 1.5 {
		t.Errorf("Radius = %g, want 1.5", cfg.Radius)
	}
	if cfg.Distribution != curvature.FlatDisc {
		t.Errorf("Distribution = %v, want FlatDisc", cfg.Distribution)
	}
	if cfg.Method != curvature.DualNormalFaceCentroid {
		t.Errorf("Method = %v, want DualNormalFaceCentroid", cfg.Method)
	}
	if cfg.Backend != curvature.KDTreeBackend {
		t.Errorf("Backend = %v, want KDTreeBackend", cfg.Backend)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
}

func TestLoad_EmptyKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `{}`)
	rc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg, err := rc.ToConfig()
	if err != nil {
		t.Fatalf("ToConfig: %v", err)
	}
	want := curvature.DefaultConfig()
	if cfg != want {
		t.Errorf("empty config resolved to %+v, want defaults %+v", cfg, want)
	}
}

func TestLoad_RejectsUnknownTokens(t *testing.T) {
	path := writeConfig(t, `{"distribution": "gaussian"}`)
	rc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := rc.ToConfig(); !errors.Is(err, curvature.ErrUnknownDistribution) {
		t.Errorf("expected ErrUnknownDistribution, got %v", err)
	}

	path = writeConfig(t, `{"method": "nearest"}`)
	rc, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := rc.ToConfig(); !errors.Is(err, curvature.ErrUnknownMethod) {
		t.Errorf("expected ErrUnknownMethod, got %v", err)
	}
}

func TestLoad_FileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	path := writeConfig(t, `{not json`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
