// Package runcfg loads curvature run configuration from a JSON file.
package runcfg

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"

	"github.com/meshpipe/varifold/curvature"
)

// RunConfig is the file representation of a run configuration. Distribution
// and method are given as tokens ("fd"/"c"/"hs", "tnfc"/"dnfc"/"cnfc"/...);
// unrecognized tokens are rejected, never defaulted. Omitted fields keep
// their defaults.
type RunConfig struct {
	Radius       float64 `mapstructure:"radius"`
	Distribution string  `mapstructure:"distribution"`
	Method       string  `mapstructure:"method"`
	KDTree       bool    `mapstructure:"kdtree"`
	Workers      int     `mapstructure:"workers"`
}

// Load reads and decodes a run configuration from a JSON file.
func Load(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	var c RunConfig
	if err := mapstructure.Decode(raw, &c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &c, nil
}

// ToConfig resolves the tokens and produces a validated curvature.Config,
// starting from curvature.DefaultConfig for omitted fields.
func (c *RunConfig) ToConfig() (curvature.Config, error) {
	cfg := curvature.DefaultConfig()
	if c.Radius != 0 {
		cfg.Radius = c.Radius
	}
	if c.Distribution != "" {
		dist, err := curvature.ParseDistribution(c.Distribution)
		if err != nil {
			return curvature.Config{}, err
		}
		cfg.Distribution = dist
	}
	if c.Method != "" {
		method, err := curvature.ParseMethod(c.Method)
		if err != nil {
			return curvature.Config{}, err
		}
		cfg.Method = method
	}
	if c.KDTree {
		cfg.Backend = curvature.KDTreeBackend
	}
	if c.Workers != 0 {
		cfg.Workers = c.Workers
	}
	if err := cfg.Validate(); err != nil {
		return curvature.Config{}, err
	}
	return cfg, nil
}
