// Package params loads the JSON parameter file consumed by the analysis
// tool. Every field is optional; missing values fall back to the
// recommended GF(4) parameter set.
package params

import (
	"encoding/json"
	"fmt"
	"os"
)

// Analysis holds the knobs of one analysis run.
type Analysis struct {
	BlockSize   int    `json:"r"`
	BlockWeight int    `json:"w"`
	ErrorWeight int    `json:"errorWeight"`
	Iterations  int    `json:"iterations"`
	Runs        int    `json:"runs"`
	Seed        string `json:"seed"`
}

// Default returns the recommended parameter set: r=2339, w=37, ten injected
// errors, a budget of 100 flips, three runs.
func Default() Analysis {
	return Analysis{
		BlockSize:   2339,
		BlockWeight: 37,
		ErrorWeight: 10,
		Iterations:  100,
		Runs:        3,
	}
}

// Load reads an Analysis from the JSON file at path, filling absent fields
// from Default and validating the result.
func Load(path string) (Analysis, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("params: parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// Validate checks the parameter set for internal consistency.
func (p Analysis) Validate() error {
	if p.BlockSize < 1 {
		return fmt.Errorf("params: block size must be positive, got %d", p.BlockSize)
	}
	if p.BlockWeight < 1 || p.BlockWeight > p.BlockSize {
		return fmt.Errorf("params: block weight must be in [1, %d], got %d", p.BlockSize, p.BlockWeight)
	}
	if p.ErrorWeight < 0 || p.ErrorWeight > 2*p.BlockSize {
		return fmt.Errorf("params: error weight must be in [0, %d], got %d", 2*p.BlockSize, p.ErrorWeight)
	}
	if p.Iterations < 1 {
		return fmt.Errorf("params: iteration budget must be positive, got %d", p.Iterations)
	}
	if p.Runs < 1 {
		return fmt.Errorf("params: runs must be positive, got %d", p.Runs)
	}
	return nil
}
