// Package config holds the search configuration contract between the CLI and
// the pipeline.
package config

import (
	"errors"
	"runtime"
)

// Search are the validated knobs a search run honors. Score is optional; nil
// means no bit-score floor is applied.
type Search struct {
	EValue  float64  // maximum reported E-value, > 0
	Score   *float64 // optional minimum score
	Threads int      // worker count, >= 1
}

// Default returns the stock configuration: E-value 10, no score floor, one
// worker per CPU.
func Default() Search {
	return Search{
		EValue:  10.0,
		Threads: runtime.NumCPU(),
	}
}

var (
	ErrEValue  = errors.New("config: E-value threshold must be positive")
	ErrThreads = errors.New("config: thread count must be at least 1")
)

func (c Search) Validate() error {
	if c.EValue <= 0 {
		return ErrEValue
	}
	if c.Threads < 1 {
		return ErrThreads
	}
	return nil
}
