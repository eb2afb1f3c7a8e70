// SPDX-License-Identifier: MIT
// Package: montepi/estimator
//
// options.go — functional options for Estimate.
//
// Contract:
//   • Options are functional (type Option func(*estimateConfig)).
//   • Option constructors panic on meaningless inputs (nil RNG); Estimate
//     itself never panics.
//   • Determinism is explicit: WithSeed or WithRand. Without either, a seed is
//     drawn from crypto/rand and recorded on the Run so it can be replayed.

package estimator

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Option customizes a single Estimate call.
type Option func(*estimateConfig)

// estimateConfig is resolved once per Estimate call and never shared.
type estimateConfig struct {
	rng    *rand.Rand
	seed   int64
	seeded bool // seed is known (WithSeed or generated)
}

// WithSeed draws samples from a new *rand.Rand seeded with seed.
// Two runs with the same seed, sampleCount and dimension are identical.
func WithSeed(seed int64) Option {
	return func(c *estimateConfig) {
		c.rng = rand.New(rand.NewSource(seed))
		c.seed, c.seeded = seed, true
	}
}

// WithRand draws samples from r. The caller owns r; Estimate advances it.
// The resulting Run reports no seed. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("estimator: WithRand(nil)")
	}
	return func(c *estimateConfig) {
		c.rng = r
		c.seed, c.seeded = 0, false
	}
}

// newEstimateConfig applies opts in order (last wins) and falls back to a
// crypto-random seed when no source was supplied.
func newEstimateConfig(opts ...Option) (estimateConfig, error) {
	var cfg estimateConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng != nil {
		return cfg, nil
	}

	seed, err := newSeed()
	if err != nil {
		return cfg, err
	}
	WithSeed(seed)(&cfg)

	return cfg, nil
}

// newSeed generates a random seed using crypto/rand.
func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
