// SPDX-License-Identifier: MIT
// Package: shortest/builder
//
// File: options.go
// Role: functional options for the random edge-list generator.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors panic on meaningless inputs; generators never panic.
//   • Determinism is explicit: WithSeed or WithRand; the default seed is 1.

package builder

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for generator validation.
var (
	// ErrTooFewVertices indicates n < 1.
	ErrTooFewVertices = errors.New("builder: vertex count too small")

	// ErrInvalidDegree indicates a negative out-degree.
	ErrInvalidDegree = errors.New("builder: invalid degree")

	// ErrTooLarge indicates n or n·degree exceeds MaxVertices or MaxEdges.
	ErrTooLarge = errors.New("builder: graph too large")
)

// Size ceilings for Random. MaxVertices matches the loader's default limit,
// so every generated graph loads back.
const (
	MaxVertices = 1 << 24
	MaxEdges    = 1 << 26
)

// Defaults for the generator.
const (
	DefaultSeed    int64 = 1
	DefaultMaxCost int64 = 100
	DefaultMinCost int64 = 1
)

type config struct {
	rng     *rand.Rand
	minCost int64
	maxCost int64
	chain   bool
	loops   bool
}

func newConfig(opts ...Option) config {
	c := config{
		rng:     rand.New(rand.NewSource(DefaultSeed)),
		minCost: DefaultMinCost,
		maxCost: DefaultMaxCost,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Option customizes a generator call.
type Option func(*config)

// WithSeed seeds a fresh RNG; equal seeds give equal graphs.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithCostRange draws edge weights uniformly from [lo, hi].
// Panics unless 0 ≤ lo ≤ hi.
func WithCostRange(lo, hi int64) Option {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("builder: WithCostRange requires 0 ≤ lo ≤ hi, got lo=%d hi=%d", lo, hi))
	}
	return func(c *config) {
		c.minCost = lo
		c.maxCost = hi
	}
}

// WithMaxCost is WithCostRange(1, hi).
func WithMaxCost(hi int64) Option { return WithCostRange(DefaultMinCost, hi) }

// WithChain adds the arcs 1→2→…→n first, so every vertex is reachable from 1.
func WithChain() Option {
	return func(c *config) { c.chain = true }
}

// WithLoops allows u→u arcs among the random draws.
func WithLoops() Option {
	return func(c *config) { c.loops = true }
}
