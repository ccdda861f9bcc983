package fixtures

import "errors"

var (
	// ErrTooFewNodes is returned when a size parameter falls below the
	// constructor's minimum (e.g. Chain(n) with n < 1).
	ErrTooFewNodes = errors.New("fixtures: parameter too small")

	// ErrInvalidProbability is returned when an edge probability falls
	// outside [0, 1].
	ErrInvalidProbability = errors.New("fixtures: probability out of range")

	// ErrNeedRandSource is returned by stochastic constructors when no RNG
	// was supplied via WithSeed or WithRand.
	ErrNeedRandSource = errors.New("fixtures: rng is required")
)
