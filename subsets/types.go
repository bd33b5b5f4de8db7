// Package subsets defines shared types, options, and sentinel errors for
// the combination producers.
package subsets

import "errors"

// Strategy selects how Generator materializes combinations.
//
//   - Recursive — choose-or-skip recursion over positions.
//     Call-stack bookkeeping, depth at most m+1. Default.
//
//   - Iterative — the explicit-stack step machine driven to exhaustion.
//     No recursion; the same machine Enumerator exposes incrementally.
//
// Both strategies emit identical output in the canonical order.
type Strategy int

const (
	// Recursive materializes combinations by direct recursion.
	Recursive Strategy = iota

	// Iterative materializes combinations with the explicit-stack machine.
	Iterative
)

// String returns the flag-style name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case Iterative:
		return "iterative"
	default:
		return "unknown"
	}
}

var (
	// ErrUnknownStrategy indicates an unsupported Strategy value.
	ErrUnknownStrategy = errors.New("subsets: unknown strategy")

	// ErrCountTooLarge indicates a combination count that fits uint64 but
	// cannot be materialized because it exceeds int capacity.
	ErrCountTooLarge = errors.New("subsets: combination count exceeds int capacity")

	// ErrNilVisit indicates a nil visit callback passed to Walk.
	ErrNilVisit = errors.New("subsets: nil visit callback")
)

// Options holds configurable parameters for Generator.
type Options struct {
	// Strategy selects the production engine. Default is Recursive.
	Strategy Strategy
}

// Option configures optional behavior of Generator.
// Use with NewGenerator(set, opts...).
type Option func(*Options)

// DefaultOptions returns the canonical Generator configuration:
// the Recursive strategy.
func DefaultOptions() Options {
	return Options{Strategy: Recursive}
}

// WithStrategy returns an Option selecting the production engine.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}
