package jackson

import "errors"

// Every message is prefixed with "jackson:". Sentinels are wrapped with
// fmt.Errorf("ctx: %w", ErrX) where context helps; match with errors.Is.
var (
	// ErrTooFewNodes is returned when a network has fewer than two nodes.
	ErrTooFewNodes = errors.New("jackson: network needs at least two nodes")

	// ErrShapeMismatch indicates vectors that must share length k do not.
	ErrShapeMismatch = errors.New("jackson: vector length mismatch")

	// ErrInvalidRate signals a zero, negative or non-finite service rate.
	ErrInvalidRate = errors.New("jackson: service rate must be positive and finite")

	// ErrInvalidServers signals a server count below one.
	ErrInvalidServers = errors.New("jackson: server count must be positive")

	// ErrNegativePopulation signals a negative total population.
	ErrNegativePopulation = errors.New("jackson: population must be non-negative")

	// ErrNegativeOccupancy signals a negative entry in a state vector.
	ErrNegativeOccupancy = errors.New("jackson: occupancy must be non-negative")

	// ErrUnknownEnumeration is returned by ParseEnumeration for unrecognized names.
	ErrUnknownEnumeration = errors.New("jackson: unknown enumeration")

	// ErrEmptyStateSpace means the enumeration produced no states, so G is zero.
	ErrEmptyStateSpace = errors.New("jackson: empty state space")

	// ErrOverflow signals a result outside the float64 range.
	ErrOverflow = errors.New("jackson: float64 overflow")
)
