package jackson

import (
	"fmt"
	"math"
)

// ServiceFactor returns the M/M/c occupancy factor a(n, c) for a node holding
// n customers with c servers:
//
//	a(n, c) = n!               if n < c
//	a(n, c) = c^(n-c) * c!     if n >= c
//
// The branches agree at n == c. Results past the float64 range return ErrOverflow.
func ServiceFactor(n, c int) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("n=%d: %w", n, ErrNegativeOccupancy)
	}
	if c < 1 {
		return 0, fmt.Errorf("c=%d: %w", c, ErrInvalidServers)
	}
	var a float64
	if n < c {
		a = factorial(n)
	} else {
		a = math.Pow(float64(c), float64(n-c)) * factorial(c)
	}
	if math.IsInf(a, 0) {
		return 0, fmt.Errorf("a(%d, %d): %w", n, c, ErrOverflow)
	}
	return a, nil
}

// ServiceFactors applies ServiceFactor node by node.
func ServiceFactors(state State, servers []int) ([]float64, error) {
	if len(state) != len(servers) {
		return nil, fmt.Errorf("state %v vs %d server counts: %w", state, len(servers), ErrShapeMismatch)
	}
	factors := make([]float64, len(state))
	for i, n := range state {
		a, err := ServiceFactor(n, servers[i])
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		factors[i] = a
	}
	return factors, nil
}

// factorial overflows to +Inf for n > 170.
func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
