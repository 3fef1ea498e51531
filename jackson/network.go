package jackson

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Network holds the parameters of a cyclic network with k nodes.
// Customers leaving node i join node (i+1) mod k.
type Network struct {
	Population int       // N, total customers circulating (must be >= 0)
	Rates      []float64 // per-node service rate mu_i (must be > 0)
	Servers    []int     // per-node server count c_i (must be > 0)
}

// Nodes returns k, the number of nodes.
func (n Network) Nodes() int {
	return len(n.Rates)
}

// Validate reports the first parameter that makes the closed form meaningless.
func (n Network) Validate() error {
	if len(n.Rates) != len(n.Servers) {
		return fmt.Errorf("%d rates, %d server counts: %w", len(n.Rates), len(n.Servers), ErrShapeMismatch)
	}
	if len(n.Rates) < 2 {
		return fmt.Errorf("got %d: %w", len(n.Rates), ErrTooFewNodes)
	}
	if n.Population < 0 {
		return fmt.Errorf("got %d: %w", n.Population, ErrNegativePopulation)
	}
	for i, mu := range n.Rates {
		if mu <= 0 || math.IsNaN(mu) || math.IsInf(mu, 0) {
			return fmt.Errorf("node %d rate %v: %w", i, mu, ErrInvalidRate)
		}
	}
	for i, c := range n.Servers {
		if c < 1 {
			return fmt.Errorf("node %d servers %d: %w", i, c, ErrInvalidServers)
		}
	}
	return nil
}

// State is the number of customers at each node at one instant.
// Feasible states sum to the network population.
type State []int

// Sum returns the total number of customers in the state.
func (s State) Sum() int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

// String renders the state as a tuple, e.g. "(2, 3)".
func (s State) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// validateState checks the state against the network shape. The sum is not
// checked against the population; that is up to the caller.
func (n Network) validateState(s State) error {
	if len(s) != n.Nodes() {
		return fmt.Errorf("state %v has %d entries, network has %d nodes: %w", s, len(s), n.Nodes(), ErrShapeMismatch)
	}
	for i, v := range s {
		if v < 0 {
			return fmt.Errorf("state %v node %d: %w", s, i, ErrNegativeOccupancy)
		}
	}
	return nil
}
