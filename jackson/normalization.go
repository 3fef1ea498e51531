package jackson

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// Weight returns the unnormalized product-form weight of a state:
//
//	mu[0]^(N - s[0]) / prod_{i>=1} mu[i]^s[i] / prod_i a(s[i], c[i])
//
// Node 0 is the reference node. Its rate carries the complementary exponent,
// which folds its normalization into the others through the population constraint.
// The state must match the network shape; its sum is not checked.
func Weight(net Network, state State) (float64, error) {
	if err := net.Validate(); err != nil {
		return 0, err
	}
	if err := net.validateState(state); err != nil {
		return 0, err
	}
	return weight(net, state)
}

// weight assumes net and state are already validated.
func weight(net Network, state State) (float64, error) {
	numerator := math.Pow(net.Rates[0], float64(net.Population-state[0]))

	powers := make([]float64, len(state)-1)
	for i := 1; i < len(state); i++ {
		powers[i-1] = math.Pow(net.Rates[i], float64(state[i]))
	}
	denominator := floats.Prod(powers)

	factors, err := ServiceFactors(state, net.Servers)
	if err != nil {
		return 0, err
	}
	w := numerator / denominator / floats.Prod(factors)
	if math.IsInf(w, 0) || math.IsNaN(w) {
		return 0, fmt.Errorf("weight of %v: %w", state, ErrOverflow)
	}
	return w, nil
}

// NormalizationConstant returns G, the sum of Weight over every state the
// enumeration produces. It is recomputed from scratch on every call.
func NormalizationConstant(net Network, enum Enumeration) (float64, error) {
	if err := net.Validate(); err != nil {
		return 0, err
	}
	states, err := enum.States(net.Population, net.Nodes())
	if err != nil {
		return 0, err
	}
	weights, err := stateWeights(net, states)
	if err != nil {
		return 0, err
	}
	return sumWeights(net, weights)
}

// sumWeights accumulates G in one pass. Finite weights can still sum past
// the float64 range.
func sumWeights(net Network, weights []float64) (float64, error) {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if math.IsInf(total, 0) {
		return 0, fmt.Errorf("G(%d): %w", net.Population, ErrOverflow)
	}
	logrus.Debugf("G(%d) = %v over %d states", net.Population, total, len(weights))
	return total, nil
}

// stateWeights evaluates weight for each state, failing on an empty space.
func stateWeights(net Network, states []State) ([]float64, error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("N=%d, k=%d: %w", net.Population, net.Nodes(), ErrEmptyStateSpace)
	}
	weights := make([]float64, len(states))
	for i, s := range states {
		w, err := weight(net, s)
		if err != nil {
			return nil, err
		}
		weights[i] = w
	}
	return weights, nil
}
