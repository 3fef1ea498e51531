package jackson

import (
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Probability returns the stationary probability of state: its Weight divided
// by G. G is recomputed on each call; use Solve when many states are needed.
func Probability(net Network, state State, enum Enumeration) (float64, error) {
	w, err := Weight(net, state)
	if err != nil {
		return 0, err
	}
	g, err := NormalizationConstant(net, enum)
	if err != nil {
		return 0, err
	}
	return w / g, nil
}

// Distribution is the full stationary distribution over an enumerated state space.
type Distribution struct {
	Network       Network
	Enumeration   Enumeration
	States        []State   // lexicographic order
	Weights       []float64 // unnormalized, aligned with States
	Probabilities []float64 // Weights / G, aligned with States
	G             float64
}

// Solve enumerates the state space once and normalizes every weight by G.
func Solve(net Network, enum Enumeration) (*Distribution, error) {
	if err := net.Validate(); err != nil {
		return nil, err
	}
	states, err := enum.States(net.Population, net.Nodes())
	if err != nil {
		return nil, err
	}
	weights, err := stateWeights(net, states)
	if err != nil {
		return nil, err
	}
	g, err := sumWeights(net, weights)
	if err != nil {
		return nil, err
	}
	probs := make([]float64, len(weights))
	floats.ScaleTo(probs, 1/g, weights)
	return &Distribution{
		Network:       net,
		Enumeration:   enum,
		States:        states,
		Weights:       weights,
		Probabilities: probs,
		G:             g,
	}, nil
}

// Total returns the sum of all probabilities, 1 up to rounding.
func (d *Distribution) Total() float64 {
	return floats.Sum(d.Probabilities)
}

// Lookup returns the probability of state, or false if the enumeration did not produce it.
func (d *Distribution) Lookup(state State) (float64, bool) {
	i := slices.IndexFunc(d.States, func(s State) bool {
		return slices.Equal(s, state)
	})
	if i < 0 {
		return 0, false
	}
	return d.Probabilities[i], true
}

// NodeMetrics summarizes one node under the stationary distribution.
type NodeMetrics struct {
	Node          int
	Marginal      []float64 // Marginal[n] = P(node holds n customers), n = 0..N
	MeanOccupancy float64   // E[n_i]
	MeanBusy      float64   // E[min(n_i, c_i)]
	Utilization   float64   // MeanBusy / c_i
	Throughput    float64   // mu_i * MeanBusy
}

// NodeMetrics returns per-node marginals and means. In a cyclic network every
// node carries the same throughput.
func (d *Distribution) NodeMetrics() []NodeMetrics {
	k := d.Network.Nodes()
	metrics := make([]NodeMetrics, k)
	occupancy := make([]float64, len(d.States))
	busy := make([]float64, len(d.States))
	for i := 0; i < k; i++ {
		c := d.Network.Servers[i]
		marginal := make([]float64, d.Network.Population+1)
		for j, s := range d.States {
			occupancy[j] = float64(s[i])
			busy[j] = float64(min(s[i], c))
			marginal[s[i]] += d.Probabilities[j]
		}
		meanBusy := stat.Mean(busy, d.Probabilities)
		metrics[i] = NodeMetrics{
			Node:          i,
			Marginal:      marginal,
			MeanOccupancy: stat.Mean(occupancy, d.Probabilities),
			MeanBusy:      meanBusy,
			Utilization:   meanBusy / float64(c),
			Throughput:    d.Network.Rates[i] * meanBusy,
		}
	}
	return metrics
}
