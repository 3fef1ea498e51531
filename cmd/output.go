package cmd

import (
	"fmt"
	"io"

	"github.com/inference-sim/cyclic-jackson/jackson"
	"github.com/inference-sim/cyclic-jackson/jackson/report"
)

// printProbabilities prints every enumerated state with its probability, the
// running sum of those probabilities, and G. Each probability is evaluated on
// its own, recomputing G each time.
func printProbabilities(w io.Writer, net jackson.Network, enum jackson.Enumeration) error {
	states, err := enum.States(net.Population, net.Nodes())
	if err != nil {
		return err
	}

	total := 0.0
	for _, s := range states {
		p, err := jackson.Probability(net, s, enum)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%v : %v\n", s, p)
		total += p
	}
	fmt.Fprintf(w, "Sum of probabilities: %v\n", total)

	g, err := jackson.NormalizationConstant(net, enum)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "G(%d) = %v\n", net.Population, g)
	return nil
}

// printSummary prints per-node metrics and the distribution summary.
func printSummary(w io.Writer, d *jackson.Distribution) {
	fmt.Fprintln(w, "=== Node Metrics ===")
	for _, m := range d.NodeMetrics() {
		fmt.Fprintf(w, "node %d: mean customers=%.6f busy servers=%.6f utilization=%.6f throughput=%.6f\n",
			m.Node, m.MeanOccupancy, m.MeanBusy, m.Utilization, m.Throughput)
	}

	s := report.Summarize(report.FromDistribution(d))
	fmt.Fprintln(w, "=== Distribution Summary ===")
	fmt.Fprintf(w, "states: %d\n", s.StateCount)
	fmt.Fprintf(w, "total probability: %v\n", s.TotalProbability)
	fmt.Fprintf(w, "most likely: %v (%v)\n", s.MostLikely, s.MostLikelyProbability)
	fmt.Fprintf(w, "entropy: %.6f nats\n", s.Entropy)
}
