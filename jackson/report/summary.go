package report

import (
	"gonum.org/v1/gonum/stat"

	"github.com/inference-sim/cyclic-jackson/jackson"
)

// Summary aggregates statistics from a Report.
type Summary struct {
	StateCount            int
	TotalProbability      float64
	MostLikely            jackson.State // first state with the highest probability
	MostLikelyProbability float64
	Entropy               float64 // Shannon entropy in nats
}

// Summarize computes aggregate statistics from a Report.
// Safe for nil or empty reports (returns zero-value fields).
func Summarize(r *Report) *Summary {
	summary := &Summary{}
	if r == nil || len(r.Records) == 0 {
		return summary
	}

	summary.StateCount = len(r.Records)
	probs := make([]float64, len(r.Records))
	for i, rec := range r.Records {
		probs[i] = rec.Probability
		summary.TotalProbability += rec.Probability
		if rec.Probability > summary.MostLikelyProbability {
			summary.MostLikelyProbability = rec.Probability
			summary.MostLikely = rec.State
		}
	}
	summary.Entropy = stat.Entropy(probs)

	return summary
}
