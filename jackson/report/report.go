package report

import "github.com/inference-sim/cyclic-jackson/jackson"

// StateRecord captures the evaluation of one state.
type StateRecord struct {
	State       jackson.State
	Weight      float64 // unnormalized product-form weight
	Probability float64
}

// Report collects state evaluations for one network under one enumeration.
type Report struct {
	Enumeration jackson.Enumeration
	G           float64
	Records     []StateRecord
}

// NewReport creates a Report ready for recording.
func NewReport(enum jackson.Enumeration, g float64) *Report {
	return &Report{
		Enumeration: enum,
		G:           g,
		Records:     make([]StateRecord, 0),
	}
}

// FromDistribution records every state of a solved distribution in order.
func FromDistribution(d *jackson.Distribution) *Report {
	r := NewReport(d.Enumeration, d.G)
	for i, s := range d.States {
		r.Record(StateRecord{State: s, Weight: d.Weights[i], Probability: d.Probabilities[i]})
	}
	return r
}

// Record appends a state evaluation.
func (r *Report) Record(record StateRecord) {
	r.Records = append(r.Records, record)
}
