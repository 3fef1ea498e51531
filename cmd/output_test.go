package cmd

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/cyclic-jackson/jackson"
	"github.com/inference-sim/cyclic-jackson/jackson/ctmc"
)

func grossNetwork() jackson.Network {
	return jackson.Network{Population: 5, Rates: []float64{0.1, 0.2}, Servers: []int{5, 2}}
}

func TestPrintProbabilities_GrossExample(t *testing.T) {
	// GIVEN the default two-node network
	var buf bytes.Buffer

	// WHEN the probabilities are printed
	err := printProbabilities(&buf, grossNetwork(), jackson.EnumerationCompositions)

	// THEN every state, the sum and G appear in order
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 8)
	wantPrefixes := []string{"(0, 5) : ", "(1, 4) : ", "(2, 3) : ", "(3, 2) : ", "(4, 1) : ", "(5, 0) : ",
		"Sum of probabilities: ", "G(5) = "}
	for i, prefix := range wantPrefixes {
		assert.True(t, strings.HasPrefix(lines[i], prefix), "line %d = %q", i, lines[i])
	}
	sum, err := strconv.ParseFloat(strings.TrimPrefix(lines[6], "Sum of probabilities: "), 64)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Contains(t, lines[7], "G(5) = 0.0753906")
}

func TestPrintProbabilities_LegacyEmptySpace_Errors(t *testing.T) {
	var buf bytes.Buffer
	net := jackson.Network{Population: 0, Rates: []float64{1, 1}, Servers: []int{1, 1}}
	err := printProbabilities(&buf, net, jackson.EnumerationPermutations)
	assert.ErrorIs(t, err, jackson.ErrEmptyStateSpace)
}

func TestPrintSummary_IncludesNodeMetrics(t *testing.T) {
	d, err := jackson.Solve(grossNetwork(), jackson.EnumerationCompositions)
	require.NoError(t, err)

	var buf bytes.Buffer
	printSummary(&buf, d)

	out := buf.String()
	assert.Contains(t, out, "=== Node Metrics ===")
	assert.Contains(t, out, "node 0:")
	assert.Contains(t, out, "node 1:")
	assert.Contains(t, out, "states: 6")
	assert.Regexp(t, `most likely: \((3, 2|4, 1)\)`, out)
}

func TestPrintComparison_EvenPopulation_ListsMissingState(t *testing.T) {
	net := jackson.Network{Population: 4, Rates: []float64{0.1, 0.2}, Servers: []int{5, 2}}
	var buf bytes.Buffer
	require.NoError(t, printComparison(&buf, net))

	out := buf.String()
	assert.Contains(t, out, "compositions   states=5")
	assert.Contains(t, out, "permutations   states=4")
	assert.Contains(t, out, "(2, 2) : ")
	assert.Contains(t, out, "| missing")
	assert.Equal(t, 1, strings.Count(out, "missing"))
}

func TestPrintComparison_ZeroPopulation_ReportsEmptyLegacySpace(t *testing.T) {
	net := jackson.Network{Population: 0, Rates: []float64{1, 1}, Servers: []int{1, 1}}
	var buf bytes.Buffer
	require.NoError(t, printComparison(&buf, net))
	assert.Contains(t, buf.String(), "empty state space")
}

func TestPrintSimulation_OneLinePerState(t *testing.T) {
	sim, err := ctmc.NewSimulator(grossNetwork(), ctmc.Config{Seed: 42, Events: 1_000})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printSimulation(&buf, grossNetwork(), sim.Run()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 8) // header, column legend, six states
	assert.True(t, strings.HasPrefix(lines[0], "events=1000 "))
}
