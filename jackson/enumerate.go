package jackson

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat/combin"
)

// Enumeration selects how the feasible state space is generated.
type Enumeration string

const (
	// EnumerationCompositions generates every composition of N into k
	// non-negative parts. This is the physical state space.
	EnumerationCompositions Enumeration = "compositions"
	// EnumerationPermutations generates k-permutations of distinct values
	// from {0..N} that sum to N. States with repeated entries, such as
	// (2, 2), are missing. Kept for parity with published reference output.
	EnumerationPermutations Enumeration = "permutations"
)

// validEnumerations maps accepted enumeration names.
var validEnumerations = map[Enumeration]bool{
	EnumerationCompositions: true,
	EnumerationPermutations: true,
}

// ParseEnumeration resolves an enumeration name. Empty selects compositions.
func ParseEnumeration(name string) (Enumeration, error) {
	if name == "" {
		return EnumerationCompositions, nil
	}
	e := Enumeration(name)
	if !validEnumerations[e] {
		return "", fmt.Errorf("%q (want %q or %q): %w", name, EnumerationCompositions, EnumerationPermutations, ErrUnknownEnumeration)
	}
	return e, nil
}

// States returns the state space of n customers over k nodes in lexicographic order.
func (e Enumeration) States(n, k int) ([]State, error) {
	var states []State
	switch e {
	case EnumerationCompositions, "":
		states = Compositions(n, k)
	case EnumerationPermutations:
		states = Permutations(n, k)
	default:
		return nil, fmt.Errorf("%q: %w", string(e), ErrUnknownEnumeration)
	}
	logrus.Debugf("enumeration %s: %d states for N=%d, k=%d", e, len(states), n, k)
	return states, nil
}

// Compositions returns every length-k tuple of non-negative integers summing
// to n, in lexicographic order. There are C(n+k-1, k-1) of them.
//
// Each composition corresponds to a placement of k-1 bars among n+k-1 slots;
// the gaps between consecutive bars are the parts.
func Compositions(n, k int) []State {
	if n < 0 || k < 1 {
		return nil
	}
	if k == 1 {
		return []State{{n}}
	}
	slots := n + k - 1
	states := make([]State, 0, combin.Binomial(slots, k-1))
	gen := combin.NewCombinationGenerator(slots, k-1)
	bars := make([]int, k-1)
	for gen.Next() {
		bars = gen.Combination(bars)
		s := make(State, k)
		prev := -1
		for j, b := range bars {
			s[j] = b - prev - 1
			prev = b
		}
		s[k-1] = slots - prev - 1
		states = append(states, s)
	}
	sortStates(states)
	return states
}

// Permutations returns the k-permutations of distinct values drawn from
// {0..n} whose entries sum to n, in lexicographic order. Empty when k > n+1.
func Permutations(n, k int) []State {
	if n < 0 || k < 1 || k > n+1 {
		return nil
	}
	var states []State
	gen := combin.NewPermutationGenerator(n+1, k)
	perm := make([]int, k)
	for gen.Next() {
		perm = gen.Permutation(perm)
		s := State(slices.Clone(perm))
		if s.Sum() == n {
			states = append(states, s)
		}
	}
	sortStates(states)
	return states
}

func sortStates(states []State) {
	slices.SortFunc(states, func(a, b State) int {
		return slices.Compare(a, b)
	})
}
