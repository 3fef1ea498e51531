// Package testutil provides shared test infrastructure for the jackson
// packages: the golden dataset of hand-checked networks and float assertions.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one network evaluated under one enumeration.
type GoldenTestCase struct {
	Name        string        `json:"name"`
	Enumeration string        `json:"enumeration"`
	Population  int           `json:"population"`
	Rates       []float64     `json:"rates"`
	Servers     []int         `json:"servers"`
	G           float64       `json:"g"`
	States      []GoldenState `json:"states"` // lexicographic order
}

// GoldenState is the expected probability of one state.
type GoldenState struct {
	State       []int   `json:"state"`
	Probability float64 `json:"probability"`
}

// goldenPath locates testdata/goldendataset.json at the module root, three
// directories above this file.
func goldenPath() (string, bool) {
	_, here, _, ok := runtime.Caller(0)
	if !ok {
		return "", false
	}
	return filepath.Join(filepath.Dir(here), "..", "..", "..", "testdata", "goldendataset.json"), true
}

// LoadGoldenDataset reads the hand-checked networks. Any read or decode
// failure fails the calling test immediately.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	path, ok := goldenPath()
	if !ok {
		t.Fatal("cannot resolve golden dataset location")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("golden dataset %s: %v", path, err)
	}

	dataset := &GoldenDataset{}
	if err := json.Unmarshal(data, dataset); err != nil {
		t.Fatalf("golden dataset %s: %v", path, err)
	}
	return dataset
}

// AssertFloat64Equal fails when got and want differ by more than relTol of
// the larger magnitude. Two exact zeros always match.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	scale := math.Max(math.Abs(want), math.Abs(got))
	if scale == 0 {
		return
	}
	if rel := math.Abs(want-got) / scale; rel > relTol {
		t.Errorf("%s = %v, want %v (relative error %.3g > %.3g)", name, got, want, rel, relTol)
	}
}
