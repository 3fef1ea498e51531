package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/cyclic-jackson/jackson"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "network.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// withDefaults restores the package-level flag variables after the test.
func withDefaults(t *testing.T) {
	t.Helper()
	population, rates, servers, enumeration, configPath = 5, []float64{0.1, 0.2}, []int{5, 2}, "compositions", ""
	t.Cleanup(func() {
		population, rates, servers, enumeration, configPath = 5, []float64{0.1, 0.2}, []int{5, 2}, "compositions", ""
	})
}

func TestLoadNetworkConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, "population: 3\nrates: [1, 2, 0.5]\nservers: [1, 2, 1]\nenumeration: permutations\n")

	cfg, err := loadNetworkConfig(path)

	require.NoError(t, err)
	require.NotNil(t, cfg.Population)
	assert.Equal(t, 3, *cfg.Population)
	assert.Equal(t, []float64{1, 2, 0.5}, cfg.Rates)
	assert.Equal(t, []int{1, 2, 1}, cfg.Servers)
	assert.Equal(t, "permutations", cfg.Enumeration)
}

func TestLoadNetworkConfig_UnknownField_Errors(t *testing.T) {
	// GIVEN a file with a typo in a key
	path := writeConfig(t, "populaton: 3\n")

	// WHEN it is loaded
	_, err := loadNetworkConfig(path)

	// THEN strict parsing rejects it
	assert.Error(t, err)
}

func TestLoadNetworkConfig_MissingFile_Errors(t *testing.T) {
	_, err := loadNetworkConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadNetworkConfig_BundledExample(t *testing.T) {
	path := filepath.Join("..", "examples", "gross-4-21.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skip("examples/gross-4-21.yaml not found")
	}
	cfg, err := loadNetworkConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Population)
	assert.Equal(t, 5, *cfg.Population)
	assert.Equal(t, []int{5, 2}, cfg.Servers)
}

func TestResolveNetwork_Defaults(t *testing.T) {
	withDefaults(t)

	net, enum, err := resolveNetwork(&cobra.Command{})

	require.NoError(t, err)
	assert.Equal(t, grossNetwork(), net)
	assert.Equal(t, jackson.EnumerationCompositions, enum)
}

func TestResolveNetwork_ConfigOverridesDefaults(t *testing.T) {
	withDefaults(t)
	configPath = writeConfig(t, "population: 4\nenumeration: permutations\n")

	net, enum, err := resolveNetwork(&cobra.Command{})

	require.NoError(t, err)
	assert.Equal(t, 4, net.Population)
	assert.Equal(t, []float64{0.1, 0.2}, net.Rates)
	assert.Equal(t, jackson.EnumerationPermutations, enum)
}

func TestResolveNetwork_ChangedFlagBeatsConfig(t *testing.T) {
	withDefaults(t)
	configPath = writeConfig(t, "population: 4\n")

	// GIVEN --population set explicitly on the command line
	c := &cobra.Command{}
	c.Flags().IntVar(&population, "population", 5, "")
	require.NoError(t, c.Flags().Set("population", "7"))

	// WHEN the network is resolved
	net, _, err := resolveNetwork(c)

	// THEN the flag wins over the file
	require.NoError(t, err)
	assert.Equal(t, 7, net.Population)
}

func TestResolveNetwork_InvalidNetwork(t *testing.T) {
	withDefaults(t)
	configPath = writeConfig(t, "rates: [0.1, 0.2, 0.3]\n")

	_, _, err := resolveNetwork(&cobra.Command{})
	assert.ErrorIs(t, err, jackson.ErrShapeMismatch)
}

func TestResolveNetwork_UnknownEnumeration(t *testing.T) {
	withDefaults(t)
	enumeration = "stars"

	_, _, err := resolveNetwork(&cobra.Command{})
	assert.ErrorIs(t, err, jackson.ErrUnknownEnumeration)
}
