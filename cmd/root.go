package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/cyclic-jackson/jackson"
)

var (
	// Network parameters; defaults are the two-node example of problem 4.21 in Gross et al.
	population  int       // Total customers circulating
	rates       []float64 // Per-node service rates
	servers     []int     // Per-node server counts
	enumeration string    // State space enumeration (compositions, permutations)
	configPath  string    // Optional YAML network file
	logLevel    string    // Log verbosity level
	summary     bool      // Print node metrics and distribution summary
)

// rootCmd evaluates the configured network when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "cyclic-jackson",
	Short: "Closed-form state probabilities for cyclic Jackson networks",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
	Run: func(cmd *cobra.Command, args []string) {
		net, enum, err := resolveNetwork(cmd)
		if err != nil {
			logrus.Fatalf("Invalid network: %v", err)
		}
		logrus.Infof("Evaluating N=%d, rates=%v, servers=%v, enumeration=%s",
			net.Population, net.Rates, net.Servers, enum)

		if err := printProbabilities(os.Stdout, net, enum); err != nil {
			logrus.Fatalf("Evaluation failed: %v", err)
		}
		if summary {
			d, err := jackson.Solve(net, enum)
			if err != nil {
				logrus.Fatalf("Evaluation failed: %v", err)
			}
			printSummary(os.Stdout, d)
		}
	},
}

// resolveNetwork layers flag defaults, the optional config file, and
// explicitly set flags, in that order of increasing precedence.
func resolveNetwork(cmd *cobra.Command) (jackson.Network, jackson.Enumeration, error) {
	net := jackson.Network{Population: population, Rates: rates, Servers: servers}
	enumName := enumeration

	if configPath != "" {
		cfg, err := loadNetworkConfig(configPath)
		if err != nil {
			return jackson.Network{}, "", err
		}
		flags := cmd.Flags()
		if cfg.Population != nil && !flags.Changed("population") {
			net.Population = *cfg.Population
		}
		if cfg.Rates != nil && !flags.Changed("rates") {
			net.Rates = cfg.Rates
		}
		if cfg.Servers != nil && !flags.Changed("servers") {
			net.Servers = cfg.Servers
		}
		if cfg.Enumeration != "" && !flags.Changed("enumeration") {
			enumName = cfg.Enumeration
		}
	}

	enum, err := jackson.ParseEnumeration(enumName)
	if err != nil {
		return jackson.Network{}, "", err
	}
	if err := net.Validate(); err != nil {
		return jackson.Network{}, "", fmt.Errorf("N=%d rates=%v servers=%v: %w", net.Population, net.Rates, net.Servers, err)
	}
	return net, enum, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&population, "population", 5, "Total number of customers in the network")
	flags.Float64SliceVar(&rates, "rates", []float64{0.1, 0.2}, "Comma-separated per-node service rates")
	flags.IntSliceVar(&servers, "servers", []int{5, 2}, "Comma-separated per-node server counts")
	flags.StringVar(&enumeration, "enumeration", string(jackson.EnumerationCompositions), "State space enumeration (compositions, permutations)")
	flags.StringVar(&configPath, "config", "", "Path to a YAML network file")
	flags.StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.Flags().BoolVar(&summary, "summary", false, "Also print per-node metrics and a distribution summary")
}
