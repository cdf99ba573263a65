// qter-bench is the benchmark driver for the counter-machine multiplier:
// it enumerates residue pairs, verifies every product against a native
// multiplication, and reports the instrumentation counters.
package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"github.com/ArhanChaudhary/qter/internal/core"
)

var (
	flagModulus int
	flagConfig  string
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:          "qter-bench",
		Short:        "Benchmark driver for the counter-machine modular multiplier",
		SilenceUsage: true,
	}
	root.PersistentFlags().IntVar(&flagModulus, "modulus", 30, "modulus preset (30 or 90)")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML machine configuration (overrides --modulus)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	root.AddCommand(sweepCmd(), mulCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the machine configuration from --config or the
// --modulus preset. Validation happens in multiply.New, not here.
func loadConfig() (core.Config, error) {
	if flagConfig != "" {
		data, err := os.ReadFile(flagConfig)
		if err != nil {
			return core.Config{}, errors.Wrap(err, "read machine config")
		}
		var cfg core.Config
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return core.Config{}, errors.Wrap(err, "parse machine config")
		}
		return cfg, nil
	}
	switch flagModulus {
	case 30:
		return core.DefaultConfig(), nil
	case 90:
		return core.Legacy90Config(), nil
	default:
		return core.Config{}, errors.Errorf("no preset for modulus %d, supply --config", flagModulus)
	}
}
