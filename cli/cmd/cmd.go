package cmd

import (
	"github.com/spf13/cobra"

	converter "github.com/hpate252/currency-converter"
	"github.com/hpate252/currency-converter/rates"
)

var (
	rootCmd = &cobra.Command{
		Use:     "currency-converter",
		Short:   "Currency converter with base-relative rates and runtime overrides",
		Version: "v1.0.0",
	}
	debug bool
)

type (
	Config struct {
		Service  converter.Service
		Table    *rates.Table
		Registry *converter.Registry
		Journal  converter.Storage
		debug    *bool
	}
)

func Execute(config *Config) error {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug flag")

	config.debug = &debug

	rootCmd.AddCommand(
		convert(config),
		currencies(config),
		showRates(config),
		override(config),
	)

	return rootCmd.Execute()
}
