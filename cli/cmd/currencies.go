package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func currencies(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List supported currencies with their metadata and base rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			base := config.Table.BaseCode()

			fmt.Fprintf(out, "%-8s%-20s%-8s%s\n", "Code", "Name", "Symbol", "Rate vs "+base)

			for _, code := range config.Service.SupportedCodes() {
				name, symbol := "", ""
				if currency, ok := config.Registry.Get(code); ok {
					name, symbol = currency.Name, currency.Symbol
				}

				rate, err := config.Service.Rate(base, code)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "%-8s%-20s%-8s%v\n", code, name, symbol, rate)
			}

			return nil
		},
	}
}
