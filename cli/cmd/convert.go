package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// formatAmount renders a monetary amount with two decimals for display.
// The conversion core itself never rounds.
func formatAmount(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}

func convert(config *Config) *cobra.Command {
	var customRate float64

	convertCmd := &cobra.Command{
		Use:   "convert [from] [to] [amount]",
		Short: "Convert an amount between two currency codes",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from := strings.ToUpper(args[0])
			to := strings.ToUpper(args[1])

			amount, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[2], err)
			}

			if cmd.Flags().Changed("rate") {
				if err := config.Table.SetOverride(from, to, customRate); err != nil {
					return err
				}
			}

			conversion, err := config.Service.Convert(from, to, amount)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n",
				formatAmount(conversion.Amount), from,
				formatAmount(conversion.Result), to,
			)

			if *config.debug {
				fmt.Fprintf(cmd.OutOrStdout(), "rate: %v, journal entries: %d\n",
					conversion.Rate, config.Journal.Len())
			}

			return nil
		},
	}

	convertCmd.Flags().Float64Var(&customRate, "rate", 0, "Override the from->to rate before converting")

	return convertCmd
}
