package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func showRates(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "rates [from]",
		Short: "Show resolved rates from one currency to every supported code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from := config.Table.BaseCode()
			if len(args) == 1 {
				from = strings.ToUpper(args[0])
			}

			out := cmd.OutOrStdout()

			for _, to := range config.Service.SupportedCodes() {
				rate, err := config.Service.Rate(from, to)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "1 %s = %v %s\n", from, rate, to)
			}

			return nil
		},
	}
}
