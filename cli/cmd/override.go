package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func override(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "override [from] [to] [rate]",
		Short: "Register a custom from->to rate that shadows the derived one",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from := strings.ToUpper(args[0])
			to := strings.ToUpper(args[1])

			rate, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid rate %q: %w", args[2], err)
			}

			if err := config.Table.SetOverride(from, to, rate); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Custom rate set: 1 %s = %v %s\n", from, rate, to)

			if from == to {
				// Identity pairs resolve to 1 before the override lookup.
				fmt.Fprintln(out, "note: identity conversions always resolve to 1; this override is never consulted")
			}

			return nil
		},
	}
}
