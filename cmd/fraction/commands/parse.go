package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/govalues/fraction"
)

func parseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse TEXT...",
		Short: "Parse decimals or ratios and show their exact value",
		Example: `  fraction parse 0.25 -- -0.1
  fraction parse 6/8`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				var f fraction.Fraction
				if err := f.UnmarshalText([]byte(arg)); err != nil {
					return fmt.Errorf("parsing %q: %w", arg, err)
				}
				a.logger.Debug().Str("text", arg).Stringer("value", f).Msg("parsed")

				g, exact := f.Float64()
				fmt.Fprintln(out, f)
				fmt.Fprintf(out, "  numerator:   %d\n", f.Num())
				fmt.Fprintf(out, "  denominator: %d\n", f.Den())
				fmt.Fprintf(out, "  decimal:     %s\n", a.decimal(f))
				fmt.Fprintf(out, "  float64:     %v (exact: %v)\n", g, exact)
			}
			return nil
		},
	}
}
