package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/govalues/fraction/internal/calc"
)

func evalCommand(a *app) *cobra.Command {
	var decimal bool
	cmd := &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate a prefix expression exactly",
		Long: `Evaluate an expression in prefix (Polish) notation.
Operators are + - * / and ^, operands are decimals, ratios or
variables from the config file.`,
		Example: `  fraction eval "* 10 + 1.23 4.56"
  fraction eval + 1/3 1/6`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			e := calc.New(a.logger, a.cfg.Vars)
			f, err := e.Eval(expr)
			if err != nil {
				return err
			}
			if decimal {
				fmt.Fprintln(cmd.OutOrStdout(), a.decimal(f))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), f)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&decimal, "decimal", "d", false, "print the result as a decimal")
	return cmd
}
