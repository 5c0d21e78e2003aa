package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/govalues/bignum"
	"github.com/govalues/bignum/internal/rpn"
)

func (a *app) evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate a postfix expression",
		Long: `Evaluate an expression in postfix (reverse Polish) notation.
The arguments are joined with spaces, so an expression can be passed either
as one quoted argument or as separate tokens.

Operators: + - * / % ^ neg abs.`,
		Example: `  bigcalc eval 1.23 4.56 +
  bigcalc eval --scale 2 --round "2 3 /"
  bigcalc eval --mode int "2 100 ^"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := rpn.ParseMode(a.v.GetString("mode"))
			if err != nil {
				return err
			}
			opts := rpn.Options{
				Mode:   mode,
				Scale:  a.v.GetInt("scale"),
				Round:  a.v.GetBool("round"),
				Logger: a.logger,
			}
			expr := strings.Join(args, " ")

			a.logger.InfoContext(cmd.Context(), "evaluating", "expr", expr, "mode", mode.String(), "scale", opts.Scale, "round", opts.Round)
			res, err := rpn.Eval(cmd.Context(), expr, opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res)
			return err
		},
	}
}

func (a *app) factCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "fact N",
		Short:   "Print the factorial of N",
		Example: `  bigcalc fact 30`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := bignum.ParseInt(args[0])
			if err != nil {
				return err
			}
			k, err := n.Int64()
			if err != nil {
				return err
			}
			if k < 0 {
				return bignum.RangeError.New("factorial of negative number %v", n)
			}

			f := bignum.NewInt(1)
			for i := int64(2); i <= k; i++ {
				if i%1000 == 0 {
					if err := cmd.Context().Err(); err != nil {
						return err
					}
				}
				f = f.Mul(bignum.NewInt(i))
			}
			a.logger.InfoContext(cmd.Context(), "computed factorial", "n", k, "digits", len(f.String()))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), f)
			return err
		},
	}
}
