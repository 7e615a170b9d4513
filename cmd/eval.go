package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SystemBuilders/chains/internal/rpn"
)

func newEvalCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval EXPRESSION...",
		Short: "Evaluate a postfix expression",
		Long: `Evaluate an arithmetic expression written in reverse Polish notation.

Tokens may be passed as separate arguments or as one quoted argument.
Flags are only read before the first token, so negative operands after it
need no escaping. Put "--" first when the expression starts with one.
Operators: + - * / _ (floor division) ^ (power).`,
		Example: `  chains eval 3 4 + 2 '*'
  chains eval "5 1 2 + 4 * + 3 -"
  chains eval 3 -1 +
  chains eval -- -1 2 +`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(v, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			result, err := rpn.NewEvaluator(log).EvaluateString(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rpn.FormatResult(result))
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
