package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newEvalCommand() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "eval [expression]",
		Short: "Evaluate a single expression",
		Long: `Evaluate a single expression against the chosen numeric kind.

Mirrors the original tool's "eval --decimal|--bigdecimal|--complex <expr>"
command.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := resolveKind(kind)
			if err != nil {
				return err
			}

			expression := strings.Join(args, " ")
			result, err := ev.Eval(expression)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", defaultKind, "numeric kind: decimal, float, fixed, complex, binary")
	return cmd
}
