package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newContextCommand() *cobra.Command {
	var kind string
	var listFunctions bool
	var listConstants bool

	cmd := &cobra.Command{
		Use:   "context",
		Short: "Print the constants and functions a numeric kind's Context registers",
		Long: `Prints the constants and functions of a context; operators are not listed.

Mirrors the original tool's "eval --context | --ctx [--OPTION]" command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := resolveKind(kind)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "kind: %s\n", kindDisplayName(kind))
			if path := configFilePath(); path != "" {
				fmt.Fprintf(out, "config: %s\n", path)
			}

			if listConstants || !listFunctions {
				fmt.Fprintln(out, "constants:")
				for _, name := range sortedCopy(ev.Constants()) {
					fmt.Fprintf(out, "  %s\n", name)
				}
			}

			if listFunctions || !listConstants {
				fmt.Fprintln(out, "functions:")
				for _, name := range sortedCopy(ev.Functions()) {
					fmt.Fprintf(out, "  %s\n", name)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", defaultKind, "numeric kind: decimal, float, fixed, complex, binary")
	cmd.Flags().BoolVar(&listFunctions, "list-functions", false, "print only the registered functions")
	cmd.Flags().BoolVar(&listConstants, "list-constants", false, "print only the registered constants")
	return cmd
}

func kindDisplayName(kind string) string {
	if strings.TrimSpace(kind) == "" {
		return defaultKind
	}
	return kind
}
