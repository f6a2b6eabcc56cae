package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/outlet-dev/outlet/pkg/viewset"
)

// lintCmd checks a template list for unreachable or malformed entries.
func lintCmd() *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "lint TEMPLATE...",
		Short: "Check a template list for unreachable or malformed entries",
		Long: `Lint flags templates that can never become active under the
last-match-wins rule (duplicates, entries shadowed by a later sibling)
and parameters with empty names.

Example:
  outlet lint / "users/:id" users`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set := viewset.New(base, args)
			diags := viewset.Lint(set)
			if len(diags) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			}

			out := cmd.OutOrStdout()
			for _, d := range diags {
				fmt.Fprintf(out, "%s\n", d.Error())
				if d.Suggestion != "" {
					fmt.Fprintf(out, "  hint: %s\n", d.Suggestion)
				}
			}
			return fmt.Errorf("%d problem(s) found", len(diags))
		},
	}

	cmd.Flags().StringVar(&base, "base", "/", "basepath the templates are compiled against")

	return cmd
}
