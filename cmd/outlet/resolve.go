package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/outlet-dev/outlet/pkg/viewset"
)

// resolveCmd resolves the active template for a location.
func resolveCmd() *cobra.Command {
	var base string
	var location string

	cmd := &cobra.Command{
		Use:   "resolve TEMPLATE...",
		Short: "Resolve the active template for a location",
		Long: `Resolve compiles the templates against the basepath in the given
order and reports which one is active for the location, plus any named
parameters it captures.

Example:
  outlet resolve --location /users/42 / about "users/:id"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set := viewset.New(base, args)
			active := set.Resolve(location, viewset.NoneActive)

			out := cmd.OutOrStdout()
			if active == viewset.NoneActive {
				fmt.Fprintf(out, "no active template for %s\n", location)
				return nil
			}

			fmt.Fprintf(out, "active: %d (%s)\n", active, set.Template(active))
			params := set.Params(active, location)
			if params == nil {
				return nil
			}

			// Stable output order for scripting.
			names := make([]string, 0, len(params))
			for name := range params {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(out, "param %s = %s\n", name, params[name])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "/", "basepath the templates are compiled against")
	cmd.Flags().StringVar(&location, "location", "/", "location to resolve (pathname plus optional query)")

	return cmd
}
