package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "outlet",
		Short: "Inspect view route tables",
		Long: `Outlet resolves which of several sibling view templates is active
for a location and extracts its named parameters.

The CLI takes an ordered template list the same way a view set declares
it: order is significant, the last matching non-root template wins, and
"/" acts as a restrained fallback.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		resolveCmd(),
		lintCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}
