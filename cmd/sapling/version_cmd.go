package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version can be set at build time with -ldflags "-X main.version=..."
var version = "v0.1.0"

const versionTemplate = "{{.Name}} {{.Version}}\n"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of sapling",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cmd.Root().Name(), cmd.Root().Version)
		},
	}
}
