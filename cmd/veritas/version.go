package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Harshitk-cp/veritas/internal/buildconfig"
)

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("veritas %s (%s)\n", buildconfig.Version(), buildconfig.Commit())
	},
}
