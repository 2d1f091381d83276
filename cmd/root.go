// SPDX-License-Identifier: MIT

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Running the root without a
// subcommand tiles the built-in example.
func newRootCmd() *cobra.Command {
	opts := &tileOptions{}
	root := &cobra.Command{
		Use:   "sqtile",
		Short: "Partition an occupancy grid into labeled square tiles",
		Long: `sqtile scans a 0/1 occupancy grid top-left to bottom-right and covers
every floor cell with greedily placed square tiles. Each tile gets a label
in discovery order; walls are printed with a marker.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTile(cmd, opts, "")
		},
	}
	opts.bind(root)
	root.AddCommand(newTileCmd(), newExampleCmd())

	return root
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
