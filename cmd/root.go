// Package cmd defines the command line interface. Running the bare binary
// opens the interactive board; subcommands cover scripted pipeline
// operations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hireloop/funnel/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "funnel",
	Short: "Funnel - a terminal hiring pipeline board",
	Long: `Funnel is a terminal kanban board for a recruiting pipeline.
Candidates move through hiring stages from first contact to offer;
run without arguments to open the interactive board.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
}

func Execute() error {
	return rootCmd.Execute()
}
