package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hireloop/funnel/internal/models"
	"github.com/hireloop/funnel/internal/registry"
)

var stageAddColor string

var stageCmd = &cobra.Command{
	Use:   "stage",
	Short: "Manage pipeline stages",
}

var stageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stages in board order",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cliTimeout)
		defer cancel()

		e, cleanup, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		for _, stage := range e.Registry.Stages() {
			kind := "built-in"
			if stage.IsCustom {
				kind = "custom"
			}
			terminal := ""
			if stage.IsTerminal {
				terminal = "  terminal"
			}
			fmt.Printf("%d  %-20s %-10s %s%s\n", stage.Order, stage.Name, stage.ID, kind, terminal)
		}
		return nil
	},
}

var stageAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom stage at the end of the board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cliTimeout)
		defer cancel()

		e, cleanup, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		stage, err := e.Registry.AddCustomStage(ctx, args[0], models.StageColor(stageAddColor))
		if err != nil {
			return fmt.Errorf("failed to add stage: %w", err)
		}
		fmt.Printf("added stage %q (%s) at position %d\n", stage.Name, stage.ID, stage.Order)
		return nil
	},
}

var stageRemoveCmd = &cobra.Command{
	Use:   "remove <stage>",
	Short: "Remove a custom stage; its candidates move to the first stage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cliTimeout)
		defer cancel()

		e, cleanup, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		stage, err := findStage(e.Registry, args[0])
		if err != nil {
			return err
		}
		if err := e.Registry.RemoveStage(ctx, stage.ID); err != nil {
			return fmt.Errorf("failed to remove stage: %w", err)
		}
		fmt.Printf("removed stage %q; its candidates moved to %q\n", stage.Name, e.Registry.Fallback().Name)
		return nil
	},
}

// findStage resolves a CLI stage argument against the registry, matching
// the stage ID first and the display name second.
func findStage(reg *registry.Registry, arg string) (models.Stage, error) {
	if stage, err := reg.Stage(strings.ToLower(strings.TrimSpace(arg))); err == nil {
		return stage, nil
	}
	for _, stage := range reg.Stages() {
		if strings.EqualFold(stage.Name, arg) {
			return stage, nil
		}
	}
	return models.Stage{}, fmt.Errorf("unknown stage %q", arg)
}

func init() {
	stageAddCmd.Flags().StringVar(&stageAddColor, "color", "slate",
		"stage color (slate, blue, cyan, purple, yellow, orange, green, red)")

	stageCmd.AddCommand(stageListCmd)
	stageCmd.AddCommand(stageAddCmd)
	stageCmd.AddCommand(stageRemoveCmd)
	rootCmd.AddCommand(stageCmd)
}
