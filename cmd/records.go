package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hireloop/funnel/internal/database"
	"github.com/hireloop/funnel/internal/drag"
)

var (
	listStageFilter string
	addPosting      string
	addResume       string
	addMatchScore   int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications grouped by stage",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cliTimeout)
		defer cancel()

		e, cleanup, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		records, err := e.Apps.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list applications: %w", err)
		}
		names, err := e.Candidates.DisplayNames(ctx)
		if err != nil {
			return fmt.Errorf("failed to load candidate names: %w", err)
		}

		var filterID string
		if listStageFilter != "" {
			stage, err := findStage(e.Registry, listStageFilter)
			if err != nil {
				return err
			}
			filterID = stage.ID
		}

		for _, stage := range e.Registry.Stages() {
			if filterID != "" && stage.ID != filterID {
				continue
			}
			printed := false
			for _, rec := range records {
				if e.Registry.Resolve(rec.Status) != stage.ID {
					continue
				}
				if !printed {
					fmt.Printf("%s\n", stage.Name)
					printed = true
				}
				name := names[rec.ApplicantID]
				if name == "" {
					name = rec.ApplicantID
				}
				fmt.Printf("  %-36s %-24s %s\n", rec.ID, name, rec.PostingID)
			}
			if filterID != "" && !printed {
				fmt.Printf("%s\n  (empty)\n", stage.Name)
			}
		}
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add <candidate name>",
	Short: "Register a new application in the first stage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cliTimeout)
		defer cancel()

		e, cleanup, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		rec, err := e.Apps.Create(ctx, database.CreateApplicationRequest{
			CandidateName: args[0],
			PostingID:     addPosting,
			ResumeRef:     addResume,
			Status:        e.Registry.Fallback().ID,
			MatchScore:    addMatchScore,
		})
		if err != nil {
			return fmt.Errorf("failed to create application: %w", err)
		}
		fmt.Printf("created application %s in %q\n", rec.ID, e.Registry.Fallback().Name)
		return nil
	},
}

var moveCmd = &cobra.Command{
	Use:   "move <application-id> <stage>",
	Short: "Move an application to the given stage",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cliTimeout)
		defer cancel()

		e, cleanup, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		detail, err := e.Apps.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to load application: %w", err)
		}
		target, err := findStage(e.Registry, args[1])
		if err != nil {
			return err
		}

		current := e.Registry.Resolve(detail.Status)
		if current == target.ID {
			fmt.Printf("%s is already in %q\n", detail.DisplayName, target.Name)
			return nil
		}

		t := drag.Transition{RecordID: detail.ID, From: current, To: target.ID}
		if err := e.Controller.Persist(ctx, t, ""); err != nil {
			return err
		}
		fmt.Printf("moved %s to %q\n", detail.DisplayName, target.Name)
		return nil
	},
}

var advanceCmd = &cobra.Command{
	Use:   "advance <application-id>",
	Short: "Move an application one stage forward",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cliTimeout)
		defer cancel()

		e, cleanup, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		detail, err := e.Apps.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to load application: %w", err)
		}

		t, ok := e.Controller.Advance(&detail.ApplicationRecord)
		if !ok {
			fmt.Printf("%s is already at the final stage\n", detail.DisplayName)
			return nil
		}
		if err := e.Controller.Persist(ctx, *t, ""); err != nil {
			return err
		}
		stage, _ := e.Registry.Stage(t.To)
		fmt.Printf("advanced %s to %q\n", detail.DisplayName, stage.Name)
		return nil
	},
}

var rejectCmd = &cobra.Command{
	Use:   "reject <application-id>",
	Short: "Move an application to the rejected stage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cliTimeout)
		defer cancel()

		e, cleanup, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		detail, err := e.Apps.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to load application: %w", err)
		}

		t, ok := e.Controller.Reject(&detail.ApplicationRecord)
		if !ok {
			fmt.Printf("%s is already rejected\n", detail.DisplayName)
			return nil
		}
		if err := e.Controller.Persist(ctx, *t, "rejected by recruiter"); err != nil {
			return err
		}
		fmt.Printf("rejected %s\n", detail.DisplayName)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <application-id>",
	Short: "Show an application with its full status history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cliTimeout)
		defer cancel()

		e, cleanup, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		detail, err := e.Apps.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to load application: %w", err)
		}

		stageName := e.Registry.Resolve(detail.Status)
		if stage, err := e.Registry.Stage(stageName); err == nil {
			stageName = stage.Name
		}

		fmt.Printf("%s\n", detail.DisplayName)
		fmt.Printf("  id:      %s\n", detail.ID)
		fmt.Printf("  stage:   %s\n", stageName)
		fmt.Printf("  posting: %s\n", detail.PostingID)
		fmt.Printf("  applied: %s\n", detail.AppliedAt.Format("2006-01-02 15:04"))
		if len(detail.History) > 0 {
			fmt.Println("  history:")
			for _, entry := range detail.History {
				line := fmt.Sprintf("    %s  %s", entry.Timestamp.Format("2006-01-02 15:04"), entry.Status)
				if entry.Note != "" {
					line += "  (" + entry.Note + ")"
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listStageFilter, "stage", "", "only show this stage")
	addCmd.Flags().StringVar(&addPosting, "posting", "", "job posting identifier")
	addCmd.Flags().StringVar(&addResume, "resume", "", "path to the markdown resume")
	addCmd.Flags().IntVar(&addMatchScore, "match", -1, "match score 0-100, -1 when unscored")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(advanceCmd)
	rootCmd.AddCommand(rejectCmd)
	rootCmd.AddCommand(showCmd)
}
