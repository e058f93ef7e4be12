package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pbxpatch/internal/diffview"
	"pbxpatch/internal/input"
	"pbxpatch/internal/output"
	"pbxpatch/internal/patch"
)

// RevertCmd creates the 'revert' command
func RevertCmd() *cobra.Command {
	var configPath, project string
	var rawIDs []string
	var yes, dryRun, showDiff bool

	cmd := &cobra.Command{
		Use:   "revert [file ...]",
		Short: "Remove previously added files from the project manifest",
		Long: `Revert removes every manifest line carrying the identifiers recorded
for the named files, then drops them from the plan's applied ledger.
With no arguments it reverts every tracked entry.

Records added outside the ledger can be removed with --id and the raw
24-digit identifier; lines containing that identifier are removed
wherever they appear.

Example:
  pbxpatch revert NetworkClient.swift
  pbxpatch revert --yes
  pbxpatch revert --id 3872D760C191414F9ED53AD4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := patch.NewSettings()
			if err := settings.Bind(cmd); err != nil {
				return err
			}

			plan, err := patch.LoadPlan(settings.PlanPath())
			if err != nil {
				return err
			}
			if override := settings.ProjectOverride(); override != "" {
				plan.Project = override
			}

			names := args
			if len(names) == 0 && len(rawIDs) == 0 {
				names = plan.AppliedNames()
			}
			if len(names) == 0 && len(rawIDs) == 0 {
				output.Info("Nothing to revert, the applied ledger is empty")
				return nil
			}

			if !yes && !dryRun {
				count := len(names) + len(rawIDs)
				prompt := fmt.Sprintf("Remove %s from %s?", plural(count, "entry", "entries"), plan.Project)
				if !input.Confirm(prompt, false) {
					output.Info("Revert cancelled")
					return nil
				}
			}

			patcher := patch.NewPatcher(plan)
			res, err := patcher.Revert(cmd.Context(), names, rawIDs, dryRun)
			if err != nil {
				return fmt.Errorf("reverting: %w", err)
			}

			if showDiff && res.Changed {
				diff := diffview.Unified(plan.Project, res.Before, res.After, nil)
				if err := diffview.Show(plan.Project, diff); err != nil {
					return err
				}
			}

			reportRevert(plan, res, dryRun)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", patch.DefaultPlanFile, "Plan file to read")
	cmd.Flags().StringVar(&project, "project", "", "Manifest path (overrides the plan)")
	cmd.Flags().StringSliceVar(&rawIDs, "id", nil, "Raw identifiers to remove (repeatable)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would change without writing")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Show the manifest changes as a diff")

	return cmd
}

func reportRevert(plan *patch.Plan, res *patch.RevertResult, dryRun bool) {
	for _, name := range res.Names {
		if dryRun {
			output.Info(fmt.Sprintf("Would revert %s", name))
		} else {
			output.Success(fmt.Sprintf("Reverted %s", name))
		}
	}

	switch {
	case dryRun:
		output.Info(fmt.Sprintf("%s would be removed from %s", plural(res.LinesRemoved, "line", "lines"), plan.Project))
	case res.Changed:
		output.Success(fmt.Sprintf("%s removed from %s", plural(res.LinesRemoved, "line", "lines"), plan.Project))
	default:
		output.Warn("No matching lines found in the manifest")
	}
}
