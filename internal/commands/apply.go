package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pbxpatch/internal/diffview"
	"pbxpatch/internal/output"
	"pbxpatch/internal/patch"
)

// ApplyCmd creates the 'apply' command
func ApplyCmd() *cobra.Command {
	var configPath, project string
	var dryRun, showDiff bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Add the planned files to the project manifest",
		Long: `Apply reads the plan and splices the records each file needs into the
project manifest.

This command will:
1. Add a PBXFileReference record for every file
2. Add the file to the target group's children
3. For compiled files, add a PBXBuildFile record and a build phase line
4. Record the generated identifiers under "applied:" in the plan

Files already applied in an earlier run are skipped, so re-running apply
is safe. The manifest is written atomically; on any failure nothing is
written at all.

The plan path comes from --config or the PBXPATCH_CONFIG environment
variable, and --project overrides the manifest path inside the plan.

Example:
  pbxpatch apply
  pbxpatch apply --dry-run --diff
  pbxpatch apply --config ci/pbxpatch.yml`,
		Args: cobra.NoArgs,
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

			patcher := patch.NewPatcher(plan)
			res, err := patcher.Apply(cmd.Context(), dryRun)
			if err != nil {
				return fmt.Errorf("applying plan: %w", err)
			}

			if showDiff && res.Changed {
				diff := diffview.Unified(plan.Project, res.Before, res.After, nil)
				if err := diffview.Show(plan.Project, diff); err != nil {
					return err
				}
			}

			reportApply(plan, res, dryRun)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", patch.DefaultPlanFile, "Plan file to apply")
	cmd.Flags().StringVar(&project, "project", "", "Manifest path (overrides the plan)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would change without writing")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Show the manifest changes as a diff")

	return cmd
}

func reportApply(plan *patch.Plan, res *patch.ApplyResult, dryRun bool) {
	for _, e := range res.Entries {
		switch {
		case e.Skipped:
			output.Info(fmt.Sprintf("%s already applied, skipping", e.Name))
		case dryRun:
			output.Info(fmt.Sprintf("Would add %s (%s)", e.Name, e.Path))
		default:
			output.Success(fmt.Sprintf("Added %s (%s)", e.Name, e.Path))
		}
		if !e.Skipped {
			if e.BuildFile != "" {
				output.Verbose(fmt.Sprintf("%s: file ref %s, build file %s", e.Name, e.FileRef, e.BuildFile))
			} else {
				output.Verbose(fmt.Sprintf("%s: file ref %s, not compiled", e.Name, e.FileRef))
			}
		}
	}

	added := res.Added()
	switch {
	case dryRun && added > 0:
		output.Info(fmt.Sprintf("%s would be added to %s", plural(added, "file", "files"), plan.Project))
	case added > 0:
		output.Success(fmt.Sprintf("%s added to %s", plural(added, "file", "files"), plan.Project))
	default:
		output.Info("Nothing to do, every planned file is already applied")
	}
}
