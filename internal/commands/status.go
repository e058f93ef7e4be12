package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pbxpatch/internal/output"
	"pbxpatch/internal/patch"
)

// StatusCmd creates the 'status' command
func StatusCmd() *cobra.Command {
	var configPath, project string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Verify tracked entries against the project manifest",
		Long: `Status checks every entry in the applied ledger against the manifest.
An intact entry still has its file reference record, its group children
line, and for compiled files its build file record and build phase line.

Exits non-zero when any tracked record is missing, which makes it
usable as a guard in CI.

Example:
  pbxpatch status`,
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

			if len(plan.Applied) == 0 {
				output.Info("No entries tracked in " + plan.Path())
				return nil
			}

			patcher := patch.NewPatcher(plan)
			res, err := patcher.Verify()
			if err != nil {
				return fmt.Errorf("verifying manifest: %w", err)
			}

			for _, check := range res.Checks {
				if check.OK() {
					output.Success(check.Name + " intact")
					output.Verbose(fmt.Sprintf("%s: %v", check.Name, check.Entry.Identifiers()))
					continue
				}
				output.Warn(check.Name + " has missing records:")
				for _, miss := range check.Missing() {
					output.Step(miss)
				}
			}

			if !res.Clean() {
				return fmt.Errorf("manifest out of sync with the applied ledger; run apply or revert to reconcile")
			}
			output.Info(plural(len(res.Checks), "entry", "entries") + " verified against " + plan.Project)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", patch.DefaultPlanFile, "Plan file to read")
	cmd.Flags().StringVar(&project, "project", "", "Manifest path (overrides the plan)")

	return cmd
}
