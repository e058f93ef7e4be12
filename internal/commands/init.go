package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pbxpatch/internal/input"
	"pbxpatch/internal/output"
	"pbxpatch/internal/patch"
)

// InitCmd creates the 'init' command
func InitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [project.pbxproj]",
		Short: "Create a starter pbxpatch.yml",
		Long: `Init writes a pbxpatch.yml template into the working directory. Without
an argument it scans the tree for *.xcodeproj/project.pbxproj and
prompts when more than one project is found.

Example:
  pbxpatch init
  pbxpatch init iosApp/iosApp.xcodeproj/project.pbxproj`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(patch.DefaultPlanFile); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", patch.DefaultPlanFile)
			}

			var project string
			if len(args) == 1 {
				project = args[0]
				if _, err := os.Stat(project); err != nil {
					return fmt.Errorf("project file not found: %s", project)
				}
			} else {
				projects, err := patch.DiscoverProjects(".")
				if err != nil {
					return fmt.Errorf("scanning for projects: %w", err)
				}
				switch len(projects) {
				case 0:
					return fmt.Errorf("no project.pbxproj found; pass the path explicitly")
				case 1:
					project = projects[0]
					output.Info("Found " + project)
				default:
					output.Info("Multiple projects found:")
					for _, p := range projects {
						output.Step(p)
					}
					project = input.Prompt("Project file", projects[0])
				}
			}

			group := input.Prompt("Target group", "Sources")
			phase := input.Prompt("Build phase", patch.DefaultPhase)

			if err := patch.WritePlanTemplate(patch.DefaultPlanFile, project, group, phase); err != nil {
				return err
			}

			output.Success("Created " + patch.DefaultPlanFile)
			output.Info("Next steps:")
			output.Step("1. List your files under files:")
			output.Step("2. Run pbxpatch apply --dry-run")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing plan")

	return cmd
}
