package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pbxpatch"
	"pbxpatch/internal/output"
)

// RootCmd creates the root command for the pbxpatch CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "pbxpatch",
		Short: "Add and remove source files in Xcode project manifests",
		Long: `pbxpatch edits a project.pbxproj directly. For every file in its plan
it writes the records Xcode expects: a PBXFileReference entry, a line in
the target group's children, and for compiled files a PBXBuildFile entry
plus a line in the build phase. The generated identifiers are tracked so
revert can remove exactly what apply added.

Runs are idempotent and all-or-nothing: applying the same plan twice
changes nothing, and any failure leaves the manifest untouched.`,
		Version: pbxpatch.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

// plural formats a count with the right noun form.
func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, pluralForm)
}
