// Package output provides styled terminal output for pbxpatch.
//
// Commands report through these helpers instead of printing directly so
// every message shares one visual language.
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
)

// SetVerbose enables or disables verbose output.
// The CLI calls this when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a green confirmation line.
//
// Example:
//
//	output.Success("Added NetworkClient.swift")
func Success(msg string) {
	fmt.Println(successStyle.Render("✓ " + msg))
}

// Error prints a red failure line.
//
// Example:
//
//	output.Error("PBXBuildFile section not found")
func Error(msg string) {
	fmt.Println(errorStyle.Render("✗ " + msg))
}

// Warn prints a yellow caution line. Use this for conditions that do not
// stop the run but deserve attention, such as a tracked entry whose records
// are missing from the manifest.
func Warn(msg string) {
	fmt.Println(warnStyle.Render("⚠ " + msg))
}

// Info prints a cyan status line.
//
// Example:
//
//	output.Info("Nothing to do; all entries are already applied")
func Info(msg string) {
	fmt.Println(infoStyle.Render("→ " + msg))
}

// Step prints an indented gray sub-item under a preceding message.
//
// Example:
//
//	output.Step("pbxpatch apply")
func Step(msg string) {
	fmt.Println(detailStyle.Render("   " + msg))
}

// Verbose prints a gray debug line only when verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Println(detailStyle.Render("· " + msg))
	}
}
