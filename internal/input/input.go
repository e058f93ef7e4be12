// Package input provides interactive prompts for pbxpatch commands.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// stdin is swapped out in tests.
	stdin io.Reader = os.Stdin
)

// Prompt asks for a line of text and returns defaultValue when the user
// just presses Enter.
//
// Example:
//
//	project := input.Prompt("Project file", "App.xcodeproj/project.pbxproj")
func Prompt(message, defaultValue string) string {
	if defaultValue != "" {
		fmt.Print(promptStyle.Render(message) + " " +
			hintStyle.Render("("+defaultValue+")") + ": ")
	} else {
		fmt.Print(promptStyle.Render(message) + ": ")
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && line == "" {
		return defaultValue
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue
	}
	return line
}

// Confirm asks a yes/no question. Answers y/yes (any case) count as yes;
// a bare Enter returns defaultYes.
//
// Example:
//
//	if input.Confirm("Remove 2 entries from project.pbxproj?", false) { ... }
func Confirm(message string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	fmt.Print(promptStyle.Render(message) + " " + hintStyle.Render(hint) + ": ")

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && line == "" {
		return defaultYes
	}
	line = strings.TrimSpace(strings.ToLower(line))
	if line == "" {
		return defaultYes
	}
	return line == "y" || line == "yes"
}
