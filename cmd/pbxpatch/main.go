package main

import (
	"os"

	"pbxpatch/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.InitCmd())
	rootCmd.AddCommand(commands.ApplyCmd())
	rootCmd.AddCommand(commands.RevertCmd())
	rootCmd.AddCommand(commands.StatusCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
