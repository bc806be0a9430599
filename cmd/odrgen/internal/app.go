// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/CognitoIQ/odrgen/internal/commands"
)

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (arguments, env lookup).
func Run(ctx context.Context, args []string, getenv func(string) string) error {
	rootCmd := commands.NewRootCmd(getenv)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
