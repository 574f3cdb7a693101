// Package app wires the lock-generations subcommands. Commands parse
// flags and resolve paths, then hand off to run functions that take
// their collaborators (generation runner, history store) as explicit
// parameters so tests can inject in-memory doubles.
package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Wiskerke/lock-generations/internal/nixos"
	"github.com/Wiskerke/lock-generations/internal/protect"
)

var profileFlag string

// RootCmd is the root command for lock-generations
var RootCmd = &cobra.Command{
	Use:   "lock-generations",
	Short: "Manage NixOS system generations with selective protection",
	Long: `lock-generations keeps old NixOS system generations you care about
while cleaning up the rest.

Generations are deleted by nix-env; this tool only decides which ones
are safe to remove. The current generation is never deleted, protected
generations are never deleted, and --keep-last preserves the most
recent N regardless of protection.

Examples:
  # Protect generation 42 from cleanup
  lock-generations protect 42

  # Show protected generations
  lock-generations list

  # Preview a cleanup that keeps the last 5 generations
  lock-generations clean --keep-last 5 --dry-run

  # Actually clean up
  lock-generations clean --keep-last 5

  # Review past cleanups
  lock-generations history`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&profileFlag, "profile", nixos.DefaultProfile, "nix profile to operate on")

	RootCmd.SuggestionsMinimumDistance = 2

	RootCmd.AddCommand(protectCmd)
	RootCmd.AddCommand(unprotectCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(cleanCmd)
	RootCmd.AddCommand(historyCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// statePath resolves the protected-state file for the current environment.
func statePath() (string, error) {
	path, err := protect.CaptureEnv().StatePath()
	if err != nil {
		return "", fmt.Errorf("failed to resolve state path: %w", err)
	}
	return path, nil
}

// historyPath resolves the clean-run history database for the current
// environment.
func historyPath() (string, error) {
	path, err := protect.CaptureEnv().HistoryPath()
	if err != nil {
		return "", fmt.Errorf("failed to resolve history path: %w", err)
	}
	return path, nil
}

// parseGeneration validates a user-supplied generation identifier: a
// non-negative integer that fits the range nix-env assigns.
func parseGeneration(arg string) (int, error) {
	number, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid generation %q: expected a non-negative integer", arg)
	}
	return int(number), nil
}
