package app

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Wiskerke/lock-generations/internal/nixos"
	"github.com/Wiskerke/lock-generations/internal/output"
	"github.com/Wiskerke/lock-generations/internal/plan"
	"github.com/Wiskerke/lock-generations/internal/protect"
	"github.com/Wiskerke/lock-generations/internal/store"
)

var (
	cleanKeepLast int
	cleanDryRun   bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete unprotected generations",
	Long: `Delete all generations except the current one, protected ones, and
optionally the most recent N.

Deletion is delegated to nix-env. With --dry-run the exact delete set
and the exact nix-env command are printed and nothing is deleted.

Examples:
  # Preview without deleting
  lock-generations clean --dry-run

  # Keep the 5 most recent generations
  lock-generations clean --keep-last 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := statePath()
		if err != nil {
			return err
		}
		dbPath, err := historyPath()
		if err != nil {
			return err
		}
		history, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer history.Close()

		runner := nixos.NewNixEnv(profileFlag)
		return runClean(runner, history, path, runner.Profile(), cleanKeepLast, cleanDryRun, cmd.OutOrStdout())
	},
}

func init() {
	cleanCmd.Flags().IntVar(&cleanKeepLast, "keep-last", 0, "keep the last N most recent generations")
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "show what would be deleted without deleting")
}

// runClean computes the delete set and either previews it (dry run) or
// hands it to the runner. history may be nil to skip recording.
func runClean(runner nixos.Runner, history *store.Store, path, profile string, keepLast int, dryRun bool, out io.Writer) error {
	if keepLast < 0 {
		return fmt.Errorf("invalid --keep-last %d: must be non-negative", keepLast)
	}

	state, err := protect.Load(path)
	if err != nil {
		return err
	}

	current, err := runner.CurrentGeneration()
	if err != nil {
		return err
	}

	generations, err := runner.ListGenerations()
	if err != nil {
		return err
	}
	numbers := make([]int, len(generations))
	for i, g := range generations {
		numbers[i] = g.Number
	}

	result, err := plan.Select(numbers, current, state.IsProtected, keepLast)
	if err != nil {
		return err
	}

	if len(result.Delete) == 0 {
		fmt.Fprintln(out, "No generations to delete")
		return nil
	}

	if dryRun {
		fmt.Fprintf(out, "[DRY RUN] Would delete %d generation(s): %s\n",
			len(result.Delete), output.FormatNumbers(result.Delete))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Command that would be executed:")
		fmt.Fprintf(out, "  %s\n", nixos.DeleteCommandLine(profile, result.Delete))
	} else {
		fmt.Fprintf(out, "Deleting %d generation(s): %s\n",
			len(result.Delete), output.FormatNumbers(result.Delete))
		if err := runner.DeleteGenerations(result.Delete); err != nil {
			return err
		}
		fmt.Fprintf(out, "Successfully deleted %d generation(s)\n", len(result.Delete))
	}

	if history != nil {
		run := &store.CleanRun{
			RanAt:    time.Now().UTC(),
			KeepLast: keepLast,
			DryRun:   dryRun,
			Deleted:  result.Delete,
		}
		if _, err := history.RecordCleanRun(run); err != nil {
			return fmt.Errorf("failed to record clean run: %w", err)
		}
	}

	return nil
}
