package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Wiskerke/lock-generations/internal/output"
	"github.com/Wiskerke/lock-generations/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past clean runs",
	Long: `Show past clean runs, newest first, including dry runs.

Each entry records when the run happened, its --keep-last setting, and
exactly which generations were deleted (or would have been, for a dry
run).

Examples:
  lock-generations history
  lock-generations history --limit 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := historyPath()
		if err != nil {
			return err
		}
		history, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer history.Close()

		return runHistory(history, historyLimit, output.IsColorEnabled(), cmd.OutOrStdout())
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to show (0 for all)")
}

func runHistory(history *store.Store, limit int, color bool, out io.Writer) error {
	runs, err := history.ListCleanRuns(limit)
	if err != nil {
		return err
	}
	fmt.Fprint(out, output.RenderHistory(runs, color))
	return nil
}
