package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Wiskerke/lock-generations/internal/nixos"
	"github.com/Wiskerke/lock-generations/internal/output"
	"github.com/Wiskerke/lock-generations/internal/protect"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List protected generations",
	Long: `List all protected generations in ascending order.

When the generation list is available, entries that no longer exist
are marked; they are harmless and can be removed with unprotect.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := statePath()
		if err != nil {
			return err
		}
		return runList(path, nixos.NewNixEnv(profileFlag), output.IsColorEnabled(), cmd.OutOrStdout())
	},
}

func runList(path string, runner nixos.Runner, color bool, out io.Writer) error {
	state, err := protect.Load(path)
	if err != nil {
		return err
	}

	// Existence markers are best effort: listing protections still
	// works on a machine where nix-env is unavailable.
	var existing map[int]bool
	if runner != nil {
		if generations, err := runner.ListGenerations(); err == nil {
			existing = make(map[int]bool, len(generations))
			for _, g := range generations {
				existing[g.Number] = true
			}
		}
	}

	fmt.Fprint(out, output.RenderProtectedList(state.Generations(), existing, color))
	return nil
}
