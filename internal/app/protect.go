package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Wiskerke/lock-generations/internal/protect"
)

var protectCmd = &cobra.Command{
	Use:   "protect <generation>",
	Short: "Protect a generation from cleanup",
	Long: `Protect a generation so clean never deletes it.

The generation does not have to exist yet: protection is stored
independently of the live generation list, and stale entries are
ignored at cleanup time.

Examples:
  lock-generations protect 42`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := parseGeneration(args[0])
		if err != nil {
			return err
		}
		path, err := statePath()
		if err != nil {
			return err
		}
		return runProtect(path, number, cmd.OutOrStdout())
	},
}

var unprotectCmd = &cobra.Command{
	Use:   "unprotect <generation>",
	Short: "Remove protection from a generation",
	Long: `Remove protection from a generation so clean may delete it again.

Unprotecting a generation that was never protected is a no-op.

Examples:
  lock-generations unprotect 42`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := parseGeneration(args[0])
		if err != nil {
			return err
		}
		path, err := statePath()
		if err != nil {
			return err
		}
		return runUnprotect(path, number, cmd.OutOrStdout())
	},
}

func runProtect(path string, number int, out io.Writer) error {
	state, err := protect.Load(path)
	if err != nil {
		return err
	}

	if !state.Protect(number) {
		fmt.Fprintf(out, "Generation %d is already protected\n", number)
		return nil
	}

	if err := state.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "Protected generation %d\n", number)
	return nil
}

func runUnprotect(path string, number int, out io.Writer) error {
	state, err := protect.Load(path)
	if err != nil {
		return err
	}

	if !state.Unprotect(number) {
		fmt.Fprintf(out, "Generation %d was not protected\n", number)
		return nil
	}

	if err := state.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "Unprotected generation %d\n", number)
	return nil
}
