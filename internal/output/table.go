// Package output renders lock-generations results for the terminal.
// Tables use plain ASCII; ANSI colors are emitted only when stdout is a
// TTY and NO_COLOR is unset, so output stays scriptable.
package output

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/Wiskerke/lock-generations/internal/store"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// FormatNumbers joins generation numbers with single spaces, the same
// shape nix-env accepts as a --delete-generations argument.
func FormatNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

// RenderProtectedList renders the protected generations, marking the
// ones that no longer exist as stale. existing may be nil when the live
// generation list is unavailable.
func RenderProtectedList(protected []int, existing map[int]bool, color bool) string {
	if len(protected) == 0 {
		return "No protected generations\n"
	}

	var sb strings.Builder
	sb.WriteString("Protected generations:\n")
	for _, n := range protected {
		if existing != nil && !existing[n] {
			if color {
				sb.WriteString(fmt.Sprintf("  %d %s(no longer exists)%s\n", n, colorGray, colorReset))
			} else {
				sb.WriteString(fmt.Sprintf("  %d (no longer exists)\n", n))
			}
			continue
		}
		sb.WriteString(fmt.Sprintf("  %d\n", n))
	}
	return sb.String()
}

// RenderHistory renders past clean runs, newest first.
func RenderHistory(runs []*store.CleanRun, color bool) string {
	if len(runs) == 0 {
		return "No clean runs recorded\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-20s %-9s %-10s %-7s %s\n", "WHEN", "MODE", "KEEP-LAST", "COUNT", "DELETED"))

	for _, run := range runs {
		mode, modeColor := "clean", colorGreen
		if run.DryRun {
			mode, modeColor = "dry-run", colorYellow
		}
		cell := fmt.Sprintf("%-9s", mode)
		if color {
			cell = modeColor + cell + colorReset
		}

		keepLast := "-"
		if run.KeepLast > 0 {
			keepLast = strconv.Itoa(run.KeepLast)
		}

		deleted := FormatNumbers(run.Deleted)
		if deleted == "" {
			deleted = "-"
		}

		sb.WriteString(fmt.Sprintf("%-20s %s %-10s %-7d %s\n",
			run.RanAt.Local().Format(time.DateTime),
			cell,
			keepLast,
			len(run.Deleted),
			deleted,
		))
	}
	return sb.String()
}
