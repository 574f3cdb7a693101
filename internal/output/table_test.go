package output

import (
	"strings"
	"testing"
	"time"

	"github.com/Wiskerke/lock-generations/internal/store"
)

func TestFormatNumbers(t *testing.T) {
	if got := FormatNumbers([]int{1, 5, 10}); got != "1 5 10" {
		t.Errorf("Expected %q, got %q", "1 5 10", got)
	}
	if got := FormatNumbers(nil); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestRenderProtectedListEmpty(t *testing.T) {
	got := RenderProtectedList(nil, nil, false)
	if got != "No protected generations\n" {
		t.Errorf("Unexpected output: %q", got)
	}
}

func TestRenderProtectedList(t *testing.T) {
	got := RenderProtectedList([]int{2, 7, 42}, map[int]bool{2: true, 7: true}, false)

	if !strings.Contains(got, "  2\n") || !strings.Contains(got, "  7\n") {
		t.Errorf("Expected plain entries for existing generations, got %q", got)
	}
	if !strings.Contains(got, "42 (no longer exists)") {
		t.Errorf("Expected stale marker for 42, got %q", got)
	}
}

func TestRenderProtectedListNoExistence(t *testing.T) {
	// Without an existence map nothing gets a stale marker.
	got := RenderProtectedList([]int{3}, nil, false)
	if strings.Contains(got, "no longer exists") {
		t.Errorf("Unexpected stale marker: %q", got)
	}
}

func TestRenderHistory(t *testing.T) {
	runs := []*store.CleanRun{
		{
			ID:       2,
			RanAt:    time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC),
			KeepLast: 2,
			DryRun:   false,
			Deleted:  []int{1, 5},
		},
		{
			ID:      1,
			RanAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			DryRun:  true,
			Deleted: nil,
		},
	}

	got := RenderHistory(runs, false)

	if !strings.Contains(got, "WHEN") {
		t.Errorf("Expected header, got %q", got)
	}
	if !strings.Contains(got, "clean") || !strings.Contains(got, "dry-run") {
		t.Errorf("Expected both modes, got %q", got)
	}
	if !strings.Contains(got, "1 5") {
		t.Errorf("Expected deleted numbers, got %q", got)
	}
	if strings.Contains(got, "\033[") {
		t.Errorf("Expected no ANSI codes without color, got %q", got)
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	if got := RenderHistory(nil, false); got != "No clean runs recorded\n" {
		t.Errorf("Unexpected output: %q", got)
	}
}
