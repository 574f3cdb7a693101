// Package plan computes which generations are safe to delete.
//
// Selection is a pure function of its inputs: the externally-reported
// generation list, the current generation, the protected set, and an
// optional keep-last count. It performs no I/O, so the same inputs
// always produce the same result.
package plan

import (
	"errors"
	"fmt"
	"sort"
)

// ErrCurrentNotListed is returned when the current generation does not
// appear in the enumerated generation list. The two sources disagree and
// deleting anything would risk removing the active system.
var ErrCurrentNotListed = errors.New("current generation not in generation list")

// IsProtected reports whether a generation number is in the protected set.
type IsProtected func(number int) bool

// Result is the outcome of a selection: every input generation lands in
// exactly one of the two slices. Both are sorted ascending.
type Result struct {
	Keep   []int
	Delete []int
}

// Select partitions generations into a keep set and a delete set.
//
// The current generation and every protected generation that still
// exists are kept. If keepLast > 0, the keepLast numerically-largest
// generations are also kept; a keepLast exceeding the list size keeps
// everything. Everything else is deleted. Returns ErrCurrentNotListed
// (wrapped) if current is absent from a non-empty generation list.
func Select(generations []int, current int, protected IsProtected, keepLast int) (*Result, error) {
	if len(generations) == 0 {
		return &Result{}, nil
	}

	sorted := make([]int, len(generations))
	copy(sorted, generations)
	sort.Ints(sorted)

	found := false
	for _, g := range sorted {
		if g == current {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: current is %d", ErrCurrentNotListed, current)
	}

	keep := make(map[int]bool, len(sorted))
	keep[current] = true

	if protected != nil {
		for _, g := range sorted {
			if protected(g) {
				keep[g] = true
			}
		}
	}

	if keepLast > 0 {
		start := len(sorted) - keepLast
		if start < 0 {
			start = 0
		}
		for _, g := range sorted[start:] {
			keep[g] = true
		}
	}

	result := &Result{}
	for _, g := range sorted {
		if keep[g] {
			result.Keep = append(result.Keep, g)
		} else {
			result.Delete = append(result.Delete, g)
		}
	}

	return result, nil
}
