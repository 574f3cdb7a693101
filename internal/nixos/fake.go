package nixos

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDeleteFailed is the simulated failure returned by a Fake armed
// with FailDeletes.
var ErrDeleteFailed = errors.New("simulated deletion failure")

// Fake is an in-memory Runner for tests. It mirrors the real tool's
// invariants: the current generation cannot be deleted and deleting an
// unknown generation fails.
type Fake struct {
	generations map[int]bool
	current     int
	deleted     map[int]bool
	failDeletes bool
}

// NewFake returns a Fake holding the given generations, with current
// set to the largest one.
func NewFake(generations ...int) *Fake {
	current := 0
	for _, g := range generations {
		if g > current {
			current = g
		}
	}
	return NewFakeWithCurrent(generations, current)
}

// NewFakeWithCurrent returns a Fake with an explicit current
// generation. The current generation is not required to be in the list,
// so consistency-violation handling can be exercised.
func NewFakeWithCurrent(generations []int, current int) *Fake {
	f := &Fake{
		generations: make(map[int]bool, len(generations)),
		current:     current,
		deleted:     make(map[int]bool),
	}
	for _, g := range generations {
		f.generations[g] = true
	}
	return f
}

// FailDeletes arms the fake to fail every DeleteGenerations call.
func (f *Fake) FailDeletes() *Fake {
	f.failDeletes = true
	return f
}

// ListGenerations returns the surviving generations ordered by number.
func (f *Fake) ListGenerations() ([]Generation, error) {
	var numbers []int
	for g := range f.generations {
		if !f.deleted[g] {
			numbers = append(numbers, g)
		}
	}
	sort.Ints(numbers)

	generations := make([]Generation, len(numbers))
	for i, n := range numbers {
		generations[i] = Generation{Number: n}
	}
	return generations, nil
}

// CurrentGeneration returns the configured current generation.
func (f *Fake) CurrentGeneration() (int, error) {
	return f.current, nil
}

// DeleteGenerations marks generations deleted, rejecting the current
// generation and numbers that do not exist.
func (f *Fake) DeleteGenerations(numbers []int) error {
	if f.failDeletes {
		return ErrDeleteFailed
	}

	for _, n := range numbers {
		if n == f.current {
			return fmt.Errorf("cannot delete current generation %d", n)
		}
		if !f.generations[n] || f.deleted[n] {
			return fmt.Errorf("generation %d does not exist", n)
		}
	}

	for _, n := range numbers {
		f.deleted[n] = true
	}
	return nil
}

// WasDeleted reports whether a generation has been deleted.
func (f *Fake) WasDeleted(number int) bool {
	return f.deleted[number]
}

// Deleted returns all deleted generation numbers sorted ascending.
func (f *Fake) Deleted() []int {
	var numbers []int
	for g := range f.deleted {
		numbers = append(numbers, g)
	}
	sort.Ints(numbers)
	return numbers
}
