// Package protect persists the set of generations the user has exempted
// from deletion. The set lives in a per-user JSON file and is written
// atomically so a crash mid-save never corrupts it.
package protect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// State is the in-memory protected set.
type State struct {
	protected map[int]bool
}

// stateFile is the on-disk JSON shape. The array is sorted before
// writing so the file diffs cleanly under version control.
type stateFile struct {
	ProtectedGenerations []int `json:"protected_generations"`
}

// NewState returns an empty protected set.
func NewState() *State {
	return &State{protected: make(map[int]bool)}
}

// Protect adds a generation to the set. Returns false if it was
// already protected.
func (s *State) Protect(number int) bool {
	if s.protected[number] {
		return false
	}
	s.protected[number] = true
	return true
}

// Unprotect removes a generation from the set. Returns false if it was
// not protected.
func (s *State) Unprotect(number int) bool {
	if !s.protected[number] {
		return false
	}
	delete(s.protected, number)
	return true
}

// IsProtected reports whether a generation is in the set.
func (s *State) IsProtected(number int) bool {
	return s.protected[number]
}

// Len returns the number of protected generations.
func (s *State) Len() int {
	return len(s.protected)
}

// Generations returns the protected generation numbers sorted ascending.
func (s *State) Generations() []int {
	numbers := make([]int, 0, len(s.protected))
	for n := range s.protected {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

// Load reads the protected set from path. A missing file is valid empty
// state; a file that exists but cannot be read or parsed is an error,
// so corruption is surfaced instead of silently emptying the set.
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file %s: %w", path, err)
	}

	var file stateFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", path, err)
	}

	state := NewState()
	for _, n := range file.ProtectedGenerations {
		state.protected[n] = true
	}
	return state, nil
}

// Save writes the protected set to path, creating parent directories as
// needed. The JSON is written to a temp file in the target's directory
// and renamed over the target, so readers only ever observe either the
// old complete file or the new complete file.
func (s *State) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(stateFile{ProtectedGenerations: s.Generations()}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize protected state: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, ".protected-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp state file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp state file %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp state file %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace state file %s: %w", path, err)
	}
	return nil
}
