package nixos

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// NixEnv runs real nix-env commands against a system profile.
type NixEnv struct {
	profile string
}

// NewNixEnv returns a client for the given profile path. An empty
// profile selects DefaultProfile.
func NewNixEnv(profile string) *NixEnv {
	if profile == "" {
		profile = DefaultProfile
	}
	return &NixEnv{profile: profile}
}

// Profile returns the profile path this client operates on.
func (n *NixEnv) Profile() string {
	return n.profile
}

func (n *NixEnv) listOutput() (string, error) {
	cmd := exec.Command("nix-env", "--list-generations", "-p", n.profile)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("nix-env --list-generations failed: %w (stderr: %s)", err, string(exitErr.Stderr))
		}
		return "", fmt.Errorf("nix-env --list-generations failed: %w", err)
	}
	return string(output), nil
}

// ListGenerations enumerates the profile's generations.
func (n *NixEnv) ListGenerations() ([]Generation, error) {
	output, err := n.listOutput()
	if err != nil {
		return nil, err
	}
	return parseGenerations(output), nil
}

// CurrentGeneration returns the generation marked (current) in the
// nix-env listing.
func (n *NixEnv) CurrentGeneration() (int, error) {
	output, err := n.listOutput()
	if err != nil {
		return 0, err
	}

	current, ok := parseCurrent(output)
	if !ok {
		return 0, fmt.Errorf("could not determine current generation from nix-env output")
	}
	return current, nil
}

// DeleteGenerations removes the given generations from the profile.
// Deleting nothing is a no-op.
func (n *NixEnv) DeleteGenerations(numbers []int) error {
	if len(numbers) == 0 {
		return nil
	}

	cmd := exec.Command("nix-env", "--delete-generations", joinNumbers(numbers), "-p", n.profile)
	if _, err := cmd.Output(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("nix-env --delete-generations failed: %w (stderr: %s)", err, string(exitErr.Stderr))
		}
		return fmt.Errorf("nix-env --delete-generations failed: %w", err)
	}
	return nil
}

// DeleteCommandLine renders the exact nix-env invocation that deletes
// the given generations. Dry-run output prints this verbatim, and
// operators script against it, so the argument shape must stay stable.
func DeleteCommandLine(profile string, numbers []int) string {
	if profile == "" {
		profile = DefaultProfile
	}
	return fmt.Sprintf("nix-env --delete-generations %s -p %s", joinNumbers(numbers), profile)
}

// parseGenerations extracts generation numbers from nix-env
// --list-generations output. Each line starts with the number:
//
//	  1   2024-01-15 10:30:45
//	  3   2024-01-17 09:15:30   (current)
//
// Blank lines and lines that do not start with a number are skipped.
func parseGenerations(output string) []Generation {
	var generations []Generation
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		number, err := strconv.Atoi(fields[0])
		if err != nil || number < 0 {
			continue
		}
		generations = append(generations, Generation{Number: number})
	}
	return generations
}

// parseCurrent finds the generation carrying the (current) marker.
func parseCurrent(output string) (int, bool) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "(current)") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if number, err := strconv.Atoi(fields[0]); err == nil {
			return number, true
		}
	}
	return 0, false
}

func joinNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
