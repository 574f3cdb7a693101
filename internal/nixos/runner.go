// Package nixos talks to the NixOS system profile through nix-env.
//
// The Runner interface is the seam between "decide what to delete" and
// "actually delete it": the real client shells out to nix-env, the Fake
// keeps everything in memory so command logic can be tested without a
// NixOS system.
package nixos

// DefaultProfile is the system profile nix-env operates on.
const DefaultProfile = "/nix/var/nix/profiles/system"

// Generation is one retained system generation. Numbers are assigned by
// Nix, monotonically increasing, and never reused.
type Generation struct {
	Number int
}

// Runner abstracts generation enumeration and deletion.
type Runner interface {
	// ListGenerations returns all retained generations, ordered by number.
	ListGenerations() ([]Generation, error)

	// CurrentGeneration returns the number of the currently booted generation.
	CurrentGeneration() (int, error)

	// DeleteGenerations removes the given generations. It fails if the
	// underlying operation is rejected or any number no longer exists.
	DeleteGenerations(numbers []int) error
}
