package protect

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNoConfigDir is returned when no config directory can be derived
// from the environment (no HOME, no XDG_CONFIG_HOME, not under sudo).
var ErrNoConfigDir = errors.New("could not determine config directory")

// Env is a snapshot of the process environment relevant to config path
// resolution. Resolution itself is a pure function of this snapshot so
// it can be tested without touching the real environment or filesystem.
type Env struct {
	EUID          int
	SudoUser      string
	XDGConfigHome string
	Home          string
}

// CaptureEnv snapshots the current process environment.
func CaptureEnv() Env {
	return Env{
		EUID:          os.Geteuid(),
		SudoUser:      os.Getenv("SUDO_USER"),
		XDGConfigHome: os.Getenv("XDG_CONFIG_HOME"),
		Home:          os.Getenv("HOME"),
	}
}

// ConfigDir resolves the base config directory for the given environment.
//
// When running elevated on behalf of another user (sudo), the invoking
// user's config directory is resolved so protections land in their
// state file rather than root's. The user's home is derived as
// /home/<user> since looking it up through NSS would require I/O.
// Otherwise XDG_CONFIG_HOME wins if set, falling back to $HOME/.config.
func (e Env) ConfigDir() (string, error) {
	if e.EUID == 0 && e.SudoUser != "" && e.SudoUser != "root" {
		return filepath.Join("/home", e.SudoUser, ".config"), nil
	}
	if e.XDGConfigHome != "" {
		return e.XDGConfigHome, nil
	}
	if e.Home != "" {
		return filepath.Join(e.Home, ".config"), nil
	}
	return "", ErrNoConfigDir
}

// StatePath resolves the full path of the protected-state file.
func (e Env) StatePath() (string, error) {
	dir, err := e.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lock-generations", "protected.json"), nil
}

// HistoryPath resolves the full path of the clean-run history database.
func (e Env) HistoryPath() (string, error) {
	dir, err := e.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lock-generations", "history.db"), nil
}
