package workspace

import (
	"os"

	"github.com/skillforge-labs/skillforge/internal/branding"
)

// Mode represents the operating mode of the CLI.
type Mode int

const (
	// ModeEndUser is for users who installed the CLI without cloning the repo.
	// The catalog lives at ~/.skillforge/catalog-repo/.
	ModeEndUser Mode = iota
	// ModeMaintainer is for developers working inside the Skillforge repository.
	// SKILLFORGE_HOME is set; templates and catalog live inside the checkout.
	ModeMaintainer
)

// DetectMode returns the current operating mode.
// If SKILLFORGE_HOME is set, the CLI is in maintainer mode.
func DetectMode() Mode {
	if os.Getenv(branding.EnvVar("HOME")) != "" {
		return ModeMaintainer
	}
	return ModeEndUser
}

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMaintainer:
		return "maintainer"
	case ModeEndUser:
		return "end-user"
	default:
		return "unknown"
	}
}
