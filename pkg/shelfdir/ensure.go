package shelfdir

import (
	"fmt"
	"os"
)

// EnsureIcons creates the icon directory if it is missing. It is safe to
// call multiple times (idempotent). It does NOT create the shelf root
// itself — the caller decides whether to bootstrap from scratch.
func EnsureIcons(d Dir) error {
	if err := os.MkdirAll(d.IconsDir(), 0o750); err != nil {
		return fmt.Errorf("shelfdir: create icons dir: %w", err)
	}

	return nil
}

// EnsureState creates the build-state directory if it is missing.
func EnsureState(d Dir) error {
	if err := os.MkdirAll(d.StateDir(), 0o750); err != nil {
		return fmt.Errorf("shelfdir: create state dir: %w", err)
	}

	return nil
}
