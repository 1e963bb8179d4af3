// Package shelfdir encapsulates all path knowledge for a shelf root
// directory. It provides a Dir value object with accessors for category,
// icon, and build-state paths.
package shelfdir

import (
	"os"
	"path/filepath"
	"sort"
)

// IconsDirName is the reserved subdirectory holding tool icons. It is never
// treated as a category.
const IconsDirName = "icons"

// Dir is a value object that resolves paths within a shelf root directory.
type Dir struct {
	root string
}

// New creates a Dir rooted at the given path. The path is converted to an
// absolute path. No I/O is performed; use EnsureIcons to create the icon
// directory.
func New(root string) Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	return Dir{root: abs}
}

// Root returns the absolute path to the shelf root directory.
func (d Dir) Root() string { return d.root }

// IconsDir returns the path to the reserved icon directory.
func (d Dir) IconsDir() string { return filepath.Join(d.root, IconsDirName) }

// CategoryDir returns the path to a category subdirectory.
func (d Dir) CategoryDir(name string) string { return filepath.Join(d.root, name) }

// StateDir returns the path to the local build-state directory.
func (d Dir) StateDir() string { return filepath.Join(d.root, ".shelfstate") }

// ManifestPath returns the path to the manifest written after each build.
func (d Dir) ManifestPath() string { return filepath.Join(d.root, ".shelfstate", "manifest.txt") }

// CategoryNames returns the sorted names of all category subdirectories
// directly under the root, excluding the reserved icon directory. Returns
// nil if the root does not exist.
func (d Dir) CategoryNames() []string {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil
	}

	var names []string

	for _, e := range entries {
		if !e.IsDir() || e.Name() == IconsDirName || e.Name() == ".shelfstate" {
			continue
		}

		names = append(names, e.Name())
	}

	sort.Strings(names)

	return names
}

// Exists reports whether the shelf root directory exists on disk.
func (d Dir) Exists() bool {
	info, err := os.Stat(d.root)

	return err == nil && info.IsDir()
}
