// Package icon resolves shelf button icons by naming convention: a file in
// the icon directory whose base name contains the tool name is the tool's
// icon; anything else falls back to a default identifier.
package icon

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultIcon is the bare identifier returned when no matching icon file
// exists. Maya resolves it against its built-in icon set.
const DefaultIcon = "commandButton.png"

// imageExts are the recognized icon file extensions.
var imageExts = []string{".png", ".jpg", ".jpeg", ".svg"}

// Resolver finds icon files for tools inside a single icon directory.
type Resolver struct {
	dir      string
	fallback string
}

// NewResolver creates a Resolver over the given icon directory. An empty
// fallback selects DefaultIcon.
func NewResolver(dir, fallback string) Resolver {
	if fallback == "" {
		fallback = DefaultIcon
	}

	return Resolver{dir: dir, fallback: fallback}
}

// Resolve returns an opaque icon reference for the tool name: the full path
// of the first matching file in the icon directory, or the bare fallback
// identifier when the directory is missing or holds no match. A missing
// directory is created so artists have a place to drop icons. Callers must
// handle both forms uniformly.
func (r Resolver) Resolve(toolName string) string {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		// Missing dir is not an error; create it and fall back.
		_ = os.MkdirAll(r.dir, 0o750)

		return r.fallback
	}

	// Sorted for deterministic first-match across platforms.
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}

	sort.Strings(names)

	for _, name := range names {
		if matchesTool(name, toolName) {
			return filepath.Join(r.dir, name)
		}
	}

	return r.fallback
}

// matchesTool reports whether an icon file name matches a tool: its base
// name contains the tool name immediately followed by an image extension.
func matchesTool(fileName, toolName string) bool {
	if toolName == "" {
		return false
	}

	for _, ext := range imageExts {
		if strings.HasSuffix(fileName, toolName+ext) {
			return true
		}
	}

	return false
}
