// Package shelf turns a directory tree of Python and MEL scripts into a
// Maya shelf: immediate subdirectories of the root become button categories,
// script files become buttons, and nested tool folders become popup buttons
// with sub-menus. The builder drives any uihost.Host, so the same discovery
// feeds the real Maya host, the terminal preview, and tests.
package shelf

import (
	"github.com/mayakit/shelf/pkg/tool"
)

// Spec identifies a shelf: where its scripts live and how the host names
// the container. Immutable after construction.
type Spec struct {
	Root        string // Shelf root directory.
	Name        string // Shelf display name; at most one live shelf per name.
	Parent      string // Host parent layout; empty selects DefaultParent.
	DefaultIcon string // Fallback icon identifier; empty selects the package default.
}

// DefaultParent is Maya's top-level shelf layout.
const DefaultParent = "ShelfLayout"

// Popup is a tool represented as a folder: its button opens a menu of the
// folder's scripts. When a contained file's name matches the folder name,
// that file becomes the button's own primary action instead of a menu item.
type Popup struct {
	Name    string     // Folder base name.
	Path    string     // Folder path.
	Primary *tool.Tool // Optional file matching the folder name; nil for bare buttons.
	Items   []tool.Tool
}

// Category is a top-level grouping rendered as a contiguous run of buttons
// followed by a separator.
type Category struct {
	Name   string
	Tools  []tool.Tool
	Popups []Popup
}
