// Package uihost defines the capability boundary between the shelf builder
// and the host GUI toolkit. Production implementations drive Maya remotely;
// tests and the preview TUI use the in-memory Recorder.
package uihost

import (
	"github.com/mayakit/shelf/pkg/tool"
)

// ButtonSpec describes a shelf button to create. Commands are typed
// descriptors; hosts render them into executable source at the boundary.
type ButtonSpec struct {
	Label       string
	Command     tool.Command // Primary action; may be zero for bare buttons.
	Icon        string       // Opaque icon reference: bare identifier or full path.
	DoubleClick tool.Command // Secondary action; zero when no companion exists.
}

// ItemSpec describes a popup menu item.
type ItemSpec struct {
	Label   string
	Command tool.Command
}

// Host is the widget-creation surface the builder drives. All calls are
// synchronous side-effecting operations on the live widget tree; returned
// strings are opaque widget handles owned by the host.
type Host interface {
	// Exists reports whether a shelf container with the given name is live.
	Exists(name string) bool

	// CreateShelf creates a shelf container under the given parent layout
	// and returns its handle.
	CreateShelf(name, parent string) (string, error)

	// Destroy tears down the named shelf container and all its children.
	Destroy(name string) error

	// CreateButton adds a button to the parent shelf and returns its handle.
	CreateButton(parent string, spec ButtonSpec) (string, error)

	// PopupMenu returns the handle of the popup menu attached to a button.
	PopupMenu(button string) (string, error)

	// AddMenuItem appends an item to a popup menu and returns its handle.
	AddMenuItem(menu string, item ItemSpec) (string, error)

	// CreateSeparator appends a visual separator to the parent shelf.
	CreateSeparator(parent string) (string, error)
}
