package uihost

import (
	"fmt"
)

// WidgetKind distinguishes recorded shelf children.
type WidgetKind int

const (
	// KindButton is a shelf button, possibly carrying popup menu items.
	KindButton WidgetKind = iota
	// KindSeparator is a visual separator between categories.
	KindSeparator
)

// Widget is one recorded child of a shelf container.
type Widget struct {
	Kind   WidgetKind
	Handle string
	Spec   ButtonSpec // Valid for KindButton.
	Items  []ItemSpec // Popup menu items added to the button's menu.
}

// Shelf is a recorded shelf container.
type Shelf struct {
	Name    string
	Parent  string
	Widgets []*Widget
}

// Recorder is an in-memory Host that records every widget-creation call.
// It backs builder tests and the terminal preview. The zero value is not
// usable; call NewRecorder.
type Recorder struct {
	shelves map[string]*Shelf
	menus   map[string]*Widget // menu handle -> owning button widget
	seq     int

	// DestroyErr, when set, is returned by Destroy. Lets tests exercise
	// the rebuild failure path.
	DestroyErr error
}

var _ Host = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		shelves: make(map[string]*Shelf),
		menus:   make(map[string]*Widget),
	}
}

// Shelf returns the recorded shelf with the given name, or nil.
func (r *Recorder) Shelf(name string) *Shelf {
	return r.shelves[name]
}

// Exists implements Host.
func (r *Recorder) Exists(name string) bool {
	_, ok := r.shelves[name]
	return ok
}

// CreateShelf implements Host. Creating a name that is already live is a
// builder bug, surfaced as an error.
func (r *Recorder) CreateShelf(name, parent string) (string, error) {
	if _, ok := r.shelves[name]; ok {
		return "", fmt.Errorf("uihost: shelf %q already exists", name)
	}

	r.shelves[name] = &Shelf{Name: name, Parent: parent}

	return name, nil
}

// Destroy implements Host.
func (r *Recorder) Destroy(name string) error {
	if r.DestroyErr != nil {
		return r.DestroyErr
	}

	if _, ok := r.shelves[name]; !ok {
		return fmt.Errorf("uihost: destroy: no shelf %q", name)
	}

	delete(r.shelves, name)

	return nil
}

// CreateButton implements Host.
func (r *Recorder) CreateButton(parent string, spec ButtonSpec) (string, error) {
	s, ok := r.shelves[parent]
	if !ok {
		return "", fmt.Errorf("uihost: create button: no shelf %q", parent)
	}

	r.seq++
	handle := fmt.Sprintf("%s|button%d", parent, r.seq)
	w := &Widget{Kind: KindButton, Handle: handle, Spec: spec}
	s.Widgets = append(s.Widgets, w)
	r.menus[handle+"|popup"] = w

	return handle, nil
}

// PopupMenu implements Host. Every recorded button has exactly one popup
// menu, mirroring Maya's shelfButton behavior.
func (r *Recorder) PopupMenu(button string) (string, error) {
	menu := button + "|popup"
	if _, ok := r.menus[menu]; !ok {
		return "", fmt.Errorf("uihost: popup menu: no button %q", button)
	}

	return menu, nil
}

// AddMenuItem implements Host.
func (r *Recorder) AddMenuItem(menu string, item ItemSpec) (string, error) {
	w, ok := r.menus[menu]
	if !ok {
		return "", fmt.Errorf("uihost: add menu item: no menu %q", menu)
	}

	w.Items = append(w.Items, item)

	return fmt.Sprintf("%s|item%d", menu, len(w.Items)), nil
}

// CreateSeparator implements Host.
func (r *Recorder) CreateSeparator(parent string) (string, error) {
	s, ok := r.shelves[parent]
	if !ok {
		return "", fmt.Errorf("uihost: create separator: no shelf %q", parent)
	}

	r.seq++
	handle := fmt.Sprintf("%s|sep%d", parent, r.seq)
	s.Widgets = append(s.Widgets, &Widget{Kind: KindSeparator, Handle: handle})

	return handle, nil
}
