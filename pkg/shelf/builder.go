package shelf

import (
	"fmt"

	"github.com/mayakit/shelf/pkg/icon"
	"github.com/mayakit/shelf/pkg/shelfdir"
	"github.com/mayakit/shelf/pkg/tool"
	"github.com/mayakit/shelf/pkg/uihost"
)

// Builder owns the derived category collections and the popup-menu registry
// and renders them onto a Host. It is single-threaded: collections are
// populated at construction and read during builds, cooperating with the
// host's UI loop.
type Builder struct {
	spec  Spec
	dir   shelfdir.Dir
	host  uihost.Host
	icons icon.Resolver

	cats      []Category
	container string            // live container handle; empty until the first Build
	menus     map[string]string // popup button name -> native menu handle
	buttons   []string          // handles created by the last build
}

// NewBuilder discovers the shelf tree under spec.Root and returns a Builder
// bound to the given host. Discovery runs once here; call Refresh to pick
// up filesystem changes.
func NewBuilder(spec Spec, host uihost.Host) (*Builder, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("shelf: builder: shelf name is required")
	}

	if spec.Parent == "" {
		spec.Parent = DefaultParent
	}

	b := &Builder{
		spec:  spec,
		dir:   shelfdir.New(spec.Root),
		host:  host,
		icons: icon.NewResolver(shelfdir.New(spec.Root).IconsDir(), spec.DefaultIcon),
		menus: make(map[string]string),
	}

	if err := b.Refresh(); err != nil {
		return nil, err
	}

	return b, nil
}

// Refresh re-runs discovery, replacing the cached categories. The live
// shelf is untouched until the next Build.
func (b *Builder) Refresh() error {
	cats, err := Discover(b.dir)
	if err != nil {
		return err
	}

	b.cats = cats

	return nil
}

// Spec returns the immutable shelf spec.
func (b *Builder) Spec() Spec { return b.spec }

// Categories returns the categories cached by the last discovery.
func (b *Builder) Categories() []Category { return b.cats }

// MenuHandle returns the native popup menu handle registered under a popup
// button name by the last build.
func (b *Builder) MenuHandle(buttonName string) (string, bool) {
	h, ok := b.menus[buttonName]
	return h, ok
}

// Buttons returns the handles of all buttons created by the last build.
func (b *Builder) Buttons() []string { return b.buttons }

// Build renders the shelf. When a shelf with the same name is already live
// it is destroyed first and rendered from scratch: there is no partial
// update path, and building twice is one teardown plus rebuild, not a
// no-op. A destroy failure is returned as-is, since the host may be left
// inconsistent.
func (b *Builder) Build() error {
	if b.host.Exists(b.spec.Name) {
		if err := b.host.Destroy(b.spec.Name); err != nil {
			return fmt.Errorf("shelf: destroy %q: %w", b.spec.Name, err)
		}
	}

	container, err := b.host.CreateShelf(b.spec.Name, b.spec.Parent)
	if err != nil {
		return fmt.Errorf("shelf: create %q: %w", b.spec.Name, err)
	}

	b.container = container
	b.menus = make(map[string]string)
	b.buttons = nil

	for _, cat := range b.cats {
		if err := b.renderCategory(container, cat); err != nil {
			return err
		}
	}

	return nil
}

// Rebuild is Build under its lifecycle name: full teardown plus re-render.
func (b *Builder) Rebuild() error { return b.Build() }

// renderCategory renders one category: flat buttons, popup buttons, then a
// separator.
func (b *Builder) renderCategory(container string, cat Category) error {
	for _, t := range cat.Tools {
		if _, err := b.addToolButton(container, t); err != nil {
			return err
		}
	}

	for _, p := range cat.Popups {
		if err := b.addPopupButton(container, p); err != nil {
			return err
		}
	}

	if _, err := b.host.CreateSeparator(container); err != nil {
		return fmt.Errorf("shelf: separator after %q: %w", cat.Name, err)
	}

	return nil
}

// addToolButton creates a flat button for one tool: spaced label, primary
// command, convention-resolved icon, and the double-click companion command
// when a sibling _dcc script exists.
func (b *Builder) addToolButton(container string, t tool.Tool) (string, error) {
	spec := uihost.ButtonSpec{
		Label:   t.DisplayName(),
		Command: t.Command(),
		Icon:    b.icons.Resolve(t.Name),
	}

	if dcc, ok := tool.FindDoubleClick(t.Path); ok {
		spec.DoubleClick = dcc.Command()
	}

	handle, err := b.host.CreateButton(container, spec)
	if err != nil {
		return "", fmt.Errorf("shelf: button %q: %w", t.Name, err)
	}

	b.buttons = append(b.buttons, handle)

	return handle, nil
}

// addPopupButton creates a popup button and its menu items. With a primary
// script the button behaves exactly like a flat button for that file;
// without one it is a bare button with an empty command. Either way the
// button's native popup menu is registered under the popup name for later
// ad hoc additions.
func (b *Builder) addPopupButton(container string, p Popup) error {
	var (
		handle string
		err    error
	)

	if p.Primary != nil {
		handle, err = b.addToolButton(container, *p.Primary)
	} else {
		handle, err = b.host.CreateButton(container, uihost.ButtonSpec{
			Label: p.Name,
			Icon:  b.icons.Resolve(p.Name),
		})
		if err == nil {
			b.buttons = append(b.buttons, handle)
		}
	}

	if err != nil {
		return fmt.Errorf("shelf: popup %q: %w", p.Name, err)
	}

	menu, err := b.host.PopupMenu(handle)
	if err != nil {
		return fmt.Errorf("shelf: popup %q: %w", p.Name, err)
	}

	b.menus[p.Name] = menu

	for _, item := range p.Items {
		_, err := b.host.AddMenuItem(menu, uihost.ItemSpec{
			Label:   item.DisplayName(),
			Command: item.Command(),
		})
		if err != nil {
			return fmt.Errorf("shelf: popup %q item %q: %w", p.Name, item.Name, err)
		}
	}

	return nil
}

// AddMenuItem appends an item to the popup menu registered under
// buttonName. It is an escape hatch for callers extending a built shelf
// without touching the filesystem layout.
func (b *Builder) AddMenuItem(buttonName, label string, cmd tool.Command) (string, error) {
	menu, ok := b.menus[buttonName]
	if !ok {
		return "", fmt.Errorf("shelf: add menu item: no popup button %q", buttonName)
	}

	handle, err := b.host.AddMenuItem(menu, uihost.ItemSpec{Label: label, Command: cmd})
	if err != nil {
		return "", fmt.Errorf("shelf: add menu item %q: %w", label, err)
	}

	return handle, nil
}

// AddCommand appends a standalone shortcut button to the live shelf with a
// caller-supplied label and commands, bypassing discovery. An empty icon
// falls back to convention resolution on the label.
func (b *Builder) AddCommand(label string, cmd, dcc tool.Command, iconRef string) (string, error) {
	if b.container == "" {
		return "", fmt.Errorf("shelf: add command: shelf %q is not built", b.spec.Name)
	}

	if iconRef == "" {
		iconRef = b.icons.Resolve(label)
	}

	handle, err := b.host.CreateButton(b.container, uihost.ButtonSpec{
		Label:       label,
		Command:     cmd,
		Icon:        iconRef,
		DoubleClick: dcc,
	})
	if err != nil {
		return "", fmt.Errorf("shelf: add command %q: %w", label, err)
	}

	b.buttons = append(b.buttons, handle)

	return handle, nil
}
