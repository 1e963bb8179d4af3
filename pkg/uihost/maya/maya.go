// Package maya drives a running Maya session from outside its process. It
// renders uihost calls into MEL and sends them through a Sender: either
// Maya's commandPort TCP socket or a WebSocket relay plugin. Enable the
// command port in Maya with:
//
//	cmds.commandPort(name=":7001", sourceType="mel")
package maya

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mayakit/shelf/pkg/tool"
	"github.com/mayakit/shelf/pkg/uihost"
)

// Sender delivers one MEL statement to Maya and returns its textual reply.
// Implementations are not required to be safe for concurrent use; the
// builder is single-threaded.
type Sender interface {
	Send(ctx context.Context, mel string) (string, error)
	Close() error
}

// defaultTimeout bounds a single round-trip to Maya.
const defaultTimeout = 10 * time.Second

// Host implements uihost.Host against a live Maya session.
type Host struct {
	sender  Sender
	timeout time.Duration
}

var _ uihost.Host = (*Host)(nil)

// NewHost creates a Host over the given sender.
func NewHost(sender Sender) *Host {
	return &Host{sender: sender, timeout: defaultTimeout}
}

// SetTimeout overrides the per-call round-trip timeout.
func (h *Host) SetTimeout(d time.Duration) { h.timeout = d }

// Close closes the underlying sender.
func (h *Host) Close() error { return h.sender.Close() }

// send runs one MEL statement with the host timeout applied.
func (h *Host) send(mel string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	reply, err := h.sender.Send(ctx, mel)
	if err != nil {
		return "", fmt.Errorf("maya: %w", err)
	}

	return strings.TrimSpace(reply), nil
}

// Exists implements uihost.Host. Transport failures read as absent; the
// subsequent create call surfaces them.
func (h *Host) Exists(name string) bool {
	reply, err := h.send(fmt.Sprintf(`layout -q -exists %s;`, quote(name)))

	return err == nil && reply == "1"
}

// CreateShelf implements uihost.Host.
func (h *Host) CreateShelf(name, parent string) (string, error) {
	return h.send(fmt.Sprintf(`shelfLayout -parent %s %s;`, quote(parent), quote(name)))
}

// Destroy implements uihost.Host.
func (h *Host) Destroy(name string) error {
	_, err := h.send(fmt.Sprintf(`deleteUI %s;`, quote(name)))

	return err
}

// CreateButton implements uihost.Host. The button's sourceType follows the
// primary command's language; a double-click companion in the other
// language is wrapped for that context via SourceAs.
func (h *Host) CreateButton(parent string, spec uihost.ButtonSpec) (string, error) {
	var sb strings.Builder

	sb.WriteString("shelfButton")
	fmt.Fprintf(&sb, " -label %s", quote(spec.Label))
	fmt.Fprintf(&sb, " -parent %s", quote(parent))

	if spec.Icon != "" {
		fmt.Fprintf(&sb, " -image %s", quote(spec.Icon))
	}

	lang := spec.Command.Language
	if lang == "" {
		lang = tool.Python
	}

	fmt.Fprintf(&sb, " -sourceType %s", quote(string(lang)))

	if !spec.Command.IsZero() {
		fmt.Fprintf(&sb, " -command %s", quote(spec.Command.Source()))
	}

	if !spec.DoubleClick.IsZero() {
		fmt.Fprintf(&sb, " -doubleClickCommand %s", quote(spec.DoubleClick.SourceAs(lang)))
	}

	sb.WriteString(";")

	return h.send(sb.String())
}

// PopupMenu implements uihost.Host. Maya attaches a popup menu to every
// shelf button; the first entry of popupMenuArray is its handle.
func (h *Host) PopupMenu(button string) (string, error) {
	reply, err := h.send(fmt.Sprintf(`shelfButton -q -popupMenuArray %s;`, quote(button)))
	if err != nil {
		return "", err
	}

	menus := strings.Fields(reply)
	if len(menus) == 0 {
		return "", fmt.Errorf("maya: button %q has no popup menu", button)
	}

	return menus[0], nil
}

// AddMenuItem implements uihost.Host. The item's sourceType follows its own
// command's language.
func (h *Host) AddMenuItem(menu string, item uihost.ItemSpec) (string, error) {
	lang := item.Command.Language
	if lang == "" {
		lang = tool.Python
	}

	return h.send(fmt.Sprintf(`menuItem -label %s -sourceType %s -command %s -parent %s;`,
		quote(item.Label), quote(string(lang)), quote(item.Command.Source()), quote(menu)))
}

// CreateSeparator implements uihost.Host. Dimensions match Maya's stock
// shelf separators.
func (h *Host) CreateSeparator(parent string) (string, error) {
	return h.send(fmt.Sprintf(`separator -width 12 -height 35 -style "shelf" -horizontal 0 -parent %s;`, quote(parent)))
}

// quote renders s as a MEL string literal.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)

	return `"` + s + `"`
}
