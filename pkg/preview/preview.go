// Package preview renders a discovered shelf as a terminal UI, so artists
// and TDs can inspect what a build would create without a running Maya:
// categories and buttons on the left, the selected tool's source or a popup
// folder's README on the right.
package preview

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mayakit/shelf/pkg/shelf"
)

// entryKind distinguishes rows in the shelf outline.
type entryKind int

const (
	entryCategory entryKind = iota
	entryTool
	entryPopup
	entryItem
)

// entry is one selectable row of the outline.
type entry struct {
	kind  entryKind
	label string
	path  string // Script path for tools/items, folder path for popups.
	depth int
}

// flatten turns discovered categories into outline rows in render order.
func flatten(cats []shelf.Category) []entry {
	var rows []entry

	for _, cat := range cats {
		rows = append(rows, entry{kind: entryCategory, label: cat.Name})

		for _, t := range cat.Tools {
			rows = append(rows, entry{kind: entryTool, label: t.DisplayName(), path: t.Path, depth: 1})
		}

		for _, p := range cat.Popups {
			row := entry{kind: entryPopup, label: p.Name, path: p.Path, depth: 1}
			if p.Primary != nil {
				row.path = p.Primary.Path
			}

			rows = append(rows, row)

			for _, item := range p.Items {
				rows = append(rows, entry{kind: entryItem, label: item.DisplayName(), path: item.Path, depth: 2})
			}
		}
	}

	return rows
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// listWidth is the fixed width of the outline column.
const listWidth = 34

// Model is the bubbletea model for the shelf preview.
type Model struct {
	spec    shelf.Spec
	entries []entry
	cursor  int
	vp      viewport.Model
	hl      *highlighter
	width   int
	height  int
	ready   bool
}

// New creates a preview over the given discovered categories.
func New(spec shelf.Spec, cats []shelf.Category) Model {
	return Model{
		spec:    spec,
		entries: flatten(cats),
		hl:      newHighlighter(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp = viewport.New(maxInt(msg.Width-listWidth-6, 20), maxInt(msg.Height-4, 5))
		m.ready = true
		m.refreshPane()

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.refreshPane()
			}

			return m, nil

		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
				m.refreshPane()
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)

	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	title := titleStyle.Render(fmt.Sprintf("shelf preview: %s", m.spec.Name))
	left := paneStyle.Render(m.renderList())
	right := paneStyle.Render(m.vp.View())
	help := dimStyle.Render("j/k move · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right), help)
}

// renderList renders the outline column with the cursor row highlighted.
func (m Model) renderList() string {
	if len(m.entries) == 0 {
		return dimStyle.Render("shelf is empty")
	}

	var sb strings.Builder

	for i, e := range m.entries {
		line := strings.Repeat("  ", e.depth) + e.label
		if e.kind == entryPopup {
			line += " ▸"
		}

		line = runewidth.Truncate(line, listWidth-2, "…")

		switch {
		case i == m.cursor:
			line = selectedStyle.Render(line)
		case e.kind == entryCategory:
			line = categoryStyle.Render(line)
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// refreshPane loads the preview content for the cursor row.
func (m *Model) refreshPane() {
	if !m.ready || len(m.entries) == 0 {
		return
	}

	m.vp.SetContent(m.paneContent(m.entries[m.cursor]))
	m.vp.GotoTop()
}

// paneContent builds the right-hand pane for an outline row: highlighted
// script source for tools and items, a rendered README for popup folders
// carrying one, and a row summary otherwise.
func (m Model) paneContent(e entry) string {
	switch e.kind {
	case entryTool, entryItem:
		return m.renderScript(e.path)

	case entryPopup:
		dir := e.path
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			dir = filepath.Dir(e.path)
		}

		if md := m.renderReadme(dir); md != "" {
			return md
		}

		if e.path != dir {
			// Popup with a primary script and no README: show the script.
			return m.renderScript(e.path)
		}

		return dimStyle.Render("popup tool (no README)")

	default:
		return dimStyle.Render("category: " + e.label)
	}
}

// renderScript reads and syntax-highlights a script file.
func (m Model) renderScript(path string) string {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from local shelf discovery
	if err != nil {
		return dimStyle.Render("cannot read " + path)
	}

	return m.hl.highlight(string(data), path)
}

// renderReadme renders dir/README.md with glamour, or "" when absent.
func (m Model) renderReadme(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "README.md")) //nolint:gosec // path comes from local shelf discovery
	if err != nil {
		return ""
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(m.vp.Width),
	)
	if err != nil {
		return string(data)
	}

	out, err := r.Render(string(data))
	if err != nil {
		return string(data)
	}

	return strings.TrimRight(out, "\n")
}

// Run starts the preview program and blocks until the user quits.
func Run(spec shelf.Spec, cats []shelf.Category) error {
	p := tea.NewProgram(New(spec, cats), tea.WithAltScreen())

	_, err := p.Run()

	return err
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
