package preview

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// highlighter renders script source with syntax colors for the preview
// pane.
type highlighter struct {
	style *chroma.Style
}

func newHighlighter() *highlighter {
	return &highlighter{style: styles.Get("monokai")}
}

// highlight colors a whole source snippet based on its filename. Unknown
// file types render unstyled.
func (h *highlighter) highlight(source, filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return source
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var sb strings.Builder

	for token := iterator(); token != chroma.EOF; token = iterator() {
		entry := h.style.Get(token.Type)
		if !entry.Colour.IsSet() {
			sb.WriteString(token.Value)
			continue
		}

		st := lipgloss.NewStyle().Foreground(lipgloss.Color(entry.Colour.String()))
		if entry.Bold == chroma.Yes {
			st = st.Bold(true)
		}

		if entry.Italic == chroma.Yes {
			st = st.Italic(true)
		}

		sb.WriteString(st.Render(token.Value))
	}

	return sb.String()
}
