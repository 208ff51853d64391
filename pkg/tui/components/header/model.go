// Package header renders the date greeting region at the top of the page.
package header

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/floof/pkg/tui/theme"
)

const (
	defaultTitle    = "又是喜欢你的一天！！啵啵啵～"
	defaultSubtitle = "vibe coding 了一下，送给你💖"
)

// Model is the static greeting block.
type Model struct {
	theme    theme.Theme
	dateLine string
	title    string
	subtitle string
	width    int
}

// NewModel constructs the header with the formatted date line.
func NewModel(th theme.Theme, dateLine string) *Model {
	return &Model{
		theme:    th,
		dateLine: dateLine,
		title:    defaultTitle,
		subtitle: defaultSubtitle,
		width:    80,
	}
}

// SetWidth configures the wrap width.
func (m *Model) SetWidth(width int) {
	if width <= 0 {
		width = 80
	}
	m.width = width
}

// View renders the greeting block.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Date.Render(m.dateLine))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Header.Title.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.theme.Header.Subtitle.Render(wordwrap.String(m.subtitle, m.width)))
	return b.String()
}
