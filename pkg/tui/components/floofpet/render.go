package floofpet

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

func (m *Model) face() string {
	switch m.anim {
	case AnimHop:
		return "ᕙ(˃ᗜ˂)ᕗ"
	case AnimSpin:
		return "( 'ω')乁"
	case AnimCling:
		return "(づ˶•༝•˶)づ"
	default:
		return "(˶˃ ᵕ ˂˶)"
	}
}

// View renders the bubble, body, and name as one block. The caller splices
// it over the page at Position.
func (m *Model) View() string {
	var b strings.Builder
	if m.bubble != "" {
		b.WriteString(m.theme.Pet.Bubble.Render(wordwrap.String(m.bubble, 18)))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Pet.Body.Render(m.face()))
	b.WriteString("\n")
	b.WriteString(m.theme.Pet.Name.Render(m.name))
	return b.String()
}
