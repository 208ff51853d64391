package blindbox

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/floof/pkg/daily"
)

const defaultBoxTitle = "今天的小惊喜"

// View renders the card for the current state.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Card.Label.Render("Blind Box"))
	b.WriteString("\n")

	if m.state == NoBoxToday {
		b.WriteString(m.theme.Card.Title.Render("今天没有盲盒"))
		b.WriteString("\n\n")
		b.WriteString(m.theme.Card.Muted.Render(m.wrap("去内容表的 BlindBox 页为今天加一条。")))
		return b.String()
	}

	title := m.box.Title
	if title == "" {
		title = defaultBoxTitle
	}
	b.WriteString(m.theme.Card.Title.Render(title))
	b.WriteString("\n\n")

	if !m.revealed() {
		b.WriteString(m.renderClosed())
		return b.String()
	}

	b.WriteString(m.renderContent())
	if m.state == OpenedPreviously {
		b.WriteString("\n\n")
		b.WriteString(m.theme.Card.Muted.Render("你今天已经开过盲盒啦（本机记录）。"))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Card.Muted.Render("r 重置今天盲盒（测试用）"))
	return b.String()
}

func (m *Model) renderClosed() string {
	inner := m.theme.Card.Muted.Render("Tap to open") + "\n\n🎁"
	frame := m.theme.Card.Frame.Width(m.innerWidth()).Render(inner)
	return frame + "\n" + m.theme.Card.Muted.Render("enter 打开")
}

// renderContent dispatches over the box's declared type. The default branch
// never fires — ParseBoxType already collapses unknown tags to text — but it
// keeps the match exhaustive.
func (m *Model) renderContent() string {
	switch m.box.Type {
	case daily.BoxText:
		return m.renderStickyNote()
	case daily.BoxImage:
		return m.renderPolaroid()
	case daily.BoxVideo:
		return m.renderFilm()
	case daily.BoxLink:
		return m.renderLinkCard()
	default:
		return m.renderStickyNote()
	}
}

func (m *Model) renderStickyNote() string {
	body := m.theme.Card.Muted.Render("a little note") + "\n\n" + m.wrap(m.box.Content)
	return m.theme.Card.Note.Width(m.innerWidth()).Render(body)
}

func (m *Model) renderPolaroid() string {
	body := "📷\n\n" + m.wrap(m.box.Content) + "\n\n" + m.theme.Card.Muted.Render("polaroid")
	return m.theme.Card.Polaroid.Width(m.innerWidth()).Render(body)
}

func (m *Model) renderFilm() string {
	if m.expanded {
		body := m.theme.Card.Muted.Render("Now playing") + "\n\n" +
			m.wrap(m.box.Content) + "\n\n" +
			m.theme.Card.Muted.Render("esc 关闭")
		return m.theme.Card.Film.Width(m.innerWidth()).Render(body)
	}
	holes := strings.Repeat("▪ ", 7)
	body := holes + "\n\n▶ 播放\n\n" + m.theme.Card.Muted.Render("film · enter 展开")
	return m.theme.Card.Film.Width(m.innerWidth()).Render(body)
}

func (m *Model) renderLinkCard() string {
	body := m.theme.Card.Muted.Render("link") + "\n\n" +
		"打开链接\n" + m.theme.Card.Muted.Render(m.wrap(m.box.Content))
	return m.theme.Card.Link.Width(m.innerWidth()).Render(body)
}

func (m *Model) innerWidth() int {
	w := m.width - 4
	if w < 16 {
		w = 16
	}
	return w
}

func (m *Model) wrap(s string) string {
	return wordwrap.String(s, m.innerWidth()-4)
}
