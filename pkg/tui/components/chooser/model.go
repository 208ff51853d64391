// Package chooser implements the once-per-day pick-one-of-three card.
package chooser

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/floof/pkg/daily"
	"tableflip.dev/floof/pkg/flags"
	"tableflip.dev/floof/pkg/tui/events"
	"tableflip.dev/floof/pkg/tui/theme"
)

// State is the widget's position in the daily interaction flow.
type State int

const (
	// NoOptionsToday means nothing is configured for today; terminal.
	NoOptionsToday State = iota
	// Selecting offers up to three items.
	Selecting
	// Answering collects the answer for the picked item.
	Answering
	// DoneWithReply shows the resolved reply.
	DoneWithReply
	// DoneNoReply means the flag is set but no reply could be recovered.
	DoneNoReply
)

const (
	choiceAck = "我收到啦。"
	inputAck  = "我看到你写的了。谢谢你。"
)

// Model owns the daily chooser card. Completion is persisted through the
// per-day flag; the reply text rides along so a reload shows it again.
type Model struct {
	id    events.ComponentID
	theme theme.Theme
	store flags.Store
	today string

	items []daily.Interaction

	state     State
	cursor    int // highlighted item while Selecting
	picked    int // index into items while Answering
	optCursor int // highlighted option for choice answering
	input     textinput.Model
	reply     string

	focused bool
	width   int
}

// NewModel mounts the widget, restoring completion state from the flag
// store. Flag set with a recoverable reply lands in DoneWithReply; flag set
// without one lands in DoneNoReply.
func NewModel(th theme.Theme, store flags.Store, today string, items []daily.Interaction) *Model {
	input := textinput.New()
	input.Placeholder = "写一句就好"

	m := &Model{
		id:     events.ComponentID("chooser"),
		theme:  th,
		store:  store,
		today:  today,
		items:  items,
		picked: -1,
		input:  input,
		width:  40,
	}
	switch {
	case len(items) == 0:
		m.state = NoOptionsToday
	case store.Get(flags.DailyDoneKey(today)) == flags.Done:
		if reply := store.Get(flags.DailyReplyKey(today)); reply != "" {
			m.reply = reply
			m.state = DoneWithReply
		} else {
			m.state = DoneNoReply
		}
	default:
		m.state = Selecting
	}
	return m
}

// State reports the current flow state.
func (m *Model) State() State { return m.state }

// Reply returns the resolved reply text, if any.
func (m *Model) Reply() string { return m.reply }

// ID returns the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetWidth configures the card width.
func (m *Model) SetWidth(width int) {
	if width < 24 {
		width = 24
	}
	m.width = width
	m.input.SetWidth(width - 8)
}

// Focus marks the card as receiving key input.
func (m *Model) Focus() tea.Cmd {
	if m.focused {
		return nil
	}
	m.focused = true
	if m.state == Answering && m.pickedItem().Type == daily.TypeInput {
		return tea.Batch(events.FocusCmd(m.id), m.input.Focus())
	}
	return events.FocusCmd(m.id)
}

// Blur marks the card as inactive.
func (m *Model) Blur() tea.Cmd {
	if !m.focused {
		return nil
	}
	m.focused = false
	m.input.Blur()
	return events.BlurCmd(m.id)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles key presses for the selection and answering flow.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch m.state {
	case Selecting:
		switch key.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter", " ":
			return m, m.Pick(m.cursor)
		}
	case Answering:
		return m.updateAnswering(key)
	case DoneWithReply, DoneNoReply:
		if key.String() == "r" {
			return m, m.Reset()
		}
	}
	return m, nil
}

func (m *Model) updateAnswering(key tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	item := m.pickedItem()

	if key.String() == "esc" {
		m.Back()
		return m, nil
	}

	if item.Type == daily.TypeChoice {
		options := item.Payload.List()
		switch key.String() {
		case "left", "up", "h", "k":
			if m.optCursor > 0 {
				m.optCursor--
			}
		case "right", "down", "l", "j":
			if m.optCursor < len(options)-1 {
				m.optCursor++
			}
		case "enter", " ":
			if m.optCursor >= 0 && m.optCursor < len(options) {
				return m, m.SubmitChoice(options[m.optCursor])
			}
		}
		return m, nil
	}

	if key.String() == "enter" {
		return m, m.SubmitInput()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

// Pick moves to Answering for the item at idx. Nothing is persisted yet.
func (m *Model) Pick(idx int) tea.Cmd {
	if m.state != Selecting || idx < 0 || idx >= len(m.items) {
		return nil
	}
	m.picked = idx
	m.optCursor = 0
	m.state = Answering
	if m.items[idx].Type == daily.TypeInput {
		return m.input.Focus()
	}
	return nil
}

// Back abandons the current pick without persisting anything.
func (m *Model) Back() {
	if m.state != Answering {
		return
	}
	m.picked = -1
	m.input.SetValue("")
	m.input.Blur()
	m.state = Selecting
}

// SubmitChoice resolves the reply for a selected option literal: the option's
// response-map entry, then the "default" entry, then a generic acknowledgment.
func (m *Model) SubmitChoice(option string) tea.Cmd {
	if m.state != Answering {
		return nil
	}
	rm := m.pickedItem().ResponseMap
	reply, ok := rm.Lookup(option)
	if !ok {
		reply, ok = rm.Lookup("default")
	}
	if !ok {
		reply = choiceAck
	}
	return m.finish(reply)
}

// SubmitInput resolves the reply for a free-text answer: always the
// "default" response-map entry or a generic acknowledgment.
func (m *Model) SubmitInput() tea.Cmd {
	if m.state != Answering {
		return nil
	}
	reply, ok := m.pickedItem().ResponseMap.Lookup("default")
	if !ok {
		reply = inputAck
	}
	return m.finish(reply)
}

// finish persists the completion flag and reply as one transition. After
// this, no further submission is possible through the normal flow today.
func (m *Model) finish(reply string) tea.Cmd {
	m.reply = reply
	m.state = DoneWithReply
	_ = m.store.Set(flags.DailyDoneKey(m.today), flags.Done)
	_ = m.store.Set(flags.DailyReplyKey(m.today), reply)
	return events.ChooserDoneCmd(m.id, m.today, reply)
}

// Reset clears the flag and stored reply and returns to Selecting. Testing
// affordance, not part of the normal flow.
func (m *Model) Reset() tea.Cmd {
	if m.state != DoneWithReply && m.state != DoneNoReply {
		return nil
	}
	_ = m.store.Remove(flags.DailyDoneKey(m.today))
	_ = m.store.Remove(flags.DailyReplyKey(m.today))
	m.reply = ""
	m.picked = -1
	m.cursor = 0
	m.input.SetValue("")
	m.state = Selecting
	return events.WidgetResetCmd(m.id, m.today)
}

func (m *Model) pickedItem() daily.Interaction {
	if m.picked < 0 || m.picked >= len(m.items) {
		return daily.Interaction{}
	}
	return m.items[m.picked]
}

// View renders the card for the current state.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Card.Label.Render("Daily"))
	b.WriteString("\n")

	switch m.state {
	case NoOptionsToday:
		b.WriteString(m.theme.Card.Title.Render("今天还没配置三选一"))
		b.WriteString("\n\n")
		b.WriteString(m.theme.Card.Muted.Render(m.wrap("去内容表的 DailyMenu 填今天的 option_id，并在 DailyInteraction 里配置对应内容。")))
	case Selecting:
		b.WriteString(m.theme.Card.Title.Render("今天想做什么？"))
		b.WriteString("\n")
		for i, item := range m.items {
			hint := "点一下试试！"
			if item.Type == daily.TypeInput {
				hint = "写一句话"
			}
			style := m.theme.Card.Option
			if i == m.cursor && m.focused {
				style = m.theme.Card.Selected
			}
			b.WriteString("\n")
			b.WriteString(style.Width(m.width - 4).Render(item.Title + "\n" + m.theme.Card.Muted.Render(hint)))
		}
	case Answering:
		item := m.pickedItem()
		b.WriteString(m.theme.Card.Title.Render(item.Title))
		b.WriteString("\n\n")
		if item.Type == daily.TypeChoice {
			options := item.Payload.List()
			rendered := make([]string, 0, len(options))
			for i, op := range options {
				style := m.theme.Card.Option
				if i == m.optCursor {
					style = m.theme.Card.Selected
				}
				rendered = append(rendered, style.Render(op))
			}
			b.WriteString(strings.Join(rendered, " "))
		} else {
			b.WriteString(m.input.View())
			b.WriteString("\n")
			b.WriteString(m.theme.Card.Muted.Render("enter 发送"))
		}
		b.WriteString("\n\n")
		b.WriteString(m.theme.Card.Muted.Render("esc 返回"))
	case DoneWithReply:
		b.WriteString(m.theme.Card.Title.Render("已完成"))
		b.WriteString("\n\n")
		b.WriteString(m.theme.Card.Frame.Width(m.width - 4).Render(m.wrap(m.reply)))
		b.WriteString("\n")
		b.WriteString(m.theme.Card.Muted.Render("r 重置今天（测试用）"))
	case DoneNoReply:
		b.WriteString(m.theme.Card.Title.Render("今天已经做过啦"))
		b.WriteString("\n\n")
		b.WriteString(m.theme.Card.Muted.Render("明天会有新的三选一。"))
		b.WriteString("\n\n")
		b.WriteString(m.theme.Card.Muted.Render("r 重置今天（测试用）"))
	}
	return b.String()
}

func (m *Model) wrap(s string) string {
	w := m.width - 8
	if w < 12 {
		w = 12
	}
	return wordwrap.String(s, w)
}
