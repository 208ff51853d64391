// Package blindbox implements the once-per-day reveal card.
package blindbox

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/floof/pkg/daily"
	"tableflip.dev/floof/pkg/flags"
	"tableflip.dev/floof/pkg/tui/events"
	"tableflip.dev/floof/pkg/tui/theme"
)

// State is the widget's position in the reveal-once-per-day flow.
type State int

const (
	// NoBoxToday means no row matched today; terminal for the day.
	NoBoxToday State = iota
	// Closed means today's box exists and has not been opened.
	Closed
	// OpenedThisSession means the user opened the box just now.
	OpenedThisSession
	// OpenedPreviously means the persisted flag was already set on mount.
	OpenedPreviously
)

// Model owns the blind box card. The persisted per-day flag is the only
// durable state; everything else is session-local.
type Model struct {
	id    events.ComponentID
	theme theme.Theme
	store flags.Store
	today string

	box    daily.Box
	hasBox bool

	state    State
	expanded bool // video playback view
	focused  bool
	width    int
}

// NewModel mounts the widget. The initial state collapses identically for a
// flag set in a prior session and one set moments ago: both show content.
func NewModel(th theme.Theme, store flags.Store, today string, box daily.Box, hasBox bool) *Model {
	m := &Model{
		id:     events.ComponentID("blindbox"),
		theme:  th,
		store:  store,
		today:  today,
		box:    box,
		hasBox: hasBox,
		width:  40,
	}
	switch {
	case !hasBox:
		m.state = NoBoxToday
	case store.Get(flags.BlindBoxKey(today)) == flags.Done:
		m.state = OpenedPreviously
	default:
		m.state = Closed
	}
	return m
}

// State reports the current reveal state.
func (m *Model) State() State { return m.state }

// ID returns the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetWidth configures the card width.
func (m *Model) SetWidth(width int) {
	if width < 24 {
		width = 24
	}
	m.width = width
}

// Focus marks the card as receiving key input.
func (m *Model) Focus() tea.Cmd {
	if m.focused {
		return nil
	}
	m.focused = true
	return events.FocusCmd(m.id)
}

// Blur marks the card as inactive.
func (m *Model) Blur() tea.Cmd {
	if !m.focused {
		return nil
	}
	m.focused = false
	return events.BlurCmd(m.id)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles key presses for the reveal flow.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !m.focused {
		return m, nil
	}
	switch key.String() {
	case "enter", " ":
		if m.state == Closed {
			return m, m.Open()
		}
		if m.revealed() && m.box.Type == daily.BoxVideo {
			m.expanded = true
		}
	case "esc":
		m.expanded = false
	case "r":
		return m, m.Reset()
	}
	return m, nil
}

// Open reveals today's box and persists the per-day flag. Storage failures
// are swallowed; the reveal itself is never blocked.
func (m *Model) Open() tea.Cmd {
	if m.state != Closed {
		return nil
	}
	m.state = OpenedThisSession
	_ = m.store.Set(flags.BlindBoxKey(m.today), flags.Done)
	return events.BoxOpenedCmd(m.id, m.today)
}

// Reset clears the persisted flag and closes the box again. Testing
// affordance, not part of the normal flow.
func (m *Model) Reset() tea.Cmd {
	if m.state != OpenedThisSession && m.state != OpenedPreviously {
		return nil
	}
	_ = m.store.Remove(flags.BlindBoxKey(m.today))
	m.state = Closed
	m.expanded = false
	return events.WidgetResetCmd(m.id, m.today)
}

func (m *Model) revealed() bool {
	return m.state == OpenedThisSession || m.state == OpenedPreviously
}
