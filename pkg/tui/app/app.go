// Package app composes the daily page: greeting header, the two cards, and
// the pet overlay spliced on top.
package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/floof/pkg/daily"
	"tableflip.dev/floof/pkg/flags"
	"tableflip.dev/floof/pkg/tui/components/blindbox"
	"tableflip.dev/floof/pkg/tui/components/chooser"
	"tableflip.dev/floof/pkg/tui/components/floofpet"
	"tableflip.dev/floof/pkg/tui/components/header"
	"tableflip.dev/floof/pkg/tui/theme"
)

const (
	focusChooser = iota
	focusBlindBox
)

// Config carries everything the page needs, already resolved: today's
// interactions, box, and pet lines come out of the content rules.
type Config struct {
	Theme    theme.Theme
	DateLine string
	Today    string
	Store    flags.Store

	Interactions []daily.Interaction
	Box          daily.Box
	HasBox       bool

	PetName  string
	PetLines []string
}

// Model is the root page model.
type Model struct {
	theme theme.Theme

	header   *header.Model
	chooser  *chooser.Model
	blindbox *blindbox.Model
	pet      *floofpet.Model

	focus  int
	width  int
	height int
}

// New constructs the page from resolved content.
func New(cfg Config) *Model {
	th := cfg.Theme
	return &Model{
		theme:    th,
		header:   header.NewModel(th, cfg.DateLine),
		chooser:  chooser.NewModel(th, cfg.Store, cfg.Today, cfg.Interactions),
		blindbox: blindbox.NewModel(th, cfg.Store, cfg.Today, cfg.Box, cfg.HasBox),
		pet:      floofpet.NewModel(th, cfg.PetName, cfg.PetLines),
		focus:    focusChooser,
	}
}

// Run launches the Bubble Tea program for the page. Mouse motion is on so
// the pet can trail the pointer while dragged.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.chooser.Focus()
}

// Update routes messages. Cards only act on keys while focused; the pet
// watches pointer and timer traffic regardless of card focus.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.layout()
	case tea.KeyPressMsg:
		switch v.String() {
		case "ctrl+c", "q":
			// The chooser's text input wants plain q; only quit on it when
			// typing is not in flight.
			if v.String() == "ctrl+c" || !m.typing() {
				return m, tea.Quit
			}
		case "tab":
			return m, m.toggleFocus()
		}
	}

	if next, cmd := m.chooser.Update(msg); next != nil {
		if cm, ok := next.(*chooser.Model); ok {
			m.chooser = cm
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if next, cmd := m.blindbox.Update(msg); next != nil {
		if bm, ok := next.(*blindbox.Model); ok {
			m.blindbox = bm
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if next, cmd := m.pet.Update(msg); next != nil {
		if pm, ok := next.(*floofpet.Model); ok {
			m.pet = pm
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) typing() bool {
	return m.focus == focusChooser && m.chooser.State() == chooser.Answering
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusChooser {
		m.focus = focusBlindBox
		return tea.Batch(m.chooser.Blur(), m.blindbox.Focus())
	}
	m.focus = focusChooser
	return tea.Batch(m.blindbox.Blur(), m.chooser.Focus())
}

func (m *Model) layout() {
	w := m.width
	if w <= 0 {
		w = 80
	}
	m.header.SetWidth(w - 2)
	cardW := (w - 6) / 2
	m.chooser.SetWidth(cardW)
	m.blindbox.SetWidth(cardW)
	m.pet.SetViewport(w, m.height)
}

// View renders the page and splices the pet block over it.
func (m *Model) View() (string, *tea.Cursor) {
	chooserFrame := m.theme.Card.Frame
	blindboxFrame := m.theme.Card.Frame
	if m.focus == focusChooser {
		chooserFrame = m.theme.Card.FocusedFrame
	} else {
		blindboxFrame = m.theme.Card.FocusedFrame
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		chooserFrame.Render(m.chooser.View()),
		" ",
		blindboxFrame.Render(m.blindbox.View()),
	)

	page := m.header.View() + "\n\n" + cards + "\n" +
		m.theme.Card.Muted.Render("tab 切换卡片 · q 退出")

	pet := m.pet.View()
	x, y, ok := m.pet.Position()
	if !ok {
		// Default corner, bottom right of the viewport.
		x = m.width - lipgloss.Width(pet) - 2
		y = m.height - lipgloss.Height(pet) - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return overlayAt(page, pet, x, y), nil
}

// overlayAt splices block over base starting at cell (x, y). Base lines are
// truncated at x and the block replaces everything to the right on the rows
// it covers.
func overlayAt(base, block string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	blockLines := strings.Split(block, "\n")

	for len(baseLines) < y+len(blockLines) {
		baseLines = append(baseLines, "")
	}
	for i, bl := range blockLines {
		row := y + i
		left := truncate.String(baseLines[row], uint(x))
		if pad := x - ansi.PrintableRuneWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		baseLines[row] = left + bl
	}
	return strings.Join(baseLines, "\n")
}
