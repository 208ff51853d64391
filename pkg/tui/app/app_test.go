package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/floof/pkg/content"
	"tableflip.dev/floof/pkg/daily"
	"tableflip.dev/floof/pkg/flags"
	"tableflip.dev/floof/pkg/tui/theme"
)

func stripANSIString(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func testConfig() Config {
	rows := []content.Row{
		{"option_id": "a", "title": "聊聊天", "interaction_type": "choice", "payload": `["yes"]`},
	}
	return Config{
		Theme:        theme.Default(),
		DateLine:     "今天是2026年2月9日，星期一，农历腊月廿二",
		Today:        "2026-02-09",
		Store:        flags.Memory(),
		Interactions: daily.JoinInteractions([]string{"a"}, rows),
		Box:          daily.Box{Date: "2026-02-09", Type: daily.BoxText, Content: "hi"},
		HasBox:       true,
		PetName:      "静静子",
		PetLines:     []string{"我在这。"},
	}
}

func TestOverlayAtSplices(t *testing.T) {
	base := "aaaa\nbbbb\ncccc"
	got := overlayAt(base, "XX", 2, 1)
	want := "aaaa\nbbXX\ncccc"
	if got != want {
		t.Fatalf("overlayAt = %q, want %q", got, want)
	}
}

func TestOverlayAtExtendsShortBase(t *testing.T) {
	got := overlayAt("top", "P\nQ", 4, 1)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if lines[1] != "    P" || lines[2] != "    Q" {
		t.Fatalf("overlay misplaced: %q", got)
	}
}

func TestViewShowsHeaderCardsAndPet(t *testing.T) {
	m := New(testConfig())
	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view, _ := m.View()
	plain := stripANSIString(view)
	for _, want := range []string{"今天是2026年2月9日", "聊聊天", "Blind Box", "静静子"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("view missing %q:\n%s", want, plain)
		}
	}
}

func TestTabMovesFocusBetweenCards(t *testing.T) {
	m := New(testConfig())
	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	_ = m.Init()

	if m.focus != focusChooser {
		t.Fatalf("initial focus = %d, want chooser", m.focus)
	}
	_, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if m.focus != focusBlindBox {
		t.Fatalf("focus = %d, want blind box after tab", m.focus)
	}
	_, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if m.focus != focusChooser {
		t.Fatalf("focus = %d, want chooser after second tab", m.focus)
	}
}

func TestQuitKeys(t *testing.T) {
	m := New(testConfig())
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatalf("q should quit outside of typing")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Fatalf("expected QuitMsg, got %#v", msg)
	}
}
