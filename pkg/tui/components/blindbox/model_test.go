package blindbox

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/floof/pkg/daily"
	"tableflip.dev/floof/pkg/flags"
	"tableflip.dev/floof/pkg/tui/events"
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

func textBox() daily.Box {
	return daily.Box{Date: "2026-02-09", Type: daily.BoxText, Title: "给你的", Content: "今天也要加油"}
}

func TestMountWithoutBox(t *testing.T) {
	m := NewModel(theme.Default(), flags.Memory(), "2026-02-09", daily.Box{}, false)
	if m.State() != NoBoxToday {
		t.Fatalf("state = %v, want NoBoxToday", m.State())
	}
	if got := stripANSIString(m.View()); !strings.Contains(got, "今天没有盲盒") {
		t.Fatalf("view missing empty-day message:\n%s", got)
	}
	// Keys do nothing without a box.
	m.focused = true
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Fatalf("enter should be a no-op without a box")
	}
}

func TestOpenPersistsFlagAndEmits(t *testing.T) {
	store := flags.Memory()
	m := NewModel(theme.Default(), store, "2026-02-09", textBox(), true)
	if m.State() != Closed {
		t.Fatalf("state = %v, want Closed", m.State())
	}
	_ = m.Focus()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.State() != OpenedThisSession {
		t.Fatalf("state = %v, want OpenedThisSession", m.State())
	}
	if store.Get(flags.BlindBoxKey("2026-02-09")) != flags.Done {
		t.Fatalf("flag not persisted")
	}
	if cmd == nil {
		t.Fatalf("expected an opened event")
	}
	if _, ok := cmd().(events.BoxOpenedMsg); !ok {
		t.Fatalf("expected BoxOpenedMsg")
	}

	view := stripANSIString(m.View())
	if !strings.Contains(view, "今天也要加油") {
		t.Fatalf("opened view missing content:\n%s", view)
	}
	if strings.Contains(view, "已经开过") {
		t.Fatalf("fresh open should not show the already-opened note")
	}
}

func TestMountWithFlagAlreadySet(t *testing.T) {
	store := flags.Memory()
	_ = store.Set(flags.BlindBoxKey("2026-02-09"), flags.Done)

	m := NewModel(theme.Default(), store, "2026-02-09", textBox(), true)
	if m.State() != OpenedPreviously {
		t.Fatalf("state = %v, want OpenedPreviously", m.State())
	}
	view := stripANSIString(m.View())
	if !strings.Contains(view, "你今天已经开过盲盒啦") {
		t.Fatalf("view missing already-opened note:\n%s", view)
	}
}

func TestResetClosesAndClearsFlag(t *testing.T) {
	store := flags.Memory()
	_ = store.Set(flags.BlindBoxKey("2026-02-09"), flags.Done)
	m := NewModel(theme.Default(), store, "2026-02-09", textBox(), true)
	_ = m.Focus()

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if m.State() != Closed {
		t.Fatalf("state = %v, want Closed after reset", m.State())
	}
	if store.Get(flags.BlindBoxKey("2026-02-09")) != "" {
		t.Fatalf("flag should be removed")
	}
	if cmd == nil {
		t.Fatalf("expected a reset event")
	}
	if _, ok := cmd().(events.WidgetResetMsg); !ok {
		t.Fatalf("expected WidgetResetMsg")
	}
}

func TestVideoExpandCollapse(t *testing.T) {
	box := daily.Box{Date: "2026-02-09", Type: daily.BoxVideo, Content: "https://example.com/v"}
	m := NewModel(theme.Default(), flags.Memory(), "2026-02-09", box, true)
	_ = m.Focus()

	_, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // open
	if got := stripANSIString(m.View()); !strings.Contains(got, "播放") {
		t.Fatalf("film frame missing play affordance:\n%s", got)
	}

	_, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // expand
	if got := stripANSIString(m.View()); !strings.Contains(got, "Now playing") {
		t.Fatalf("expanded view missing playback:\n%s", got)
	}

	_, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if got := stripANSIString(m.View()); strings.Contains(got, "Now playing") {
		t.Fatalf("esc should collapse playback")
	}
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	m := NewModel(theme.Default(), flags.Memory(), "2026-02-09", textBox(), true)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.State() != Closed || cmd != nil {
		t.Fatalf("unfocused widget should ignore keys")
	}
}
