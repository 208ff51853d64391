package header

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"

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

func TestViewShowsDateAndTitle(t *testing.T) {
	m := NewModel(theme.Default(), "今天是2026年2月9日，星期一，农历腊月廿二")
	m.SetWidth(60)
	got := stripANSIString(m.View())
	if !strings.Contains(got, "今天是2026年2月9日") {
		t.Fatalf("view missing date line:\n%s", got)
	}
	if !strings.Contains(got, "又是喜欢你的一天") {
		t.Fatalf("view missing title:\n%s", got)
	}
}
