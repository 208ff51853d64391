// Package reset clears today's persisted once-per-day flags.
package reset

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/floof/pkg/daily"
	"tableflip.dev/floof/pkg/flags"
)

// Reset removes today's flags. Scope narrows the removal to one widget;
// empty means everything.
type Reset struct {
	Store flags.Store
	Clock daily.Clock
	Scope string
}

// Do removes the flags and reports what was cleared.
func (r *Reset) Do(ctx context.Context) error {
	if r.Store == nil {
		return errors.New("can not reset, no store")
	}
	if r.Clock == nil {
		return errors.New("can not reset, no clock")
	}

	today := r.Clock.Today()
	var keys []string
	switch r.Scope {
	case "":
		keys = []string{
			flags.BlindBoxKey(today),
			flags.DailyDoneKey(today),
			flags.DailyReplyKey(today),
		}
	case "blindbox":
		keys = []string{flags.BlindBoxKey(today)}
	case "daily":
		keys = []string{
			flags.DailyDoneKey(today),
			flags.DailyReplyKey(today),
		}
	default:
		return fmt.Errorf("unknown reset scope %q, want blindbox or daily", r.Scope)
	}

	for _, k := range keys {
		if err := r.Store.Remove(k); err != nil {
			return fmt.Errorf("removing %s: %w", k, err)
		}
	}

	faint := color.New(color.Faint)
	_, _ = faint.Fprintf(color.Output, "cleared %d flags for %s\n", len(keys), today)
	return nil
}
