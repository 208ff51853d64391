// Package today prints what the page would show for today without opening it.
package today

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/floof/pkg/content"
	"tableflip.dev/floof/pkg/daily"
	"tableflip.dev/floof/pkg/flags"
	"tableflip.dev/floof/pkg/greeting"
)

// Today resolves and prints today's greeting, chooser items, box, and flag
// state.
type Today struct {
	Fetcher *content.Fetcher
	Store   flags.Store
	Clock   daily.Clock
}

// Do prints the day preview to stdout.
func (t *Today) Do(ctx context.Context) error {
	if t.Fetcher == nil {
		return errors.New("can not preview, no fetcher")
	}
	if t.Clock == nil {
		return errors.New("can not preview, no clock")
	}

	bundle, err := t.Fetcher.Fetch(ctx)
	if err != nil {
		return err
	}
	today := t.Clock.Today()

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	_, _ = fmt.Fprintln(color.Output, "")
	line, err := greeting.Format(today)
	if err != nil {
		line = "今天是 " + today
	}
	_, _ = bold.Fprintln(color.Output, line)
	_, _ = fmt.Fprintln(color.Output, "")

	lines := daily.TalkLines(bundle.AnimalTalk, today)
	_, _ = faint.Fprintf(color.Output, "pet lines: %d\n", len(lines))

	items := daily.JoinInteractions(
		daily.TodayOptions(bundle.DailyMenu, today),
		bundle.DailyInteraction,
	)
	if len(items) == 0 {
		_, _ = faint.Fprintln(color.Output, "chooser: nothing scheduled")
	} else {
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow(bold.Sprint("Option"), bold.Sprint("Title"), bold.Sprint("Type"))
		for _, it := range items {
			tbl.AddRow(it.OptionID, it.Title, string(it.Type))
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	}

	if box, ok := daily.TodayBox(bundle.BlindBox, today); ok {
		_, _ = fmt.Fprintf(color.Output, "blind box: %s (%s)\n", box.Title, box.Type)
	} else {
		_, _ = faint.Fprintln(color.Output, "blind box: none")
	}

	if t.Store != nil {
		_, _ = faint.Fprintf(color.Output, "opened today: %v, daily done: %v\n",
			t.Store.Get(flags.BlindBoxKey(today)) == flags.Done,
			t.Store.Get(flags.DailyDoneKey(today)) == flags.Done,
		)
	}

	fmt.Println("")
	return nil
}
