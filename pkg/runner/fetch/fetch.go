// Package fetch provides the CLI view of a freshly pulled content bundle.
package fetch

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/floof/pkg/content"
)

// Fetch pulls the bundle and prints a per-section summary table.
type Fetch struct {
	Fetcher *content.Fetcher
}

// Do fetches and summarizes the bundle to stdout.
func (f *Fetch) Do(ctx context.Context) error {
	if f.Fetcher == nil {
		return errors.New("can not fetch, no fetcher")
	}

	bundle, err := f.Fetcher.Fetch(ctx)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	_, _ = fmt.Fprintln(color.Output, "")

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Section"), bold.Sprint("Rows"))
	tbl.AddRow("config", len(bundle.Config))
	tbl.AddRow("animal_talk", len(bundle.AnimalTalk))
	tbl.AddRow("daily_menu", len(bundle.DailyMenu))
	tbl.AddRow("daily_interaction", len(bundle.DailyInteraction))
	tbl.AddRow("blind_box", len(bundle.BlindBox))
	_, _ = fmt.Fprintln(color.Output, tbl)

	if bundle.UpdatedAt != "" {
		_, _ = faint.Fprintf(color.Output, "\nupdated_at: %s\n", bundle.UpdatedAt)
	}

	cfg := content.ConfigMap(bundle.Config)
	if len(cfg) > 0 {
		_, _ = fmt.Fprintln(color.Output, "")
		ct := uitable.New()
		ct.Separator = "  "
		ct.AddRow(bold.Sprint("Config key"), bold.Sprint("Value"))
		for _, key := range []string{"pet_name", "pet_skin_url"} {
			if v, ok := cfg[key]; ok {
				ct.AddRow(key, v)
			}
		}
		_, _ = fmt.Fprintln(color.Output, ct)
	}

	fmt.Println("")
	return nil
}
