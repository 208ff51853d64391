// Package ui wires the content bundle into the daily page and runs it.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/floof/pkg/content"
	"tableflip.dev/floof/pkg/daily"
	"tableflip.dev/floof/pkg/flags"
	"tableflip.dev/floof/pkg/greeting"
	"tableflip.dev/floof/pkg/tui/app"
	"tableflip.dev/floof/pkg/tui/theme"
)

// UI fetches the bundle, resolves today's content, and runs the page.
type UI struct {
	Fetcher *content.Fetcher
	Store   flags.Store
	Clock   daily.Clock
}

// Do runs the page. A fetch failure aborts; a greeting failure degrades to a
// plain date line so the page still opens.
func (u *UI) Do(ctx context.Context) error {
	if u.Fetcher == nil {
		return errors.New("can not open ui, no fetcher")
	}
	if u.Store == nil {
		return errors.New("can not open ui, no store")
	}
	if u.Clock == nil {
		return errors.New("can not open ui, no clock")
	}

	bundle, err := u.Fetcher.Fetch(ctx)
	if err != nil {
		return err
	}

	today := u.Clock.Today()
	cfg := content.ConfigMap(bundle.Config)

	dateLine, err := greeting.Format(today)
	if err != nil {
		dateLine = "今天是 " + today
	}

	box, hasBox := daily.TodayBox(bundle.BlindBox, today)
	items := daily.JoinInteractions(
		daily.TodayOptions(bundle.DailyMenu, today),
		bundle.DailyInteraction,
	)

	return app.Run(app.Config{
		Theme:        theme.Default(),
		DateLine:     dateLine,
		Today:        today,
		Store:        u.Store,
		Interactions: items,
		Box:          box,
		HasBox:       hasBox,
		PetName:      cfg["pet_name"],
		PetLines:     daily.TalkLines(bundle.AnimalTalk, today),
	})
}
