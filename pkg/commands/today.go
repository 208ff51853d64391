package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/floof/pkg/runner/today"
)

func addToday(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "preview today's greeting, chooser, and blind box",
		Example: `
floof today
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			fetcher, store, clock, err := load()
			if err != nil {
				return err
			}
			t := today.Today{Fetcher: fetcher, Store: store, Clock: clock}
			return t.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
