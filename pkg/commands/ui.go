package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/floof/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open today's page",
		Example: `
floof ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			fetcher, store, clock, err := load()
			if err != nil {
				return err
			}
			i := ui.UI{Fetcher: fetcher, Store: store, Clock: clock}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
