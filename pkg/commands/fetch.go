package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/floof/pkg/runner/fetch"
)

func addFetch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "pull the content bundle and summarize it",
		Example: `
floof fetch
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			fetcher, _, _, err := load()
			if err != nil {
				return err
			}
			f := fetch.Fetch{Fetcher: fetcher}
			return f.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
