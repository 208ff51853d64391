package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/floof/pkg/daily"
	"tableflip.dev/floof/pkg/flags"
	"tableflip.dev/floof/pkg/runner/reset"
)

func addReset(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reset [blindbox|daily]",
		Short: "clear today's once-per-day flags",
		Example: `
floof reset
floof reset blindbox
floof reset daily
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"blindbox", "daily"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.LoadConfig()
			if err != nil {
				return err
			}
			clock, err := daily.NewClock(cfg.Timezone())
			if err != nil {
				return err
			}
			scope := ""
			if len(args) == 1 {
				scope = args[0]
			}
			r := reset.Reset{Store: flags.Open(cfg.BasePath()), Clock: clock, Scope: scope}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
