package commands

import (
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/floof/pkg/content"
	"tableflip.dev/floof/pkg/daily"
	"tableflip.dev/floof/pkg/flags"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "floof",
		Short: base.Wrap80("A little daily page: greeting, pick-one-of-three, blind box, and a pet."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addFetch(topLevel)
	addToday(topLevel)
	addReset(topLevel)
	addVersion(topLevel)
}

// load resolves config into the pieces every runner needs.
func load() (*content.Fetcher, flags.Store, daily.Clock, error) {
	cfg, err := flags.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	if cfg.ContentURL() == "" {
		return nil, nil, nil, errors.New("content_url is not set; put it in .floof.yaml or FLOOF_CONTENT_URL")
	}
	clock, err := daily.NewClock(cfg.Timezone())
	if err != nil {
		return nil, nil, nil, err
	}
	return content.NewFetcher(cfg.ContentURL()), flags.Open(cfg.BasePath()), clock, nil
}
