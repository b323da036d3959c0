package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/entremotivator/linkup/internal/dashtui"
)

func newTUICmd(a *app) *cobra.Command {
	var refresh time.Duration

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			provider, resolver, err := a.buildProvider(cmd.Context())
			if err != nil {
				return err
			}

			return dashtui.Run(dashtui.Config{
				Provider:        provider,
				Resolver:        resolver,
				OwnerName:       a.cfg.Owner.Name,
				RefreshInterval: refresh,
			})
		},
	}

	cmd.Flags().DurationVar(&refresh, "refresh", 0, "render poll interval (default 15s)")
	return cmd
}
