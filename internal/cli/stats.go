package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print aggregate message counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			provider, _, err := a.buildProvider(cmd.Context())
			if err != nil {
				return err
			}

			snapshot, err := provider.Snapshot(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(snapshot.Totals)
			}

			totals := snapshot.Totals
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Messages:  %d (%d sent, %d received)\n", totals.Messages, totals.Sent, totals.Received)
			fmt.Fprintf(out, "Contacts:  %d\n", totals.Contacts)
			fmt.Fprintf(out, "Senders:   %d\n", totals.Senders)
			fmt.Fprintf(out, "Sessions:  %d\n", totals.Sessions)
			for _, day := range totals.PerDay {
				fmt.Fprintf(out, "  %s  %d\n", day.Date, day.Count)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit totals as JSON")
	return cmd
}
