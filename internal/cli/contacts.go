package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/entremotivator/linkup/internal/chat"
)

func newContactsCmd(a *app) *cobra.Command {
	var sortBy string

	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Print the contact summary table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			order := chat.ContactOrder(sortBy)
			switch order {
			case chat.ContactsByName, chat.ContactsByCount, chat.ContactsByRecent:
			default:
				return fmt.Errorf("invalid sort %q (name, count, recent)", sortBy)
			}

			provider, _, err := a.buildProvider(cmd.Context())
			if err != nil {
				return err
			}

			snapshot, err := provider.Snapshot(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMESSAGES\tSENT\tRECEIVED\tLAST CONTACT\tURL")
			for _, conv := range chat.Contacts(snapshot.Conversations, order) {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%s\n",
					conv.Name, len(conv.Messages), conv.SentCount, conv.ReceivedCount,
					conv.LastContact(), conv.URL)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", string(chat.ContactsByName), "sort order (name, count, recent)")
	return cmd
}
