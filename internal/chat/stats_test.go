package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	records := []Record{
		{SenderName: "Alice", SenderURL: "a1", LeadURL: "a1", Date: "2024-01-01", SessionID: "s1"},
		{SenderName: "Owner", SenderURL: "owner1", LeadURL: "a1", Date: "2024-01-01", SessionID: "s1"},
		{SenderName: "Bob", SenderURL: "b2", LeadURL: "b2", Date: "2024-01-02", SessionID: "s2"},
		{Message: "unattributable, but still counted"},
	}

	totals := ComputeTotals(records, ownerResolver())
	require.Equal(t, 4, totals.Messages)
	require.Equal(t, 2, totals.Contacts)
	require.Equal(t, 3, totals.Senders)
	require.Equal(t, 2, totals.Sessions)
	require.Equal(t, 1, totals.Sent)
	require.Equal(t, 3, totals.Received)

	require.Equal(t, []DayCount{
		{Date: "2024-01-01", Count: 2},
		{Date: "2024-01-02", Count: 1},
	}, totals.PerDay)
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil, ownerResolver())
	require.Equal(t, 0, totals.Messages)
	require.Empty(t, totals.PerDay)
}
