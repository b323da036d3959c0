package sheets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordsFromValues(t *testing.T) {
	values := [][]interface{}{
		{"sender_name", "sender_linkedin_url", "lead_linkedin_url", "message", "date", "time", "shared_content", "sessionId"},
		{"Alice", "a1", "a1", "hi", "2024-01-01", "09:00", "", "s1"},
		{"Owner", "owner1", "a1", "hello back", "2024-01-01", "10:00", "deck.pdf", "s1"},
	}

	records := RecordsFromValues(values)
	require.Len(t, records, 2)

	require.Equal(t, "Alice", records[0].SenderName)
	require.Equal(t, "a1", records[0].SenderURL)
	require.Equal(t, "a1", records[0].LeadURL)
	require.Equal(t, "hi", records[0].Message)
	require.Equal(t, "2024-01-01 09:00", records[0].Timestamp())

	require.Equal(t, "deck.pdf", records[1].SharedContent)
	require.Equal(t, "s1", records[1].SessionID)
}

func TestRecordsFromValuesShortRowsAndUnknownColumns(t *testing.T) {
	values := [][]interface{}{
		{"sender_name", "message", "mystery_column", "date"},
		{"Alice", "hi"},
		{"Bob", "yo", "ignored", "2024-02-02", "overflow cell"},
	}

	records := RecordsFromValues(values)
	require.Len(t, records, 2)
	require.Equal(t, "Alice", records[0].SenderName)
	require.Empty(t, records[0].Date)
	require.Equal(t, "2024-02-02", records[1].Date)
}

func TestRecordsFromValuesNonStringCells(t *testing.T) {
	values := [][]interface{}{
		{"sender_name", "sessionId"},
		{"Alice", 42},
		{nil, nil},
	}

	records := RecordsFromValues(values)
	require.Len(t, records, 2)
	require.Equal(t, "42", records[0].SessionID)
	require.Empty(t, records[1].SenderName)
}

func TestRecordsFromValuesHeaderOnly(t *testing.T) {
	require.Nil(t, RecordsFromValues([][]interface{}{{"sender_name"}}))
	require.Nil(t, RecordsFromValues(nil))
}
