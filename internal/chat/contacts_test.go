package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ownerResolver() *Resolver {
	return NewResolver(Owner{Name: "Owner", ProfileURL: "owner1"})
}

func TestBuildConversationsTwoPartyThread(t *testing.T) {
	records := []Record{
		{SenderName: "Alice", SenderURL: "a1", LeadURL: "a1", Date: "2024-01-01", Time: "09:00", Message: "hi"},
		{SenderName: "Owner", SenderURL: "owner1", LeadURL: "a1", Date: "2024-01-01", Time: "10:00", Message: "hello back"},
	}

	conversations := BuildConversations(records, ownerResolver())
	require.Len(t, conversations, 1)

	conv, ok := conversations["a1"]
	require.True(t, ok)
	require.Equal(t, "Alice", conv.Name)
	require.Len(t, conv.Messages, 2)
	require.Equal(t, 1, conv.SentCount)
	require.Equal(t, 1, conv.ReceivedCount)
	require.Equal(t, "2024-01-01 10:00", conv.LastContact())
}

func TestBuildConversationsOwnerNeverSeedsBucket(t *testing.T) {
	// The owner wrote first and the counterparty never replied: no
	// bucket exists, so the message is dropped from per-contact views.
	records := []Record{
		{SenderName: "Owner", SenderURL: "owner1", LeadURL: "b2", Message: "cold outreach"},
	}

	conversations := BuildConversations(records, ownerResolver())
	require.Empty(t, conversations)
}

func TestBuildConversationsUnattributableRecordDropped(t *testing.T) {
	records := []Record{
		{SenderName: "Ghost", Message: "no urls at all"},
		{SenderName: "Alice", SenderURL: "a1", LeadURL: "a1", Message: "hi"},
	}

	conversations := BuildConversations(records, ownerResolver())
	require.Len(t, conversations, 1)
	require.Len(t, conversations["a1"].Messages, 1)

	// Aggregate totals still see the dropped record.
	totals := ComputeTotals(records, ownerResolver())
	require.Equal(t, 2, totals.Messages)
}

func TestBuildConversationsLeadURLFallback(t *testing.T) {
	records := []Record{
		{SenderName: "Bob", LeadURL: "b2", Message: "sent from mobile, no sender url"},
	}

	conversations := BuildConversations(records, ownerResolver())
	require.Len(t, conversations, 1)
	require.Equal(t, "Bob", conversations["b2"].Name)
	require.Equal(t, 1, conversations["b2"].ReceivedCount)
}

func TestBuildConversationsFirstNonEmptyNameWins(t *testing.T) {
	records := []Record{
		{SenderURL: "a1", LeadURL: "a1", Message: "nameless first"},
		{SenderName: "Alice", SenderURL: "a1", LeadURL: "a1", Message: "named second"},
	}

	conversations := BuildConversations(records, ownerResolver())
	require.Equal(t, "Alice", conversations["a1"].Name)
	require.Len(t, conversations["a1"].Messages, 2)
}

func TestBuildConversationsCountInvariantAndCoverage(t *testing.T) {
	records := []Record{
		{SenderName: "Alice", SenderURL: "a1", LeadURL: "a1", Message: "one"},
		{SenderName: "Owner", SenderURL: "owner1", LeadURL: "a1", Message: "two"},
		{SenderName: "Bob", SenderURL: "b2", LeadURL: "b2", Message: "three"},
		{SenderName: "Owner", SenderURL: "owner1", LeadURL: "b2", Message: "four"},
		{SenderName: "Owner", SenderURL: "owner1", LeadURL: "missing", Message: "dropped"},
		{Message: "unattributable"},
	}

	conversations := BuildConversations(records, ownerResolver())

	attributed := 0
	for _, conv := range conversations {
		require.Equal(t, len(conv.Messages), conv.SentCount+conv.ReceivedCount)
		attributed += len(conv.Messages)
	}
	// Each record lands in at most one bucket; the two unroutable ones
	// land in none.
	require.Equal(t, len(records)-2, attributed)
}

func TestBuildConversationsEmptyInput(t *testing.T) {
	require.Empty(t, BuildConversations(nil, ownerResolver()))
}

func TestContactsOrdering(t *testing.T) {
	conversations := map[string]*Conversation{
		"a1": {Name: "Alice", URL: "a1", Messages: make([]Record, 2), LastDate: "2024-01-03", LastTime: "08:00"},
		"b2": {Name: "bob", URL: "b2", Messages: make([]Record, 5), LastDate: "2024-01-01", LastTime: "09:00"},
		"c3": {Name: "Cara", URL: "c3", Messages: make([]Record, 2), LastDate: "2024-01-02", LastTime: "23:59"},
	}

	byName := Contacts(conversations, ContactsByName)
	require.Equal(t, []string{"Alice", "bob", "Cara"}, contactNames(byName))

	byCount := Contacts(conversations, ContactsByCount)
	require.Equal(t, []string{"bob", "Alice", "Cara"}, contactNames(byCount))

	byRecent := Contacts(conversations, ContactsByRecent)
	require.Equal(t, []string{"Alice", "Cara", "bob"}, contactNames(byRecent))
}

func contactNames(contacts []*Conversation) []string {
	names := make([]string, len(contacts))
	for i, conv := range contacts {
		names[i] = conv.Name
	}
	return names
}
