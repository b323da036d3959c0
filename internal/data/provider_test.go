package data

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/entremotivator/linkup/internal/chat"
)

type fakeFetcher struct {
	records []chat.Record
	err     error
	calls   int
}

func (f *fakeFetcher) Fetch(_ context.Context) ([]chat.Record, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func testResolver() *chat.Resolver {
	return chat.NewResolver(chat.Owner{Name: "Owner", ProfileURL: "owner1"})
}

func TestSheetProviderServesCachedSnapshot(t *testing.T) {
	fetcher := &fakeFetcher{records: []chat.Record{
		{SenderName: "Alice", SenderURL: "a1", LeadURL: "a1", Message: "hi"},
	}}

	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	provider := NewSheetProvider(fetcher, testResolver(),
		WithTTL(time.Minute),
		WithNow(func() time.Time { return clock }),
	)

	first, err := provider.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, first.Records, 1)
	require.Len(t, first.Conversations, 1)
	require.NotEmpty(t, first.ID)
	require.Equal(t, 1, fetcher.calls)

	// Inside the validity window: same snapshot, no remote call.
	clock = clock.Add(30 * time.Second)
	cached, err := provider.Snapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, first.ID, cached.ID)
	require.Equal(t, 1, fetcher.calls)

	// Past expiry: a new fetch.
	clock = clock.Add(2 * time.Minute)
	refreshed, err := provider.Snapshot(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, first.ID, refreshed.ID)
	require.Equal(t, 2, fetcher.calls)
}

func TestSheetProviderRefreshForcesFetch(t *testing.T) {
	fetcher := &fakeFetcher{}
	provider := NewSheetProvider(fetcher, testResolver(), WithTTL(time.Hour))

	first, err := provider.Snapshot(context.Background())
	require.NoError(t, err)

	second, err := provider.Refresh(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, 2, fetcher.calls)
}

func TestSheetProviderKeepsLastKnownGoodOnError(t *testing.T) {
	fetcher := &fakeFetcher{records: []chat.Record{{SenderName: "Alice", SenderURL: "a1", LeadURL: "a1"}}}
	provider := NewSheetProvider(fetcher, testResolver(), WithTTL(time.Hour))

	good, err := provider.Snapshot(context.Background())
	require.NoError(t, err)

	fetcher.err = errors.New("auth expired")
	_, err = provider.Refresh(context.Background())
	require.Error(t, err)
	require.ErrorContains(t, err, "record source")

	require.NotNil(t, provider.Cached())
	require.Equal(t, good.ID, provider.Cached().ID)
}

func TestSheetProviderEmptySource(t *testing.T) {
	provider := NewSheetProvider(&fakeFetcher{}, testResolver())
	snapshot, err := provider.Snapshot(context.Background())
	require.NoError(t, err)
	require.Empty(t, snapshot.Records)
	require.Empty(t, snapshot.Conversations)
	require.Equal(t, 0, snapshot.Totals.Messages)
}
