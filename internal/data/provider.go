// Package data provides the record provider behind the dashboard views:
// a time-bounded snapshot cache over the remote record source, with the
// per-snapshot conversation grouping and totals computed once per fetch.
package data

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/entremotivator/linkup/internal/chat"
	"github.com/entremotivator/linkup/internal/logging"
)

const defaultSnapshotTTL = 60 * time.Second

// RecordFetcher abstracts the remote record source. The sheets client
// implements it; tests substitute fakes.
type RecordFetcher interface {
	Fetch(ctx context.Context) ([]chat.Record, error)
}

// Snapshot is one fully processed fetch of the record source. It is
// built once and never mutated afterwards, so views may share it freely.
type Snapshot struct {
	ID            string
	FetchedAt     time.Time
	Records       []chat.Record
	Conversations map[string]*chat.Conversation
	Totals        chat.Totals
}

// RecordProvider serves snapshots to the views.
type RecordProvider interface {
	// Snapshot returns the current snapshot, fetching only when the
	// cached one has expired.
	Snapshot(ctx context.Context) (*Snapshot, error)
	// Refresh invalidates the cache and forces a fetch.
	Refresh(ctx context.Context) (*Snapshot, error)
	// Cached returns the last successfully fetched snapshot without
	// touching the source, or nil when none exists yet.
	Cached() *Snapshot
}

// SheetProvider implements RecordProvider over a RecordFetcher with a TTL
// cache. One full pipeline pass (fetch, resolve, aggregate) runs per
// cache miss; every interaction inside the validity window reuses the
// snapshot. On fetch failure the error surfaces immediately and the
// last-known-good snapshot is retained for degraded rendering.
type SheetProvider struct {
	fetcher  RecordFetcher
	resolver *chat.Resolver
	cache    *snapshotCache
	now      func() time.Time
	log      zerolog.Logger
}

// ProviderOption customizes a SheetProvider.
type ProviderOption func(*SheetProvider)

// WithTTL sets the snapshot validity window.
func WithTTL(ttl time.Duration) ProviderOption {
	return func(p *SheetProvider) {
		if ttl > 0 {
			p.cache.ttl = ttl
		}
	}
}

// WithNow overrides the clock, for tests.
func WithNow(now func() time.Time) ProviderOption {
	return func(p *SheetProvider) {
		if now != nil {
			p.now = now
			p.cache.now = now
		}
	}
}

// NewSheetProvider builds a provider over the given fetcher and owner
// resolver.
func NewSheetProvider(fetcher RecordFetcher, resolver *chat.Resolver, opts ...ProviderOption) *SheetProvider {
	provider := &SheetProvider{
		fetcher:  fetcher,
		resolver: resolver,
		now:      time.Now,
		cache:    newSnapshotCache(defaultSnapshotTTL, time.Now),
		log:      logging.Component("provider"),
	}
	for _, opt := range opts {
		opt(provider)
	}
	return provider
}

// Snapshot returns the cached snapshot while it is fresh, otherwise
// fetches a new one.
func (p *SheetProvider) Snapshot(ctx context.Context) (*Snapshot, error) {
	if snapshot, ok := p.cache.get(); ok {
		return snapshot, nil
	}
	return p.fetch(ctx)
}

// Refresh drops the cached snapshot and fetches a new one.
func (p *SheetProvider) Refresh(ctx context.Context) (*Snapshot, error) {
	p.cache.invalidate()
	return p.fetch(ctx)
}

// Cached returns the last successful snapshot, fresh or stale, without
// consulting the source.
func (p *SheetProvider) Cached() *Snapshot {
	return p.cache.last()
}

func (p *SheetProvider) fetch(ctx context.Context) (*Snapshot, error) {
	records, err := p.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("record source: %w", err)
	}

	snapshot := &Snapshot{
		ID:            uuid.NewString(),
		FetchedAt:     p.now().UTC(),
		Records:       records,
		Conversations: chat.BuildConversations(records, p.resolver),
		Totals:        chat.ComputeTotals(records, p.resolver),
	}
	p.cache.put(snapshot)

	p.log.Debug().
		Str("snapshot_id", snapshot.ID).
		Int("records", len(records)).
		Int("conversations", len(snapshot.Conversations)).
		Msg("snapshot built")
	return snapshot, nil
}
