package chat

import (
	"sort"
	"strings"
)

// Direction partitions records by authorship.
type Direction string

const (
	DirectionAll      Direction = "all"
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

// ParseDirection maps user input to a Direction, defaulting to all.
func ParseDirection(value string) Direction {
	switch Direction(strings.ToLower(strings.TrimSpace(value))) {
	case DirectionSent:
		return DirectionSent
	case DirectionReceived:
		return DirectionReceived
	default:
		return DirectionAll
	}
}

// Filter describes one pass of the feed filter engine. The zero value is
// the identity filter.
type Filter struct {
	// Query is matched case-insensitively as a substring of the
	// message body. An empty query matches everything.
	Query string
	// SearchSender extends Query matching to the sender name, as the
	// all-messages view does.
	SearchSender bool
	// Direction keeps only owner-authored (sent) or counterparty
	// (received) records.
	Direction Direction
	// SharedOnly keeps only records with shared content.
	SharedOnly bool
}

// ApplyFilter returns the records that pass the filter, in input order,
// as a fresh slice. The input is never mutated.
func ApplyFilter(records []Record, filter Filter, resolver *Resolver) []Record {
	filtered := make([]Record, 0, len(records))
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	for _, record := range records {
		if !matchesQuery(record, query, filter.SearchSender) {
			continue
		}
		switch filter.Direction {
		case DirectionSent:
			if !resolver.IsOwner(record.SenderName, record.SenderURL) {
				continue
			}
		case DirectionReceived:
			if resolver.IsOwner(record.SenderName, record.SenderURL) {
				continue
			}
		}
		if filter.SharedOnly && !record.HasSharedContent() {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

func matchesQuery(record Record, query string, searchSender bool) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(record.Message), query) {
		return true
	}
	if searchSender && strings.Contains(strings.ToLower(record.SenderName), query) {
		return true
	}
	return false
}

// SortChronological returns a fresh, stably sorted copy of the records
// ordered by the (date, time) pair as literal text. Descending order is
// the exact reverse of the ascending order.
//
// The comparison is lexicographic: chronological correctness depends
// entirely on the source storing both fields in a sortable literal
// encoding (ISO dates, zero-padded 24-hour times). The engine does not
// parse or normalize timestamps.
func SortChronological(records []Record, ascending bool) []Record {
	sorted := cloneRecords(records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sortKey(sorted[i]) < sortKey(sorted[j])
	})
	if !ascending {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}
	return sorted
}

func sortKey(record Record) string {
	return record.Date + "\x00" + record.Time
}
