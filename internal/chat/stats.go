package chat

import "sort"

// Totals holds the aggregate counts shown in the dashboard header. They
// are computed over the full record set, so records dropped from
// per-contact grouping still count here.
type Totals struct {
	Messages int `json:"messages"`
	Contacts int `json:"contacts"`
	Senders  int `json:"senders"`
	Sessions int `json:"sessions"`
	Sent     int `json:"sent"`
	Received int `json:"received"`

	// PerDay is a basic per-date message count series, ordered by the
	// date literal.
	PerDay []DayCount `json:"per_day"`
}

// DayCount is one point of the per-date series.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ComputeTotals scans the full record sequence once and returns the
// aggregate counts. Contacts are distinct lead URLs, senders distinct
// sender names, sessions distinct session IDs; empty values count for
// none of them.
func ComputeTotals(records []Record, resolver *Resolver) Totals {
	totals := Totals{Messages: len(records)}

	contacts := make(map[string]struct{})
	senders := make(map[string]struct{})
	sessions := make(map[string]struct{})
	perDay := make(map[string]int)

	for _, record := range records {
		if record.LeadURL != "" {
			contacts[record.LeadURL] = struct{}{}
		}
		if record.SenderName != "" {
			senders[record.SenderName] = struct{}{}
		}
		if record.SessionID != "" {
			sessions[record.SessionID] = struct{}{}
		}
		if record.Date != "" {
			perDay[record.Date]++
		}
		if resolver.IsOwner(record.SenderName, record.SenderURL) {
			totals.Sent++
		} else {
			totals.Received++
		}
	}

	totals.Contacts = len(contacts)
	totals.Senders = len(senders)
	totals.Sessions = len(sessions)

	totals.PerDay = make([]DayCount, 0, len(perDay))
	for date, count := range perDay {
		totals.PerDay = append(totals.PerDay, DayCount{Date: date, Count: count})
	}
	sort.Slice(totals.PerDay, func(i, j int) bool {
		return totals.PerDay[i].Date < totals.PerDay[j].Date
	})
	return totals
}
