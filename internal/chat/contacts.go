package chat

import (
	"sort"
	"strings"
)

// Conversation is the aggregated per-counterparty view of all messages
// linked to that counterparty, keyed by the counterparty's profile URL.
type Conversation struct {
	// Name and URL identify the counterparty. The first non-empty
	// name encountered during discovery wins.
	Name string `json:"name"`
	URL  string `json:"url"`

	// Messages holds the records attributed to this counterparty in
	// source order. Chronological order is applied at render time.
	Messages []Record `json:"messages"`

	SentCount     int `json:"sent_count"`
	ReceivedCount int `json:"received_count"`

	// LastDate and LastTime track the most recently appended record,
	// in source order, not necessarily the chronologically last one.
	LastDate string `json:"last_date"`
	LastTime string `json:"last_time"`
}

// LastContact returns the display form of the last-appended timestamp.
func (c *Conversation) LastContact() string {
	return strings.TrimSpace(c.LastDate + " " + c.LastTime)
}

// BuildConversations groups a flat record sequence into per-counterparty
// conversations. It is a pure fold over the input: the returned map is
// freshly built on every call and the input is never mutated.
//
// The grouping runs in two passes. The discovery pass seeds a bucket for
// every counterparty who authored at least one inbound record, keyed by
// the author's profile URL with the record's lead URL as fallback.
// Owner-authored records never seed a bucket: a message sent to someone
// does not establish that person's display name. The attribution pass
// then accumulates every record into its conversation: owner-authored
// records go to the lead URL's bucket, others to the author's own key.
// Records that resolve to no existing bucket are dropped from per-contact
// views; aggregate totals count them separately.
func BuildConversations(records []Record, resolver *Resolver) map[string]*Conversation {
	conversations := make(map[string]*Conversation)

	for _, record := range records {
		if resolver.IsOwner(record.SenderName, record.SenderURL) {
			continue
		}
		key := counterpartyKey(record)
		if key == "" {
			continue
		}
		name := record.SenderName
		if name == "" {
			name = record.LeadName
		}
		conv, ok := conversations[key]
		if !ok {
			conversations[key] = &Conversation{Name: name, URL: key}
			continue
		}
		if conv.Name == "" {
			conv.Name = name
		}
	}

	for _, record := range records {
		owned := resolver.IsOwner(record.SenderName, record.SenderURL)
		key := record.LeadURL
		if !owned {
			key = counterpartyKey(record)
		}
		conv, ok := conversations[key]
		if !ok {
			continue
		}
		conv.Messages = append(conv.Messages, record)
		if owned {
			conv.SentCount++
		} else {
			conv.ReceivedCount++
		}
		conv.LastDate = record.Date
		conv.LastTime = record.Time
	}

	return conversations
}

func counterpartyKey(record Record) string {
	if record.SenderURL != "" {
		return record.SenderURL
	}
	return record.LeadURL
}

// ContactOrder selects the ordering applied by Contacts.
type ContactOrder string

const (
	// ContactsByName orders alphabetically by counterparty name.
	ContactsByName ContactOrder = "name"
	// ContactsByCount orders by message count, busiest first.
	ContactsByCount ContactOrder = "count"
	// ContactsByRecent orders by last-appended timestamp, newest
	// first, comparing the (date, time) pair as literal text.
	ContactsByRecent ContactOrder = "recent"
)

// Contacts flattens a conversation map into a freshly sorted slice.
func Contacts(conversations map[string]*Conversation, order ContactOrder) []*Conversation {
	contacts := make([]*Conversation, 0, len(conversations))
	for _, conv := range conversations {
		contacts = append(contacts, conv)
	}

	switch order {
	case ContactsByCount:
		sort.SliceStable(contacts, func(i, j int) bool {
			if len(contacts[i].Messages) != len(contacts[j].Messages) {
				return len(contacts[i].Messages) > len(contacts[j].Messages)
			}
			return lessContactName(contacts[i], contacts[j])
		})
	case ContactsByRecent:
		sort.SliceStable(contacts, func(i, j int) bool {
			left := contacts[i].LastContact()
			right := contacts[j].LastContact()
			if left != right {
				return left > right
			}
			return lessContactName(contacts[i], contacts[j])
		})
	default:
		sort.SliceStable(contacts, func(i, j int) bool {
			return lessContactName(contacts[i], contacts[j])
		})
	}
	return contacts
}

func lessContactName(a, b *Conversation) bool {
	left := strings.ToLower(a.Name)
	right := strings.ToLower(b.Name)
	if left != right {
		return left < right
	}
	return a.URL < b.URL
}
