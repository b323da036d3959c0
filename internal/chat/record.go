// Package chat implements the conversation model behind the dashboard:
// owner-identity resolution, per-contact aggregation of the flat message
// table, and the filter/sort engine the views are built on.
package chat

import "strings"

// Record is one row of the exported message table. Every field is
// optional: absent cells are ingested as empty strings, and downstream
// logic treats emptiness as unattributable or unranked rather than as an
// error.
type Record struct {
	SenderName    string `json:"sender_name"`
	SenderURL     string `json:"sender_linkedin_url"`
	LeadName      string `json:"lead_name"`
	LeadURL       string `json:"lead_linkedin_url"`
	Message       string `json:"message"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	SharedContent string `json:"shared_content"`
	SessionID     string `json:"sessionId"`
}

// Timestamp returns the display form of the record's date and time.
func (r Record) Timestamp() string {
	return strings.TrimSpace(r.Date + " " + r.Time)
}

// HasSharedContent reports whether the record carries an attachment or
// link description.
func (r Record) HasSharedContent() bool {
	return strings.TrimSpace(r.SharedContent) != ""
}

func cloneRecords(records []Record) []Record {
	if len(records) == 0 {
		return nil
	}
	cloned := make([]Record, len(records))
	copy(cloned, records)
	return cloned
}
