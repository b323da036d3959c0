package sheets

import (
	"fmt"
	"strings"

	"github.com/entremotivator/linkup/internal/chat"
)

// RecordsFromValues converts a raw worksheet value grid into records.
// The first row is the header; each following row is mapped column by
// column. Unknown columns are ignored, missing cells default to empty
// strings, and a short row never errors. A grid without a header row
// yields no records.
func RecordsFromValues(values [][]interface{}) []chat.Record {
	if len(values) < 2 {
		return nil
	}

	header := make([]string, len(values[0]))
	for i, cell := range values[0] {
		header[i] = normalizeHeader(cellString(cell))
	}

	records := make([]chat.Record, 0, len(values)-1)
	for _, row := range values[1:] {
		var record chat.Record
		for i, cell := range row {
			if i >= len(header) {
				break
			}
			assignField(&record, header[i], cellString(cell))
		}
		records = append(records, record)
	}
	return records
}

func assignField(record *chat.Record, column, value string) {
	switch column {
	case "sender_name":
		record.SenderName = value
	case "sender_linkedin_url", "sender_url":
		record.SenderURL = value
	case "lead_name":
		record.LeadName = value
	case "lead_linkedin_url", "lead_url":
		record.LeadURL = value
	case "message":
		record.Message = value
	case "date":
		record.Date = value
	case "time":
		record.Time = value
	case "shared_content":
		record.SharedContent = value
	case "sessionid", "session_id":
		record.SessionID = value
	}
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func cellString(cell interface{}) string {
	switch value := cell.(type) {
	case string:
		return value
	case nil:
		return ""
	default:
		return fmt.Sprint(value)
	}
}
