// Package sheets implements the record source: a read-only Google Sheets
// client that fetches the exported message table as a sequence of
// header-mapped records.
package sheets

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/entremotivator/linkup/internal/chat"
)

// Config identifies the remote worksheet and the service-account
// credential used to read it. Exactly one of CredentialsFile and
// CredentialsJSON must be set.
type Config struct {
	SpreadsheetID   string
	Worksheet       string
	CredentialsFile string
	CredentialsJSON string
}

// Client fetches rows from a single worksheet. It is read-only: the
// underlying service is built with the spreadsheets.readonly scope and no
// write path exists.
type Client struct {
	service       *gsheets.Service
	spreadsheetID string
	worksheet     string
}

// NewClient authenticates with the configured service-account credential
// and returns a client bound to one worksheet.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, fmt.Errorf("spreadsheet id required")
	}
	if strings.TrimSpace(cfg.Worksheet) == "" {
		return nil, fmt.Errorf("worksheet name required")
	}

	credentials, err := loadCredentials(cfg)
	if err != nil {
		return nil, err
	}

	service, err := gsheets.NewService(ctx,
		option.WithCredentialsJSON(credentials),
		option.WithScopes(gsheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("init sheets service: %w", err)
	}

	return &Client{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		worksheet:     cfg.Worksheet,
	}, nil
}

// Fetch pulls all rows of the worksheet and maps them into records using
// the header row. Network and auth failures surface as wrapped errors for
// the caller to render as an error state; they never panic.
func (c *Client) Fetch(ctx context.Context) ([]chat.Record, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, c.worksheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch worksheet %q: %w", c.worksheet, err)
	}
	return RecordsFromValues(resp.Values), nil
}

func loadCredentials(cfg Config) ([]byte, error) {
	file := strings.TrimSpace(cfg.CredentialsFile)
	inline := strings.TrimSpace(cfg.CredentialsJSON)

	switch {
	case file != "" && inline != "":
		return nil, fmt.Errorf("credentials file and inline credentials are mutually exclusive")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		return data, nil
	case inline != "":
		return []byte(inline), nil
	default:
		return nil, fmt.Errorf("service-account credentials required")
	}
}
