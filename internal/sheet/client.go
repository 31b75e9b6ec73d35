package sheet

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnavailable is returned when the published sheet cannot be fetched or
// parsed as a whole: network failure, non-2xx status, malformed CSV, or a
// sheet with no data rows. Individual malformed cells are not errors; they
// surface as missing values during normalization.
var ErrUnavailable = errors.New("sheet data unavailable")

// Row is one spreadsheet row keyed by canonical column name. Only
// recognized, non-blank cells are present.
type Row map[string]string

// Client fetches the published CSV export of the delivery sheet.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a sheet client for the given published CSV URL.
func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{url: url, httpClient: httpClient}
}

// Fetch downloads the sheet and returns its data rows. The header row is
// mapped to canonical column names; unrecognized columns are dropped.
func (c *Client) Fetch(ctx context.Context) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	rows, err := parseCSV(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet has no data rows", ErrUnavailable)
	}
	return rows, nil
}

// parseCSV reads CSV content into canonical rows.
func parseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Published sheets can have ragged rows.

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// Resolve each header cell once; "" marks a column to skip.
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = canonicalColumn(h)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}

		row := make(Row)
		for i, cell := range record {
			if i >= len(columns) || columns[i] == "" {
				continue
			}
			if cell == "" {
				continue
			}
			row[columns[i]] = cell
		}
		rows = append(rows, row)
	}

	return rows, nil
}
