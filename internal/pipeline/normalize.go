// Package pipeline implements the delivery record aggregation pipeline:
// normalize -> filter -> classify -> summarize. Every function is pure and
// operates on in-memory snapshots; fetching, caching and rendering live in
// the surrounding packages.
package pipeline

import (
	"strconv"
	"strings"
	"time"

	"courier/internal/domain"
	"courier/internal/sheet"
)

// timestampLayouts are tried in order for every raw timestamp cell; the
// first layout that parses wins. The order is fixed so parsing stays
// deterministic regardless of locale. ISO forms come first because the
// sheet's form widget writes them; day-first forms match hand-edited cells.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	time.RFC3339,
}

// Normalize coerces raw sheet rows into delivery records.
//
// Field-level parse failures never abort the batch: a timestamp that fails
// every layout becomes the zero time, a non-numeric payment or coordinate
// becomes nil. Rows where every recognized column is blank are dropped;
// rows with at least one present value are retained.
func Normalize(rows []sheet.Row) []domain.DeliveryRecord {
	records := make([]domain.DeliveryRecord, 0, len(rows))
	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		records = append(records, domain.DeliveryRecord{
			Employee:      cell(row, sheet.ColEmployee),
			DeliveryType:  cell(row, sheet.ColDeliveryType),
			Address:       cell(row, sheet.ColAddress),
			ClientName:    cell(row, sheet.ColClientName),
			RecipientName: cell(row, sheet.ColRecipientName),
			Timestamp:     parseTimestamp(cell(row, sheet.ColTimestamp)),
			Payment:       parseNumber(cell(row, sheet.ColPayment)),
			Latitude:      parseNumber(cell(row, sheet.ColLatitude)),
			Longitude:     parseNumber(cell(row, sheet.ColLongitude)),
		})
	}
	return records
}

// cell returns the trimmed value of a recognized column, "" when absent.
func cell(row sheet.Row, key string) string {
	return strings.TrimSpace(row[key])
}

// isEmptyRow reports whether no recognized column carries a value.
func isEmptyRow(row sheet.Row) bool {
	for _, key := range sheet.RecognizedColumns {
		if cell(row, key) != "" {
			return false
		}
	}
	return true
}

// parseTimestamp tries each layout in priority order. Failure to parse is
// not an error: the record is kept with a zero timestamp and excluded from
// range filtering and day grouping downstream.
func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// parseNumber coerces a monetary or coordinate cell to a float. Currency
// prefixes and thousands separators from hand-edited cells are tolerated.
// Returns nil when the cell is blank or non-numeric.
func parseNumber(raw string) *float64 {
	if raw == "" {
		return nil
	}
	cleaned := strings.TrimSpace(strings.TrimPrefix(raw, "$"))
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &value
}
