package pipeline

import (
	"time"

	"courier/internal/domain"
)

// ObservedRange returns the min and max defined timestamps in the record
// set. ok is false when no record has a parseable timestamp.
func ObservedRange(records []domain.DeliveryRecord) (start, end time.Time, ok bool) {
	for i := range records {
		if !records[i].HasTimestamp() {
			continue
		}
		ts := records[i].Timestamp
		if !ok {
			start, end, ok = ts, ts, true
			continue
		}
		if ts.Before(start) {
			start = ts
		}
		if ts.After(end) {
			end = ts
		}
	}
	return start, end, ok
}

// Filter keeps records whose timestamp falls inside the selection's
// inclusive date window and whose employee matches the selection.
//
// A record without a parseable timestamp never matches any range, including
// the default one: the inclusive comparison is only defined over parsed
// timestamps. When the selection carries no explicit range, the observed
// min/max of the record set is used.
func Filter(records []domain.DeliveryRecord, sel domain.FilterSelection) []domain.DeliveryRecord {
	start, end := sel.Start, sel.End
	if !sel.HasRange() {
		var ok bool
		start, end, ok = ObservedRange(records)
		if !ok {
			// No dated records at all, so nothing can match a range.
			return []domain.DeliveryRecord{}
		}
	}

	filtered := make([]domain.DeliveryRecord, 0, len(records))
	for i := range records {
		r := records[i]
		if !r.HasTimestamp() {
			continue
		}
		if r.Timestamp.Before(start) || r.Timestamp.After(end) {
			continue
		}
		if !sel.AllEmployees() && r.Employee != sel.Employee {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// EndOfDay returns 23:59:59 of t's calendar day, the inclusive upper bound
// the dashboard applies to an operator-selected end date.
func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 0, t.Location())
}

// StartOfDay returns midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
