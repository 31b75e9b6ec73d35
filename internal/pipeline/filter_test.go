package pipeline

import (
	"testing"
	"time"

	"courier/internal/domain"
)

func payment(v float64) *float64 { return &v }

func dated(employee string, ts time.Time, pay *float64) domain.DeliveryRecord {
	return domain.DeliveryRecord{Employee: employee, Timestamp: ts, Payment: pay}
}

func TestFilter_InclusiveEndOfDayBoundary(t *testing.T) {
	t.Parallel()

	endDay := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)
	sel := domain.FilterSelection{
		Start: StartOfDay(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		End:   EndOfDay(endDay),
	}

	atBoundary := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	justAfter := atBoundary.Add(time.Microsecond)

	records := []domain.DeliveryRecord{
		dated("Ana", atBoundary, payment(25)),
		dated("Ana", justAfter, payment(25)),
	}

	filtered := Filter(records, sel)
	if len(filtered) != 1 {
		t.Fatalf("expected exactly the boundary record, got %d records", len(filtered))
	}
	if !filtered[0].Timestamp.Equal(atBoundary) {
		t.Errorf("expected the 23:59:59 record to be included, got %v", filtered[0].Timestamp)
	}
}

func TestFilter_EmployeeExactMatchCaseSensitive(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	records := []domain.DeliveryRecord{
		dated("Ana", day, payment(25)),
		dated("ana", day, payment(25)),
		dated("Luis", day, payment(75)),
	}
	sel := domain.FilterSelection{
		Start:    StartOfDay(day),
		End:      EndOfDay(day),
		Employee: "Ana",
	}

	filtered := Filter(records, sel)
	if len(filtered) != 1 {
		t.Fatalf("expected 1 record for employee Ana, got %d", len(filtered))
	}
	if filtered[0].Employee != "Ana" {
		t.Errorf("expected exact match Ana, got %q", filtered[0].Employee)
	}
}

func TestFilter_AllEmployeesSentinel(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	records := []domain.DeliveryRecord{
		dated("Ana", day, payment(25)),
		dated("Luis", day, payment(75)),
	}
	sel := domain.FilterSelection{Start: StartOfDay(day), End: EndOfDay(day)}

	if got := len(Filter(records, sel)); got != 2 {
		t.Errorf("expected all employees to match, got %d records", got)
	}
}

func TestFilter_UndatedRecordsNeverMatch(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	records := []domain.DeliveryRecord{
		dated("Ana", day, payment(25)),
		{Employee: "Luis", Payment: payment(75)}, // Unparseable timestamp
	}

	// Explicit range excludes the undated record.
	sel := domain.FilterSelection{Start: StartOfDay(day), End: EndOfDay(day)}
	if got := len(Filter(records, sel)); got != 1 {
		t.Errorf("explicit range: expected 1 record, got %d", got)
	}

	// The observed default range excludes it as well: an undefined
	// timestamp cannot satisfy the inclusive comparison.
	if got := len(Filter(records, domain.FilterSelection{})); got != 1 {
		t.Errorf("default range: expected 1 record, got %d", got)
	}
}

func TestFilter_DefaultRangeSpansObservedTimestamps(t *testing.T) {
	t.Parallel()

	records := []domain.DeliveryRecord{
		dated("Ana", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), payment(25)),
		dated("Ana", time.Date(2024, 2, 15, 18, 30, 0, 0, time.UTC), payment(75)),
		dated("Luis", time.Date(2024, 3, 31, 8, 0, 0, 0, time.UTC), payment(25)),
	}

	filtered := Filter(records, domain.FilterSelection{})
	if len(filtered) != 3 {
		t.Errorf("expected every dated record in the default range, got %d", len(filtered))
	}
}

func TestFilter_NoDatedRecordsYieldsEmpty(t *testing.T) {
	t.Parallel()

	records := []domain.DeliveryRecord{
		{Employee: "Ana", Payment: payment(25)},
	}

	filtered := Filter(records, domain.FilterSelection{})
	if len(filtered) != 0 {
		t.Errorf("expected empty result, got %d records", len(filtered))
	}
}

func TestObservedRange(t *testing.T) {
	t.Parallel()

	early := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	late := time.Date(2024, 3, 31, 8, 0, 0, 0, time.UTC)
	records := []domain.DeliveryRecord{
		dated("Ana", late, nil),
		{Employee: "Sin fecha"},
		dated("Luis", early, nil),
	}

	start, end, ok := ObservedRange(records)
	if !ok {
		t.Fatal("expected an observed range")
	}
	if !start.Equal(early) || !end.Equal(late) {
		t.Errorf("expected range %v..%v, got %v..%v", early, late, start, end)
	}

	if _, _, ok := ObservedRange([]domain.DeliveryRecord{{Employee: "x"}}); ok {
		t.Error("expected no observed range for undated-only records")
	}
}
