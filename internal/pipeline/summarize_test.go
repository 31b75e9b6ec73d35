package pipeline

import (
	"math"
	"reflect"
	"testing"
	"time"

	"courier/internal/domain"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		pay  *float64
		want domain.ZoneClassification
	}{
		{name: "within zone fee", pay: payment(25), want: domain.ZoneWithin},
		{name: "outside zone fee", pay: payment(75), want: domain.ZoneOutside},
		{name: "other amount", pay: payment(40), want: domain.ZoneUnclassified},
		{name: "missing payment", pay: nil, want: domain.ZoneUnclassified},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(domain.DeliveryRecord{Payment: tc.pay})
			if got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

// Mirrors the reference scenario: two deliveries for Ana on Jan 1 and one
// for Luis on Jan 2, filtered to Jan 1 across all employees.
func TestSummarize_SingleDayScenario(t *testing.T) {
	t.Parallel()

	records := []domain.DeliveryRecord{
		dated("Ana", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), payment(25)),
		dated("Ana", time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC), payment(75)),
		dated("Luis", time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC), payment(25)),
	}
	sel := domain.FilterSelection{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC),
	}

	summary := Summarize(Filter(records, sel))

	if summary.Metrics.TotalDeliveries != 2 {
		t.Errorf("expected 2 deliveries, got %d", summary.Metrics.TotalDeliveries)
	}
	if summary.Metrics.WithinZone != 1 || summary.Metrics.OutsideZone != 1 {
		t.Errorf("expected within=1 outside=1, got within=%d outside=%d",
			summary.Metrics.WithinZone, summary.Metrics.OutsideZone)
	}
	if len(summary.Days) != 1 {
		t.Fatalf("expected 1 day subtotal, got %d", len(summary.Days))
	}
	day := summary.Days[0]
	if !day.Date.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected day date: %v", day.Date)
	}
	if day.CheckinCount != 2 || day.TotalAmount != 100 {
		t.Errorf("expected day subtotal {2, 100}, got {%d, %v}", day.CheckinCount, day.TotalAmount)
	}
	if summary.Period.CheckinCount != 2 || summary.Period.TotalAmount != 100 {
		t.Errorf("expected period total {2, 100}, got {%d, %v}",
			summary.Period.CheckinCount, summary.Period.TotalAmount)
	}
}

func TestSummarize_MissingPaymentCountsButAddsZero(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []domain.DeliveryRecord{
		dated("Ana", day.Add(9*time.Hour), payment(25)),
		dated("Ana", day.Add(11*time.Hour), nil), // Unparseable payment
	}

	summary := Summarize(records)
	if summary.Metrics.TotalDeliveries != 2 {
		t.Errorf("expected 2 check-ins, got %d", summary.Metrics.TotalDeliveries)
	}
	if summary.Metrics.TotalAmount != 25 {
		t.Errorf("expected amount 25, got %v", summary.Metrics.TotalAmount)
	}
	if summary.Metrics.Unclassified != 1 {
		t.Errorf("expected 1 unclassified, got %d", summary.Metrics.Unclassified)
	}
	if len(summary.Days) != 1 || summary.Days[0].CheckinCount != 2 || summary.Days[0].TotalAmount != 25 {
		t.Errorf("unexpected day subtotals: %+v", summary.Days)
	}
}

func TestSummarize_DaysChronologicalUndatedLast(t *testing.T) {
	t.Parallel()

	records := []domain.DeliveryRecord{
		{Employee: "Ana", Payment: payment(25)}, // Undated
		dated("Ana", time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC), payment(25)),
		dated("Ana", time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), payment(75)),
		dated("Ana", time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC), payment(25)),
	}

	summary := Summarize(records)
	if len(summary.Days) != 4 {
		t.Fatalf("expected 3 dated days + 1 undated bucket, got %d", len(summary.Days))
	}
	for i := 0; i < 2; i++ {
		if !summary.Days[i].Date.Before(summary.Days[i+1].Date) {
			t.Errorf("days not chronological at index %d: %v then %v",
				i, summary.Days[i].Date, summary.Days[i+1].Date)
		}
	}
	last := summary.Days[len(summary.Days)-1]
	if !last.Undated {
		t.Error("expected the undated bucket to sort last")
	}
	if last.CheckinCount != 1 || last.TotalAmount != 25 {
		t.Errorf("unexpected undated bucket: %+v", last)
	}
}

func TestSummarize_InvariantsHold(t *testing.T) {
	t.Parallel()

	records := []domain.DeliveryRecord{
		dated("Ana", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), payment(25)),
		dated("Ana", time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC), payment(75)),
		dated("Luis", time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), nil),
		dated("Luis", time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC), payment(40)),
		{Employee: "Ana", Payment: payment(75)}, // Undated
	}

	summary := Summarize(records)

	var dayCount int
	var dayAmount float64
	for _, d := range summary.Days {
		dayCount += d.CheckinCount
		dayAmount += d.TotalAmount
	}

	if summary.Period.CheckinCount != dayCount || summary.Period.CheckinCount != summary.Metrics.TotalDeliveries {
		t.Errorf("check-in counts disagree: period=%d days=%d metrics=%d",
			summary.Period.CheckinCount, dayCount, summary.Metrics.TotalDeliveries)
	}
	if summary.Period.TotalAmount != dayAmount || summary.Period.TotalAmount != summary.Metrics.TotalAmount {
		t.Errorf("amounts disagree: period=%v days=%v metrics=%v",
			summary.Period.TotalAmount, dayAmount, summary.Metrics.TotalAmount)
	}

	classified := summary.Metrics.WithinZone + summary.Metrics.OutsideZone + summary.Metrics.Unclassified
	if classified != summary.Metrics.TotalDeliveries {
		t.Errorf("classification counts %d do not cover all %d records",
			classified, summary.Metrics.TotalDeliveries)
	}
}

func TestSummarize_Idempotent(t *testing.T) {
	t.Parallel()

	records := []domain.DeliveryRecord{
		dated("Ana", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), payment(25)),
		dated("Luis", time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC), payment(75)),
		{Employee: "Ana"},
	}

	first := Summarize(records)
	second := Summarize(records)
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical summaries for unchanged input")
	}
}

func TestSummarize_EmptyInput(t *testing.T) {
	t.Parallel()

	summary := Summarize(nil)
	if summary.Metrics.TotalDeliveries != 0 || summary.Period.CheckinCount != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
	if len(summary.Days) != 0 {
		t.Errorf("expected no day subtotals, got %d", len(summary.Days))
	}
}

func TestBuildMapView_MarkersAndCenter(t *testing.T) {
	t.Parallel()

	lat1, lng1 := 18.40, -69.90
	lat2, lng2 := 18.60, -69.80
	records := []domain.DeliveryRecord{
		{Employee: "Ana", Payment: payment(25), Latitude: &lat1, Longitude: &lng1},
		{Employee: "Luis", Payment: payment(75), Latitude: &lat2, Longitude: &lng2},
		{Employee: "Eva", Payment: payment(25), Latitude: &lat1}, // No longitude
	}

	view := BuildMapView(records)
	if len(view.Markers) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(view.Markers))
	}
	if view.Markers[0].Classification != domain.ZoneWithin {
		t.Errorf("expected first marker within zone, got %s", view.Markers[0].Classification)
	}
	if math.Abs(view.CenterLatitude-18.50) > 1e-9 {
		t.Errorf("expected center latitude 18.50, got %v", view.CenterLatitude)
	}
	if math.Abs(view.CenterLongitude-(-69.85)) > 1e-9 {
		t.Errorf("expected center longitude -69.85, got %v", view.CenterLongitude)
	}
	if len(view.Zone) != len(domain.ZonePolygon) {
		t.Errorf("expected the zone polygon to ride along, got %d points", len(view.Zone))
	}
}

func TestBuildMapView_NoCoordinates(t *testing.T) {
	t.Parallel()

	view := BuildMapView([]domain.DeliveryRecord{{Employee: "Ana"}})
	if len(view.Markers) != 0 {
		t.Errorf("expected no markers, got %d", len(view.Markers))
	}
	if view.CenterLatitude != 0 || view.CenterLongitude != 0 {
		t.Errorf("expected zero center, got (%v, %v)", view.CenterLatitude, view.CenterLongitude)
	}
}

func TestEmployees_DistinctSorted(t *testing.T) {
	t.Parallel()

	records := []domain.DeliveryRecord{
		{Employee: "Luis"},
		{Employee: "Ana"},
		{Employee: ""},
		{Employee: "Luis"},
		{Employee: "Eva"},
	}

	got := Employees(records)
	want := []string{"Ana", "Eva", "Luis"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
