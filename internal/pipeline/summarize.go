package pipeline

import (
	"sort"
	"time"

	"courier/internal/domain"
)

// Summarize computes the headline metrics, per-day subtotals and period
// total over an already-filtered record set.
//
// Records group by the calendar date of their timestamp; records without a
// parseable timestamp form one extra bucket that always sorts last. Missing
// payments contribute 0 to sums but still count as check-ins, so the period
// total always equals the headline count and amount.
func Summarize(filtered []domain.DeliveryRecord) domain.Summary {
	var summary domain.Summary

	days := make(map[time.Time]*domain.DaySubtotal)
	var undated *domain.DaySubtotal

	for i := range filtered {
		r := filtered[i]

		summary.Metrics.TotalDeliveries++
		summary.Metrics.TotalAmount += r.PaymentOrZero()
		switch Classify(r) {
		case domain.ZoneWithin:
			summary.Metrics.WithinZone++
		case domain.ZoneOutside:
			summary.Metrics.OutsideZone++
		default:
			summary.Metrics.Unclassified++
		}

		var bucket *domain.DaySubtotal
		if r.HasTimestamp() {
			day := StartOfDay(r.Timestamp)
			bucket = days[day]
			if bucket == nil {
				bucket = &domain.DaySubtotal{Date: day}
				days[day] = bucket
			}
		} else {
			if undated == nil {
				undated = &domain.DaySubtotal{Undated: true}
			}
			bucket = undated
		}
		bucket.CheckinCount++
		bucket.TotalAmount += r.PaymentOrZero()
	}

	summary.Days = make([]domain.DaySubtotal, 0, len(days)+1)
	for _, d := range days {
		summary.Days = append(summary.Days, *d)
	}
	sort.Slice(summary.Days, func(i, j int) bool {
		return summary.Days[i].Date.Before(summary.Days[j].Date)
	})
	if undated != nil {
		summary.Days = append(summary.Days, *undated)
	}

	for _, d := range summary.Days {
		summary.Period.CheckinCount += d.CheckinCount
		summary.Period.TotalAmount += d.TotalAmount
	}

	return summary
}

// BuildMapView assembles the map payload for a filtered record set. Only
// records with both coordinates become markers; the center is the mean of
// marker coordinates and the zone polygon rides along for reference.
func BuildMapView(filtered []domain.DeliveryRecord) domain.MapView {
	view := domain.MapView{
		Zone:    domain.ZonePolygon,
		Markers: []domain.MapMarker{},
	}

	var latSum, lngSum float64
	for i := range filtered {
		r := filtered[i]
		if !r.HasCoordinates() {
			continue
		}
		view.Markers = append(view.Markers, domain.MapMarker{
			Latitude:       *r.Latitude,
			Longitude:      *r.Longitude,
			Classification: Classify(r),
			Employee:       r.Employee,
			ClientName:     r.ClientName,
			Address:        r.Address,
			Payment:        r.Payment,
			Timestamp:      r.Timestamp,
		})
		latSum += *r.Latitude
		lngSum += *r.Longitude
	}

	if n := len(view.Markers); n > 0 {
		view.CenterLatitude = latSum / float64(n)
		view.CenterLongitude = lngSum / float64(n)
	}

	return view
}

// Employees returns the distinct non-blank employee names in the record
// set, sorted for stable presentation in the filter dropdown.
func Employees(records []domain.DeliveryRecord) []string {
	seen := make(map[string]struct{})
	var names []string
	for i := range records {
		name := records[i].Employee
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
