package pipeline

import "courier/internal/domain"

// Classify derives the zone classification of a record from its payment
// amount: the within-zone fee means inside, the outside fee means outside,
// anything else (including a missing payment) is unclassified.
//
// This is deliberately a payment-amount proxy and not a geometric test of
// the record's coordinates against the zone polygon; the polygon is drawn
// on the map for reference only.
func Classify(r domain.DeliveryRecord) domain.ZoneClassification {
	if r.Payment == nil {
		return domain.ZoneUnclassified
	}
	switch *r.Payment {
	case domain.FeeWithinZone:
		return domain.ZoneWithin
	case domain.FeeOutsideZone:
		return domain.ZoneOutside
	default:
		return domain.ZoneUnclassified
	}
}
