package domain

import "time"

// ZoneClassification indicates which pricing zone a delivery belongs to.
// Classification is derived from the payment amount, not from coordinates:
// the polygon in zone.go is drawn on the map for reference only.
type ZoneClassification string

const (
	ZoneWithin       ZoneClassification = "WITHIN_ZONE"
	ZoneOutside      ZoneClassification = "OUTSIDE_ZONE"
	ZoneUnclassified ZoneClassification = "UNCLASSIFIED"
)

// Canonical delivery fees. A payment equal to the within-zone fee marks the
// delivery as inside the pricing zone, the outside fee as outside it.
const (
	FeeWithinZone  = 25.0
	FeeOutsideZone = 75.0
)

// DeliveryRecord is one normalized delivery check-in from the sheet.
//
// Pointer fields carry the "value present" distinction the raw sheet needs:
// an unparseable payment or coordinate becomes nil rather than zero. A
// timestamp that failed to parse is the zero time.
type DeliveryRecord struct {
	Employee      string    `json:"employee"`
	DeliveryType  string    `json:"delivery_type"`
	Address       string    `json:"address"`
	ClientName    string    `json:"client_name"`
	RecipientName string    `json:"recipient_name"`
	Timestamp     time.Time `json:"timestamp"`
	Payment       *float64  `json:"payment"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
}

// HasTimestamp reports whether the record carries a parseable fill-in time.
func (r *DeliveryRecord) HasTimestamp() bool {
	return !r.Timestamp.IsZero()
}

// HasPayment reports whether the payment column parsed to a number.
func (r *DeliveryRecord) HasPayment() bool {
	return r.Payment != nil
}

// HasCoordinates reports whether the record can be placed on the map.
func (r *DeliveryRecord) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// PaymentOrZero returns the payment amount, treating a missing payment as 0
// for monetary sums. Missing payments still count toward check-in counts.
func (r *DeliveryRecord) PaymentOrZero() float64 {
	if r.Payment == nil {
		return 0
	}
	return *r.Payment
}
