package domain

import "time"

// EmployeeAll is the sentinel employee filter meaning "all employees".
const EmployeeAll = ""

// FilterSelection is the operator-chosen view over the dataset.
// Start and End are inclusive; End is expected to already be the end of its
// calendar day (23:59:59). Zero Start/End means "use the observed range".
type FilterSelection struct {
	Start    time.Time
	End      time.Time
	Employee string
}

// AllEmployees reports whether the selection matches every employee.
func (s FilterSelection) AllEmployees() bool {
	return s.Employee == EmployeeAll
}

// HasRange reports whether the operator supplied an explicit date window.
func (s FilterSelection) HasRange() bool {
	return !s.Start.IsZero() && !s.End.IsZero()
}

// Metrics are the headline numbers over a filtered record set.
type Metrics struct {
	TotalDeliveries int     `json:"total_deliveries"`
	TotalAmount     float64 `json:"total_amount"`
	WithinZone      int     `json:"within_zone"`
	OutsideZone     int     `json:"outside_zone"`
	Unclassified    int     `json:"unclassified"`
}

// DaySubtotal aggregates one calendar day of filtered records. Records
// without a parseable timestamp collect into a single bucket with Undated
// set; that bucket always sorts after every dated day.
type DaySubtotal struct {
	Date         time.Time `json:"date"`
	Undated      bool      `json:"undated,omitempty"`
	CheckinCount int       `json:"checkin_count"`
	TotalAmount  float64   `json:"total_amount"`
}

// PeriodTotal sums every day subtotal of the filtered period. It always
// equals the headline metrics' count and amount.
type PeriodTotal struct {
	CheckinCount int     `json:"checkin_count"`
	TotalAmount  float64 `json:"total_amount"`
}

// Summary bundles everything the dashboard shows for one filter selection.
type Summary struct {
	Metrics Metrics       `json:"metrics"`
	Days    []DaySubtotal `json:"days"`
	Period  PeriodTotal   `json:"period"`
}

// MapMarker is one plottable delivery: a record that has both coordinates.
type MapMarker struct {
	Latitude       float64            `json:"latitude"`
	Longitude      float64            `json:"longitude"`
	Classification ZoneClassification `json:"classification"`
	Employee       string             `json:"employee"`
	ClientName     string             `json:"client_name"`
	Address        string             `json:"address"`
	Payment        *float64           `json:"payment"`
	Timestamp      time.Time          `json:"timestamp"`
}

// MapView is the structured map payload: markers, the reference zone polygon
// and a center point (mean of marker coordinates). Rendering belongs to the
// front end.
type MapView struct {
	CenterLatitude  float64      `json:"center_latitude"`
	CenterLongitude float64      `json:"center_longitude"`
	Zone            []Coordinate `json:"zone"`
	Markers         []MapMarker  `json:"markers"`
}

// ArchivedReport is the persisted metadata of one exported PDF report.
type ArchivedReport struct {
	ID           string
	RangeStart   time.Time
	RangeEnd     time.Time
	Employee     string
	CheckinCount int
	TotalAmount  float64
	Filename     string
	GeneratedAt  time.Time
}
