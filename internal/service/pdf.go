package service

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"

	"courier/internal/domain"
)

// PDF layout constants. Column widths follow the on-screen table; the last
// two columns double as the per-day subtotal cells.
const (
	reportTitle   = "Reporte de Mensajería - IDEMEFA"
	undatedLabel  = "Sin fecha"
	pdfDateFormat = "02/01/2006"
	pdfTimeFormat = "02/01/2006 15:04"
	pageBreakY    = 265.0
)

var pdfColumns = []struct {
	title string
	width float64
}{
	{"Empleado", 24},
	{"Tipo", 14},
	{"Dirección de envío", 44},
	{"Fecha", 26},
	{"Cliente", 34},
	{"Recibe", 32},
	{"Pago", 16},
}

// buildReportPDF renders the filtered view as the detailed table report:
// one table per calendar day with a subtotal row, then a period grand
// total block.
func buildReportPDF(view *DashboardView, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 10, tr(reportTitle), "", 1, "C", false, 0, "")
		pdf.Ln(2)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Página %d/{nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 10, "REPORTE DETALLADO", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Período: %s - %s", formatReportDate(view.Start), formatReportDate(view.End))), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 7, tr("Colaborador: "+employeeLabel(view.Employee)), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 7, "Generado: "+generatedAt.Format(pdfTimeFormat), "", 1, "", false, 0, "")
	pdf.Ln(4)

	byDay := groupRecordsByDay(view.Records)
	for _, day := range view.Summary.Days {
		title := undatedLabel
		key := time.Time{}
		if !day.Undated {
			title = day.Date.Format(pdfDateFormat)
			key = day.Date
		}

		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 8, tr("Día: "+title), "", 1, "", false, 0, "")

		writeTableHeader(pdf, tr)
		for _, r := range byDay[key] {
			writeRecordRow(pdf, tr, r)
			if pdf.GetY() > pageBreakY {
				pdf.AddPage()
				writeTableHeader(pdf, tr)
			}
		}

		writeDaySubtotal(pdf, tr, day)
	}

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, "TOTAL GENERAL DEL PERIODO", "", 1, "", false, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(60, 8, "Check-ins", "1", 0, "", false, 0, "")
	pdf.CellFormat(60, 8, "Monto total", "1", 1, "", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(60, 8, fmt.Sprintf("%d", view.Summary.Period.CheckinCount), "1", 0, "", false, 0, "")
	pdf.CellFormat(60, 8, fmt.Sprintf("$%.2f", view.Summary.Period.TotalAmount), "1", 1, "", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// groupRecordsByDay buckets records under midnight of their calendar day,
// sorted chronologically inside each bucket. Undated records share the zero
// key, matching the undated subtotal bucket.
func groupRecordsByDay(records []domain.DeliveryRecord) map[time.Time][]domain.DeliveryRecord {
	byDay := make(map[time.Time][]domain.DeliveryRecord)
	for i := range records {
		r := records[i]
		key := time.Time{}
		if r.HasTimestamp() {
			y, m, d := r.Timestamp.Date()
			key = time.Date(y, m, d, 0, 0, 0, 0, r.Timestamp.Location())
		}
		byDay[key] = append(byDay[key], r)
	}
	for key := range byDay {
		day := byDay[key]
		sort.SliceStable(day, func(i, j int) bool {
			return day[i].Timestamp.Before(day[j].Timestamp)
		})
	}
	return byDay
}

func writeTableHeader(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Arial", "B", 8)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 8, tr(truncate(col.title, 28)), "1", 0, "", false, 0, "")
	}
	pdf.Ln(-1)
}

func writeRecordRow(pdf *gofpdf.Fpdf, tr func(string) string, r domain.DeliveryRecord) {
	timestamp := ""
	if r.HasTimestamp() {
		timestamp = r.Timestamp.Format(pdfTimeFormat)
	}
	payment := ""
	if r.HasPayment() {
		payment = fmt.Sprintf("%.2f", *r.Payment)
	}

	values := []string{
		r.Employee,
		r.DeliveryType,
		r.Address,
		timestamp,
		r.ClientName,
		r.RecipientName,
		payment,
	}

	pdf.SetFont("Arial", "", 7)
	for i, v := range values {
		pdf.CellFormat(pdfColumns[i].width, 7, tr(truncate(v, 45)), "1", 0, "", false, 0, "")
	}
	pdf.Ln(-1)
}

func writeDaySubtotal(pdf *gofpdf.Fpdf, tr func(string) string, day domain.DaySubtotal) {
	var labelWidth float64
	for _, col := range pdfColumns[:len(pdfColumns)-2] {
		labelWidth += col.width
	}
	countWidth := pdfColumns[len(pdfColumns)-2].width
	amountWidth := pdfColumns[len(pdfColumns)-1].width

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(labelWidth, 8, tr("Subtotal del día"), "1", 0, "", false, 0, "")
	pdf.CellFormat(countWidth, 8, fmt.Sprintf("%d", day.CheckinCount), "1", 0, "", false, 0, "")
	pdf.CellFormat(amountWidth, 8, fmt.Sprintf("$%.2f", day.TotalAmount), "1", 1, "", false, 0, "")
	pdf.Ln(2)
}

func employeeLabel(employee string) string {
	if employee == domain.EmployeeAll {
		return "Todos"
	}
	return employee
}

func formatReportDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(pdfDateFormat)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
