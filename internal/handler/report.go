package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"courier/internal/domain"
	"courier/internal/service"
)

// ReportHandler handles HTTP requests for PDF report export and the archive.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ArchivedReportResponse is one archived report in API responses.
type ArchivedReportResponse struct {
	ID           string  `json:"id"`
	RangeStart   string  `json:"range_start"`
	RangeEnd     string  `json:"range_end"`
	Employee     string  `json:"employee,omitempty"`
	CheckinCount int     `json:"checkin_count"`
	TotalAmount  float64 `json:"total_amount"`
	Filename     string  `json:"filename"`
	GeneratedAt  string  `json:"generated_at"`
}

// Export handles POST /v1/reports
//
// Renders the PDF for the requested filter selection and streams it back as
// an attachment; the report metadata lands in the archive.
func (h *ReportHandler) Export(c *gin.Context) {
	sel, ok := parseSelection(c)
	if !ok {
		return
	}

	exported, err := h.reportService.ExportPDF(c.Request.Context(), sel)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exported.Report.Filename))
	c.Header("Content-Length", fmt.Sprintf("%d", len(exported.Content)))
	c.Data(http.StatusOK, "application/pdf", exported.Content)
}

// GetAll handles GET /v1/reports
func (h *ReportHandler) GetAll(c *gin.Context) {
	reports, err := h.reportService.ListArchived(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ArchivedReportResponse, 0, len(reports))
	for _, r := range reports {
		response = append(response, toArchivedReportResponse(r))
	}

	c.JSON(http.StatusOK, response)
}

// GetReport handles GET /v1/reports/:id
func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.reportService.GetArchived(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toArchivedReportResponse(report))
}

func toArchivedReportResponse(r *domain.ArchivedReport) ArchivedReportResponse {
	return ArchivedReportResponse{
		ID:           r.ID,
		RangeStart:   r.RangeStart.Format(queryDateFormat),
		RangeEnd:     r.RangeEnd.Format(queryDateFormat),
		Employee:     r.Employee,
		CheckinCount: r.CheckinCount,
		TotalAmount:  r.TotalAmount,
		Filename:     r.Filename,
		GeneratedAt:  r.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
