package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"courier/internal/domain"
	"courier/internal/pipeline"
	"courier/internal/service"
)

// queryDateFormat is the wire format of the from/to query parameters.
const queryDateFormat = "2006-01-02"

// DashboardHandler handles HTTP requests for the dashboard views.
type DashboardHandler struct {
	reportService  *service.ReportService
	datasetService *service.DatasetService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(reportService *service.ReportService, datasetService *service.DatasetService) *DashboardHandler {
	return &DashboardHandler{
		reportService:  reportService,
		datasetService: datasetService,
	}
}

// SummaryResponse is the HTTP response for the dashboard summary.
type SummaryResponse struct {
	Start    string         `json:"start"`
	End      string         `json:"end"`
	Employee string         `json:"employee,omitempty"`
	Metrics  domain.Metrics `json:"metrics"`
}

// SubtotalsResponse is the HTTP response for the day subtotal table.
type SubtotalsResponse struct {
	Days   []domain.DaySubtotal `json:"days"`
	Period domain.PeriodTotal   `json:"period"`
}

// RecordsResponse is the HTTP response for the filtered record table.
type RecordsResponse struct {
	Records []domain.DeliveryRecord `json:"records"`
}

// EmployeesResponse is the HTTP response for the employee filter options.
type EmployeesResponse struct {
	Employees []string `json:"employees"`
}

// Summary handles GET /v1/dashboard/summary
func (h *DashboardHandler) Summary(c *gin.Context) {
	sel, ok := parseSelection(c)
	if !ok {
		return
	}

	view, err := h.reportService.BuildView(c.Request.Context(), sel)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, SummaryResponse{
		Start:    formatQueryDate(view.Start),
		End:      formatQueryDate(view.End),
		Employee: view.Employee,
		Metrics:  view.Summary.Metrics,
	})
}

// Records handles GET /v1/dashboard/records
func (h *DashboardHandler) Records(c *gin.Context) {
	sel, ok := parseSelection(c)
	if !ok {
		return
	}

	view, err := h.reportService.BuildView(c.Request.Context(), sel)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, RecordsResponse{Records: view.Records})
}

// Subtotals handles GET /v1/dashboard/subtotals
func (h *DashboardHandler) Subtotals(c *gin.Context) {
	sel, ok := parseSelection(c)
	if !ok {
		return
	}

	view, err := h.reportService.BuildView(c.Request.Context(), sel)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, SubtotalsResponse{
		Days:   view.Summary.Days,
		Period: view.Summary.Period,
	})
}

// Map handles GET /v1/dashboard/map
func (h *DashboardHandler) Map(c *gin.Context) {
	sel, ok := parseSelection(c)
	if !ok {
		return
	}

	view, err := h.reportService.BuildView(c.Request.Context(), sel)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, view.Map)
}

// Employees handles GET /v1/dashboard/employees
func (h *DashboardHandler) Employees(c *gin.Context) {
	employees, err := h.datasetService.Employees(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if employees == nil {
		employees = []string{}
	}
	respondJSON(c, http.StatusOK, EmployeesResponse{Employees: employees})
}

// Refresh handles POST /v1/dashboard/refresh
func (h *DashboardHandler) Refresh(c *gin.Context) {
	records, err := h.datasetService.Refresh(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"records": len(records)})
}

// parseSelection reads the from/to/employee query parameters. The end date
// is widened to 23:59:59 so the selected end day is fully included. On a
// malformed date it writes the error response and returns ok=false.
func parseSelection(c *gin.Context) (domain.FilterSelection, bool) {
	sel := domain.FilterSelection{Employee: c.Query("employee")}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(queryDateFormat, from)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid 'from' date, expected YYYY-MM-DD"})
			return sel, false
		}
		sel.Start = pipeline.StartOfDay(t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(queryDateFormat, to)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid 'to' date, expected YYYY-MM-DD"})
			return sel, false
		}
		sel.End = pipeline.EndOfDay(t)
	}

	return sel, true
}

func formatQueryDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(queryDateFormat)
}
