package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"courier/internal/domain"
	"courier/internal/pipeline"
	"courier/internal/repository"
)

// ReportService builds dashboard views and exports them as PDF reports.
type ReportService struct {
	dataset    *DatasetService
	reportRepo repository.ReportRepository
}

// NewReportService creates a new ReportService.
func NewReportService(dataset *DatasetService, reportRepo repository.ReportRepository) *ReportService {
	return &ReportService{
		dataset:    dataset,
		reportRepo: reportRepo,
	}
}

// DashboardView is everything the dashboard renders for one filter
// selection. Start/End are the resolved bounds: the operator's range when
// given, otherwise the observed min/max of the dataset.
type DashboardView struct {
	Start    time.Time               `json:"start"`
	End      time.Time               `json:"end"`
	Employee string                  `json:"employee"`
	Records  []domain.DeliveryRecord `json:"records"`
	Summary  domain.Summary          `json:"summary"`
	Map      domain.MapView          `json:"map"`
}

// ExportedReport is a rendered PDF plus the metadata that was archived.
type ExportedReport struct {
	Report  *domain.ArchivedReport
	Content []byte
}

// BuildView runs the aggregation pipeline for a filter selection.
func (s *ReportService) BuildView(ctx context.Context, sel domain.FilterSelection) (*DashboardView, error) {
	// A half-open or inverted range is an operator input error, not a view.
	if sel.Start.IsZero() != sel.End.IsZero() {
		return nil, ErrInvalidDateRange
	}
	if sel.HasRange() && sel.Start.After(sel.End) {
		return nil, ErrInvalidDateRange
	}

	records, err := s.dataset.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	start, end := sel.Start, sel.End
	if !sel.HasRange() {
		start, end, _ = pipeline.ObservedRange(records)
	}

	filtered := pipeline.Filter(records, sel)

	return &DashboardView{
		Start:    start,
		End:      end,
		Employee: sel.Employee,
		Records:  filtered,
		Summary:  pipeline.Summarize(filtered),
		Map:      pipeline.BuildMapView(filtered),
	}, nil
}

// ExportPDF builds the view for a selection, renders it as a PDF report and
// archives the report metadata.
func (s *ReportService) ExportPDF(ctx context.Context, sel domain.FilterSelection) (*ExportedReport, error) {
	view, err := s.BuildView(ctx, sel)
	if err != nil {
		return nil, err
	}

	generatedAt := time.Now()
	content, err := buildReportPDF(view, generatedAt)
	if err != nil {
		return nil, err
	}

	report := &domain.ArchivedReport{
		ID:           uuid.New().String(),
		RangeStart:   view.Start,
		RangeEnd:     view.End,
		Employee:     view.Employee,
		CheckinCount: view.Summary.Period.CheckinCount,
		TotalAmount:  view.Summary.Period.TotalAmount,
		Filename:     fmt.Sprintf("delivery_report_%s.pdf", generatedAt.Format("20060102_1504")),
		GeneratedAt:  generatedAt,
	}

	if s.reportRepo != nil {
		if err := s.reportRepo.Create(ctx, report); err != nil {
			return nil, err
		}
	}

	return &ExportedReport{Report: report, Content: content}, nil
}

// ListArchived returns the metadata of previously exported reports.
func (s *ReportService) ListArchived(ctx context.Context) ([]*domain.ArchivedReport, error) {
	return s.reportRepo.GetAll(ctx)
}

// GetArchived returns one archived report's metadata.
func (s *ReportService) GetArchived(ctx context.Context, id string) (*domain.ArchivedReport, error) {
	if id == "" {
		return nil, ErrInvalidReportID
	}
	return s.reportRepo.GetByID(ctx, id)
}
