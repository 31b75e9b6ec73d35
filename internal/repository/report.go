package repository

import (
	"context"

	"courier/internal/domain"
)

// ReportRepository defines the persistence operations for the report archive.
type ReportRepository interface {
	// Create persists the metadata of a newly exported report.
	Create(ctx context.Context, report *domain.ArchivedReport) error

	// GetByID retrieves one archived report by ID.
	GetByID(ctx context.Context, id string) (*domain.ArchivedReport, error)

	// GetAll retrieves archived reports, newest first.
	GetAll(ctx context.Context) ([]*domain.ArchivedReport, error)
}
