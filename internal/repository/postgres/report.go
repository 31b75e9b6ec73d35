package postgres

import (
	"context"
	"database/sql"
	"errors"

	"courier/internal/domain"
	"courier/internal/repository"
)

// ReportRepository is a PostgreSQL implementation of repository.ReportRepository.
type ReportRepository struct {
	q Querier
}

// NewReportRepository creates a new PostgreSQL report repository.
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{q: db}
}

// NewReportRepositoryWithTx creates a report repository using a transaction.
func NewReportRepositoryWithTx(tx *sql.Tx) *ReportRepository {
	return &ReportRepository{q: tx}
}

// Create persists the metadata of a newly exported report.
func (r *ReportRepository) Create(ctx context.Context, report *domain.ArchivedReport) error {
	query := `
		INSERT INTO report_archive (id, range_start, range_end, employee, checkin_count, total_amount, filename, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	// Empty employee means "all employees"; store NULL to keep that explicit.
	var employee sql.NullString
	if report.Employee != "" {
		employee = sql.NullString{String: report.Employee, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		report.ID,
		report.RangeStart,
		report.RangeEnd,
		employee,
		report.CheckinCount,
		report.TotalAmount,
		report.Filename,
		report.GeneratedAt,
	)

	return err
}

// GetByID retrieves one archived report by ID.
func (r *ReportRepository) GetByID(ctx context.Context, id string) (*domain.ArchivedReport, error) {
	query := `
		SELECT id, range_start, range_end, employee, checkin_count, total_amount, filename, generated_at
		FROM report_archive WHERE id = $1
	`

	var report domain.ArchivedReport
	var employee sql.NullString

	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&report.ID,
		&report.RangeStart,
		&report.RangeEnd,
		&employee,
		&report.CheckinCount,
		&report.TotalAmount,
		&report.Filename,
		&report.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if employee.Valid {
		report.Employee = employee.String
	}

	return &report, nil
}

// GetAll retrieves archived reports, newest first.
func (r *ReportRepository) GetAll(ctx context.Context) ([]*domain.ArchivedReport, error) {
	query := `
		SELECT id, range_start, range_end, employee, checkin_count, total_amount, filename, generated_at
		FROM report_archive ORDER BY generated_at DESC LIMIT 100
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*domain.ArchivedReport
	for rows.Next() {
		var report domain.ArchivedReport
		var employee sql.NullString
		if err := rows.Scan(
			&report.ID,
			&report.RangeStart,
			&report.RangeEnd,
			&employee,
			&report.CheckinCount,
			&report.TotalAmount,
			&report.Filename,
			&report.GeneratedAt,
		); err != nil {
			return nil, err
		}
		if employee.Valid {
			report.Employee = employee.String
		}
		reports = append(reports, &report)
	}
	return reports, rows.Err()
}
