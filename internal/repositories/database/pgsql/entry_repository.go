package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/martapiva/presenze_tracker_app/internal/apperrors"
	"github.com/martapiva/presenze_tracker_app/internal/core/domain"
	portsrepo "github.com/martapiva/presenze_tracker_app/internal/core/ports/repositories"
	"github.com/martapiva/presenze_tracker_app/internal/models"
)

const insertEntryQuery = `
    INSERT INTO time_entries (entry_id, worker_id, worker_name, date, check_in, check_out, hours_worked, origin, auto_close_time, notes, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

const selectEntryColumns = `entry_id, worker_id, worker_name, date, check_in, check_out, hours_worked, origin, auto_close_time, notes, created_at`

type PgxEntryRepository struct {
	db *pgxpool.Pool
}

func newPgxEntryRepository(db *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{db: db}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepositoryFacade
var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

func toModelEntry(d domain.TimeEntry) models.TimeEntry {
	return models.TimeEntry{
		EntryID:       d.EntryID,
		WorkerID:      d.WorkerID,
		WorkerName:    d.WorkerName,
		Date:          d.Date,
		CheckIn:       d.CheckIn,
		CheckOut:      d.CheckOut,
		HoursWorked:   d.HoursWorked,
		Origin:        string(d.Origin),
		AutoCloseTime: d.AutoCloseTime,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
	}
}

func toDomainEntry(m models.TimeEntry) domain.TimeEntry {
	return domain.TimeEntry{
		EntryID:       m.EntryID,
		WorkerID:      m.WorkerID,
		WorkerName:    m.WorkerName,
		Date:          m.Date,
		CheckIn:       m.CheckIn,
		CheckOut:      m.CheckOut,
		HoursWorked:   m.HoursWorked,
		Origin:        domain.EntryOrigin(m.Origin),
		AutoCloseTime: m.AutoCloseTime,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}

func scanEntry(row pgx.Row) (models.TimeEntry, error) {
	var m models.TimeEntry
	err := row.Scan(
		&m.EntryID,
		&m.WorkerID,
		&m.WorkerName,
		&m.Date,
		&m.CheckIn,
		&m.CheckOut,
		&m.HoursWorked,
		&m.Origin,
		&m.AutoCloseTime,
		&m.Notes,
		&m.CreatedAt,
	)
	return m, err
}

func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.TimeEntry) error {
	modelEntry := toModelEntry(entry)
	_, err := r.db.Exec(ctx, insertEntryQuery,
		modelEntry.EntryID,
		modelEntry.WorkerID,
		modelEntry.WorkerName,
		modelEntry.Date,
		modelEntry.CheckIn,
		modelEntry.CheckOut,
		modelEntry.HoursWorked,
		modelEntry.Origin,
		modelEntry.AutoCloseTime,
		modelEntry.Notes,
		modelEntry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save time entry: %w", err)
	}
	return nil
}

func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.TimeEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM time_entries WHERE entry_id = $1;`, selectEntryColumns)
	modelEntry, err := scanEntry(r.db.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find time entry by ID %s: %w", entryID, err)
	}

	domainEntry := toDomainEntry(modelEntry)
	return &domainEntry, nil
}

func (r *PgxEntryRepository) FindEntryByWorkerAndDate(ctx context.Context, workerID string, date string) (*domain.TimeEntry, error) {
	// Served by the (worker_id, date) index; this is the daily-uniqueness check.
	query := fmt.Sprintf(`SELECT %s FROM time_entries WHERE worker_id = $1 AND date = $2 LIMIT 1;`, selectEntryColumns)
	modelEntry, err := scanEntry(r.db.QueryRow(ctx, query, workerID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find time entry for worker %s on %s: %w", workerID, date, err)
	}

	domainEntry := toDomainEntry(modelEntry)
	return &domainEntry, nil
}

func (r *PgxEntryRepository) FindEntries(ctx context.Context, startDate, endDate, workerID string) ([]domain.TimeEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM time_entries`, selectEntryColumns)
	conditions := []string{}
	args := []any{}

	// The range filter applies only when both bounds are present; ISO dates
	// compare lexicographically, so BETWEEN is chronological.
	if startDate != "" && endDate != "" {
		conditions = append(conditions, fmt.Sprintf("date BETWEEN $%d AND $%d", len(args)+1, len(args)+2))
		args = append(args, startDate, endDate)
	}
	if workerID != "" {
		conditions = append(conditions, fmt.Sprintf("worker_id = $%d", len(args)+1))
		args = append(args, workerID)
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY date DESC, check_in DESC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.TimeEntry{}
	for rows.Next() {
		modelEntry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry row: %w", err)
		}
		entries = append(entries, toDomainEntry(modelEntry))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating time entry rows: %w", rows.Err())
	}

	return entries, nil
}

func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.TimeEntry) error {
	modelEntry := toModelEntry(entry)
	query := `
        UPDATE time_entries
        SET date = $1, check_in = $2, check_out = $3, hours_worked = $4, origin = $5, notes = $6
        WHERE entry_id = $7;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		modelEntry.Date,
		modelEntry.CheckIn,
		modelEntry.CheckOut,
		modelEntry.HoursWorked,
		modelEntry.Origin,
		modelEntry.Notes,
		modelEntry.EntryID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update time entry query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("time entry not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	query := `DELETE FROM time_entries WHERE entry_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("time entry not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
