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

type PgxSessionRepository struct {
	BaseRepository
}

func newPgxSessionRepository(db *pgxpool.Pool) portsrepo.SessionRepositoryFacade {
	return &PgxSessionRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxSessionRepository implements portsrepo.SessionRepositoryFacade
var _ portsrepo.SessionRepositoryFacade = (*PgxSessionRepository)(nil)

func toDomainSession(m models.ActiveSession) domain.ActiveSession {
	return domain.ActiveSession{
		WorkerID:   m.WorkerID,
		WorkerName: m.WorkerName,
		CheckIn:    m.CheckIn,
		Date:       m.Date,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.ActiveSession) error {
	// The primary key on worker_id upholds the at-most-one-session invariant.
	query := `
        INSERT INTO active_sessions (worker_id, worker_name, check_in, date, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.Pool.Exec(ctx, query,
		session.WorkerID,
		session.WorkerName,
		session.CheckIn,
		session.Date,
		session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save active session: %w", err)
	}
	return nil
}

func (r *PgxSessionRepository) FindSessionByWorkerID(ctx context.Context, workerID string) (*domain.ActiveSession, error) {
	query := `
		SELECT worker_id, worker_name, check_in, date, created_at
		FROM active_sessions
		WHERE worker_id = $1;
	`
	var modelSession models.ActiveSession
	err := r.Pool.QueryRow(ctx, query, workerID).Scan(
		&modelSession.WorkerID,
		&modelSession.WorkerName,
		&modelSession.CheckIn,
		&modelSession.Date,
		&modelSession.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active session for worker %s: %w", workerID, err)
	}

	domainSession := toDomainSession(modelSession)
	return &domainSession, nil
}

func (r *PgxSessionRepository) FindSessions(ctx context.Context) ([]domain.ActiveSession, error) {
	query := `
        SELECT worker_id, worker_name, check_in, date, created_at
        FROM active_sessions
        ORDER BY date ASC, check_in ASC;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active sessions: %w", err)
	}
	defer rows.Close()

	sessions := []domain.ActiveSession{}
	for rows.Next() {
		var modelSession models.ActiveSession
		err := rows.Scan(
			&modelSession.WorkerID,
			&modelSession.WorkerName,
			&modelSession.CheckIn,
			&modelSession.Date,
			&modelSession.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan active session row: %w", err)
		}
		sessions = append(sessions, toDomainSession(modelSession))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating active session rows: %w", rows.Err())
	}

	return sessions, nil
}

// CloseSessionIntoEntry deletes the worker's session and inserts the finalized
// entry in a single transaction. The DELETE ... RETURNING claim serializes
// concurrent closers on the session row: only the transaction that deletes the
// row writes an entry, so each session closes into exactly one entry.
func (r *PgxSessionRepository) CloseSessionIntoEntry(ctx context.Context, workerID string, entry domain.TimeEntry) (bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer r.Rollback(ctx, tx)

	var claimedWorkerID string
	err = tx.QueryRow(ctx,
		`DELETE FROM active_sessions WHERE worker_id = $1 RETURNING worker_id;`,
		workerID,
	).Scan(&claimedWorkerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Another closer won the race; nothing to do.
			return false, nil
		}
		return false, fmt.Errorf("failed to claim active session for worker %s: %w", workerID, err)
	}

	modelEntry := toModelEntry(entry)
	_, err = tx.Exec(ctx, insertEntryQuery,
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
		return false, fmt.Errorf("failed to save time entry for worker %s: %w", workerID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit session close for worker %s: %w", workerID, err)
	}
	return true, nil
}
