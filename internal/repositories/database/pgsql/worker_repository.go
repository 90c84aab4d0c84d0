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

type PgxWorkerRepository struct {
	db *pgxpool.Pool
}

func newPgxWorkerRepository(db *pgxpool.Pool) portsrepo.WorkerRepositoryFacade {
	return &PgxWorkerRepository{db: db}
}

// Ensure PgxWorkerRepository implements portsrepo.WorkerRepositoryFacade
var _ portsrepo.WorkerRepositoryFacade = (*PgxWorkerRepository)(nil)

// Helper to convert domain.Worker to models.Worker
func toModelWorker(d domain.Worker) models.Worker {
	return models.Worker{
		WorkerID:   d.WorkerID,
		Name:       d.Name,
		ImageURL:   d.ImageURL,
		HourlyRate: d.HourlyRate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// Helper to convert models.Worker to domain.Worker
func toDomainWorker(m models.Worker) domain.Worker {
	return domain.Worker{
		WorkerID:   m.WorkerID,
		Name:       m.Name,
		ImageURL:   m.ImageURL,
		HourlyRate: m.HourlyRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxWorkerRepository) SaveWorker(ctx context.Context, worker domain.Worker) error {
	modelWorker := toModelWorker(worker)
	query := `
        INSERT INTO workers (worker_id, name, image_url, hourly_rate, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		modelWorker.WorkerID,
		modelWorker.Name,
		modelWorker.ImageURL,
		modelWorker.HourlyRate,
		modelWorker.CreatedAt,
		modelWorker.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save worker: %w", err)
	}
	return nil
}

func (r *PgxWorkerRepository) FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	query := `
		SELECT worker_id, name, image_url, hourly_rate, created_at, last_updated_at
		FROM workers
		WHERE worker_id = $1;
	`
	var modelWorker models.Worker
	err := r.db.QueryRow(ctx, query, workerID).Scan(
		&modelWorker.WorkerID,
		&modelWorker.Name,
		&modelWorker.ImageURL,
		&modelWorker.HourlyRate,
		&modelWorker.CreatedAt,
		&modelWorker.LastUpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find worker by ID %s: %w", workerID, err)
	}

	domainWorker := toDomainWorker(modelWorker)
	return &domainWorker, nil
}

func (r *PgxWorkerRepository) FindWorkers(ctx context.Context, limit int, offset int) ([]domain.Worker, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT worker_id, name, image_url, hourly_rate, created_at, last_updated_at
        FROM workers
        ORDER BY name ASC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	workers := []domain.Worker{}
	for rows.Next() {
		var modelWorker models.Worker
		err := rows.Scan(
			&modelWorker.WorkerID,
			&modelWorker.Name,
			&modelWorker.ImageURL,
			&modelWorker.HourlyRate,
			&modelWorker.CreatedAt,
			&modelWorker.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker row: %w", err)
		}
		workers = append(workers, toDomainWorker(modelWorker))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating worker rows: %w", rows.Err())
	}

	return workers, nil
}

func (r *PgxWorkerRepository) UpdateWorker(ctx context.Context, worker domain.Worker) error {
	modelWorker := toModelWorker(worker)
	query := `
        UPDATE workers
        SET name = $1, image_url = $2, hourly_rate = $3, last_updated_at = $4
        WHERE worker_id = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		modelWorker.Name,
		modelWorker.ImageURL,
		modelWorker.HourlyRate,
		modelWorker.LastUpdatedAt,
		modelWorker.WorkerID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update worker query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("worker not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxWorkerRepository) DeleteWorker(ctx context.Context, workerID string) error {
	// Hard delete with no cascade: orphaned time entries keep the worker's
	// id and captured name, and readers tolerate the missing lookup.
	query := `DELETE FROM workers WHERE worker_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, workerID)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("worker not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
