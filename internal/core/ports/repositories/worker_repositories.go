package repositories

import (
	"context"

	"github.com/martapiva/presenze_tracker_app/internal/core/domain"
)

// WorkerReader defines read operations for worker data
type WorkerReader interface {
	// FindWorkerByID retrieves a specific worker by their ID.
	FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error)

	// FindWorkers retrieves a paginated list of workers.
	FindWorkers(ctx context.Context, limit int, offset int) ([]domain.Worker, error)
}

// WorkerWriter defines write operations for worker data
type WorkerWriter interface {
	// SaveWorker persists a new worker.
	SaveWorker(ctx context.Context, worker domain.Worker) error

	// UpdateWorker updates an existing worker's details.
	UpdateWorker(ctx context.Context, worker domain.Worker) error

	// DeleteWorker removes a worker. The delete is unconditional: time entries
	// referencing the worker are kept and must tolerate the missing lookup.
	DeleteWorker(ctx context.Context, workerID string) error
}

// WorkerRepositoryFacade combines all worker-related repository interfaces
type WorkerRepositoryFacade interface {
	WorkerReader
	WorkerWriter
}
