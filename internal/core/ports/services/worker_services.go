package services

import (
	"context"

	"github.com/martapiva/presenze_tracker_app/internal/core/domain"
	"github.com/martapiva/presenze_tracker_app/internal/dto"
)

// WorkerReaderSvc defines read operations for worker data
type WorkerReaderSvc interface {
	// GetWorkerByID retrieves a worker by ID.
	GetWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error)

	// ListWorkers retrieves a paginated list of workers.
	ListWorkers(ctx context.Context, limit, offset int) ([]domain.Worker, error)
}

// WorkerWriterSvc defines write operations for worker data
type WorkerWriterSvc interface {
	// CreateWorker creates a new worker.
	CreateWorker(ctx context.Context, req dto.CreateWorkerRequest) (*domain.Worker, error)

	// UpdateWorker updates an existing worker.
	UpdateWorker(ctx context.Context, workerID string, req dto.UpdateWorkerRequest) (*domain.Worker, error)

	// DeleteWorker removes a worker unconditionally.
	DeleteWorker(ctx context.Context, workerID string) error
}

// WorkerSvcFacade combines all worker service interfaces
type WorkerSvcFacade interface {
	WorkerReaderSvc
	WorkerWriterSvc
}
