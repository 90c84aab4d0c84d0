package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/martapiva/presenze_tracker_app/internal/apperrors"
	"github.com/martapiva/presenze_tracker_app/internal/core/domain"
	portsrepo "github.com/martapiva/presenze_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/martapiva/presenze_tracker_app/internal/core/ports/services"
	"github.com/martapiva/presenze_tracker_app/internal/dto"
	"github.com/martapiva/presenze_tracker_app/internal/utils/timeutil"
)

// workerService implements the WorkerSvcFacade interface
type workerService struct {
	BaseService
	workerRepo portsrepo.WorkerRepositoryFacade
	clock      timeutil.Clock
}

// NewWorkerService creates a new worker service with the provided dependencies
func NewWorkerService(workerRepo portsrepo.WorkerRepositoryFacade, clock timeutil.Clock) portssvc.WorkerSvcFacade {
	return &workerService{
		workerRepo: workerRepo,
		clock:      clock,
	}
}

// Ensure workerService implements the WorkerSvcFacade interface
var _ portssvc.WorkerSvcFacade = (*workerService)(nil)

func (s *workerService) CreateWorker(ctx context.Context, req dto.CreateWorkerRequest) (*domain.Worker, error) {
	now := s.clock.Now()

	worker := domain.Worker{
		WorkerID:   uuid.NewString(),
		Name:       req.Name,
		ImageURL:   req.ImageURL,
		HourlyRate: req.HourlyRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.workerRepo.SaveWorker(ctx, worker); err != nil {
		s.LogError(ctx, err, "Failed to create worker",
			slog.String("worker_name", req.Name))
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}

	s.LogInfo(ctx, "Worker created",
		slog.String("worker_id", worker.WorkerID),
		slog.String("worker_name", worker.Name))
	return &worker, nil
}

func (s *workerService) GetWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find worker by ID",
				slog.String("worker_id", workerID))
		}
		return nil, err
	}
	return worker, nil
}

func (s *workerService) ListWorkers(ctx context.Context, limit, offset int) ([]domain.Worker, error) {
	workers, err := s.workerRepo.FindWorkers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workers")
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return workers, nil
}

func (s *workerService) UpdateWorker(ctx context.Context, workerID string, req dto.UpdateWorkerRequest) (*domain.Worker, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find worker for update",
				slog.String("worker_id", workerID))
		}
		return nil, err
	}

	if req.Name != nil {
		worker.Name = *req.Name
	}
	if req.ImageURL != nil {
		worker.ImageURL = *req.ImageURL
	}
	if req.HourlyRate != nil {
		worker.HourlyRate = *req.HourlyRate
	}
	worker.LastUpdatedAt = s.clock.Now()

	if err := s.workerRepo.UpdateWorker(ctx, *worker); err != nil {
		s.LogError(ctx, err, "Failed to update worker",
			slog.String("worker_id", workerID))
		return nil, fmt.Errorf("failed to update worker: %w", err)
	}

	s.LogInfo(ctx, "Worker updated", slog.String("worker_id", workerID))
	return worker, nil
}

func (s *workerService) DeleteWorker(ctx context.Context, workerID string) error {
	if err := s.workerRepo.DeleteWorker(ctx, workerID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete worker",
				slog.String("worker_id", workerID))
		}
		return err
	}

	// Time entries referencing the worker are kept: they carry the captured
	// name, and reporting falls back to a zero rate for the missing worker.
	s.LogInfo(ctx, "Worker deleted", slog.String("worker_id", workerID))
	return nil
}
