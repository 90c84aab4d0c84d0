package dto

import (
	"github.com/martapiva/presenze_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWorkerRequest defines the data needed to register a worker.
type CreateWorkerRequest struct {
	Name       string          `json:"name" binding:"required"`
	ImageURL   string          `json:"imageUrl" binding:"omitempty,url"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
}

// UpdateWorkerRequest defines the data allowed for updating a worker.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateWorkerRequest struct {
	Name       *string          `json:"name"`
	ImageURL   *string          `json:"imageUrl"`
	HourlyRate *decimal.Decimal `json:"hourlyRate"`
}

// ListWorkersParams defines query parameters for listing workers.
type ListWorkersParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// WorkerResponse is the API representation of a worker.
type WorkerResponse struct {
	WorkerID   string          `json:"workerId"`
	Name       string          `json:"name"`
	ImageURL   string          `json:"imageUrl"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
}

// ListWorkersResponse wraps the list of workers.
type ListWorkersResponse struct {
	Workers []WorkerResponse `json:"workers"`
}

// ToWorkerResponse converts a domain.Worker to its API representation.
func ToWorkerResponse(w *domain.Worker) WorkerResponse {
	return WorkerResponse{
		WorkerID:   w.WorkerID,
		Name:       w.Name,
		ImageURL:   w.ImageURL,
		HourlyRate: w.HourlyRate,
	}
}

// ToListWorkersResponse converts a slice of domain.Worker to ListWorkersResponse.
func ToListWorkersResponse(workers []domain.Worker) ListWorkersResponse {
	responses := make([]WorkerResponse, len(workers))
	for i := range workers {
		responses[i] = ToWorkerResponse(&workers[i])
	}
	return ListWorkersResponse{Workers: responses}
}
