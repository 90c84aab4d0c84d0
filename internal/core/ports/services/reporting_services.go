package services

import (
	"context"

	"github.com/martapiva/presenze_tracker_app/internal/core/domain"
)

// ReportingSvcFacade exposes read-only queries over finalized time entries.
// The raw entry records carry every field an external formatter (CSV export)
// needs to render a report.
type ReportingSvcFacade interface {
	// GetTimeEntries retrieves entries sorted by date descending. The date
	// range applies only when both bounds are present; workerID is optional.
	GetTimeEntries(ctx context.Context, startDate, endDate, workerID string) ([]domain.TimeEntry, error)

	// GetTimeEntriesGroupedByMonth partitions all entries into MM.YYYY buckets,
	// most recent month first, entries date-descending inside each bucket.
	GetTimeEntriesGroupedByMonth(ctx context.Context, workerID string) ([]domain.MonthlyBucket, error)

	// GetWorkerSummaries aggregates hours and earnings per worker over the
	// given range. Workers deleted since their entries were written are
	// reported with a zero rate.
	GetWorkerSummaries(ctx context.Context, startDate, endDate string) ([]domain.WorkerSummary, error)
}
