package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/martapiva/presenze_tracker_app/internal/apperrors"
	"github.com/martapiva/presenze_tracker_app/internal/core/domain"
	portsrepo "github.com/martapiva/presenze_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/martapiva/presenze_tracker_app/internal/core/ports/services"
	"github.com/martapiva/presenze_tracker_app/internal/utils/timeutil"
	"github.com/shopspring/decimal"
)

// reportingService implements read-only queries over finalized entries.
type reportingService struct {
	BaseService
	entryRepo  portsrepo.EntryReader
	workerRepo portsrepo.WorkerReader
}

// NewReportingService creates a new reporting service with the provided dependencies
func NewReportingService(entryRepo portsrepo.EntryReader, workerRepo portsrepo.WorkerReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		entryRepo:  entryRepo,
		workerRepo: workerRepo,
	}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetTimeEntries(ctx context.Context, startDate, endDate, workerID string) ([]domain.TimeEntry, error) {
	entries, err := s.entryRepo.FindEntries(ctx, startDate, endDate, workerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to query time entries",
			slog.String("start_date", startDate),
			slog.String("end_date", endDate),
			slog.String("worker_id", workerID))
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	return entries, nil
}

func (s *reportingService) GetTimeEntriesGroupedByMonth(ctx context.Context, workerID string) ([]domain.MonthlyBucket, error) {
	entries, err := s.entryRepo.FindEntries(ctx, "", "", workerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to query entries for monthly grouping",
			slog.String("worker_id", workerID))
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}

	// Entries arrive date-descending, so buckets appear most recent first and
	// stay internally ordered.
	buckets := []domain.MonthlyBucket{}
	index := map[string]int{}
	for _, entry := range entries {
		month, err := monthKey(entry.Date)
		if err != nil {
			s.LogError(ctx, err, "Skipping entry with malformed date",
				slog.String("entry_id", entry.EntryID),
				slog.String("date", entry.Date))
			continue
		}
		i, ok := index[month]
		if !ok {
			buckets = append(buckets, domain.MonthlyBucket{Month: month})
			i = len(buckets) - 1
			index[month] = i
		}
		buckets[i].Entries = append(buckets[i].Entries, entry)
	}
	return buckets, nil
}

func (s *reportingService) GetWorkerSummaries(ctx context.Context, startDate, endDate string) ([]domain.WorkerSummary, error) {
	entries, err := s.entryRepo.FindEntries(ctx, startDate, endDate, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to query entries for worker summaries",
			slog.String("start_date", startDate),
			slog.String("end_date", endDate))
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}

	totals := map[string]*domain.WorkerSummary{}
	for _, entry := range entries {
		summary, ok := totals[entry.WorkerID]
		if !ok {
			summary = &domain.WorkerSummary{
				WorkerID:   entry.WorkerID,
				WorkerName: entry.WorkerName,
			}
			totals[entry.WorkerID] = summary
		}
		summary.EntryCount++
		summary.TotalHours = summary.TotalHours.Add(entry.HoursWorked)
	}

	summaries := make([]domain.WorkerSummary, 0, len(totals))
	for workerID, summary := range totals {
		rate := decimal.Zero
		worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
		if err == nil {
			rate = worker.HourlyRate
			summary.WorkerName = worker.Name
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve worker for summary",
				slog.String("worker_id", workerID))
			return nil, fmt.Errorf("failed to resolve worker: %w", err)
		}
		// A deleted worker keeps the name captured on the entries and earns at
		// a zero rate.
		summary.HourlyRate = rate
		summary.TotalEarnings = summary.TotalHours.Mul(rate).Round(2)
		summaries = append(summaries, *summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].WorkerName < summaries[j].WorkerName
	})
	return summaries, nil
}

// monthKey converts a YYYY-MM-DD date into the MM.YYYY report bucket key.
func monthKey(date string) (string, error) {
	t, err := time.Parse(timeutil.DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid entry date %q: %w", date, err)
	}
	return t.Format("01.2006"), nil
}
