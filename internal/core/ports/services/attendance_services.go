package services

import (
	"context"

	"github.com/martapiva/presenze_tracker_app/internal/core/domain"
	"github.com/martapiva/presenze_tracker_app/internal/dto"
)

// SessionSweeper is the minimal surface the sweep scheduler needs.
type SessionSweeper interface {
	// AutoCloseSessions converts stale or past-cutoff open sessions into
	// finalized entries. customCloseTime overrides the configured cutoff and
	// forces the sweep even when auto-close is disabled; pass "" for the
	// configured behavior.
	AutoCloseSessions(ctx context.Context, customCloseTime string) (*domain.SweepResult, error)
}

// AttendanceSvcFacade exposes every session engine operation.
type AttendanceSvcFacade interface {
	SessionSweeper

	// CheckIn opens a session for the worker. Business failures (already
	// checked in today) are reported on the result, not as errors.
	CheckIn(ctx context.Context, workerID string) (*domain.ActionResult, error)

	// CheckOut closes the worker's open session into a finalized entry. It is
	// a safe no-op when no session exists or another closer claimed it first.
	CheckOut(ctx context.Context, workerID string) error

	// ListActiveSessions retrieves every open session.
	ListActiveSessions(ctx context.Context) ([]domain.ActiveSession, error)

	// ForceCloseAllSessions unconditionally closes every open session,
	// regardless of settings or session date. closeTime defaults to now.
	ForceCloseAllSessions(ctx context.Context, closeTime string) (*domain.SweepResult, error)

	// AddManualTimeEntry persists an admin-typed entry after duplicate-day and
	// time-range validation.
	AddManualTimeEntry(ctx context.Context, req dto.CreateManualEntryRequest) (*domain.ActionResult, error)

	// UpdateTimeEntry overwrites an entry's date and times.
	UpdateTimeEntry(ctx context.Context, entryID string, req dto.UpdateTimeEntryRequest) (*domain.ActionResult, error)

	// DeleteTimeEntry removes an entry unconditionally.
	DeleteTimeEntry(ctx context.Context, entryID string) error

	// GetAutoCloseSettings retrieves the sweep configuration, falling back to
	// the default cutoff when none was ever saved.
	GetAutoCloseSettings(ctx context.Context) (*domain.AutoCloseSettings, error)

	// UpdateAutoCloseSettings stores a new sweep configuration.
	UpdateAutoCloseSettings(ctx context.Context, settings domain.AutoCloseSettings) error
}
