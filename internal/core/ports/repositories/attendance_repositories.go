package repositories

import (
	"context"

	"github.com/martapiva/presenze_tracker_app/internal/core/domain"
)

// SessionReader defines read operations for active sessions
type SessionReader interface {
	// FindSessionByWorkerID retrieves the open session for a worker, if any.
	FindSessionByWorkerID(ctx context.Context, workerID string) (*domain.ActiveSession, error)

	// FindSessions retrieves every open session.
	FindSessions(ctx context.Context) ([]domain.ActiveSession, error)
}

// SessionWriter defines write operations for active sessions
type SessionWriter interface {
	// SaveSession persists a new open session for a worker.
	SaveSession(ctx context.Context, session domain.ActiveSession) error

	// CloseSessionIntoEntry atomically removes the worker's open session and
	// persists the given finalized entry in its place. It returns false when
	// the session no longer exists, in which case nothing is written: whichever
	// closer claims the session first wins, and each session closes into
	// exactly one entry.
	CloseSessionIntoEntry(ctx context.Context, workerID string, entry domain.TimeEntry) (bool, error)
}

// SessionRepositoryFacade combines all session-related repository interfaces
type SessionRepositoryFacade interface {
	SessionReader
	SessionWriter
}

// EntryReader defines read operations for finalized time entries
type EntryReader interface {
	// FindEntryByID retrieves a specific entry by its ID.
	FindEntryByID(ctx context.Context, entryID string) (*domain.TimeEntry, error)

	// FindEntryByWorkerAndDate retrieves the entry for a worker on a calendar
	// day, if any. Backed by an index on (worker_id, date).
	FindEntryByWorkerAndDate(ctx context.Context, workerID string, date string) (*domain.TimeEntry, error)

	// FindEntries retrieves entries sorted by date descending. The date range
	// applies only when both bounds are non-empty; workerID is optional.
	FindEntries(ctx context.Context, startDate, endDate, workerID string) ([]domain.TimeEntry, error)
}

// EntryWriter defines write operations for finalized time entries
type EntryWriter interface {
	// SaveEntry persists a new entry.
	SaveEntry(ctx context.Context, entry domain.TimeEntry) error

	// UpdateEntry overwrites an existing entry's times, date, duration, origin
	// and notes in place.
	UpdateEntry(ctx context.Context, entry domain.TimeEntry) error

	// DeleteEntry removes an entry. No referential checks.
	DeleteEntry(ctx context.Context, entryID string) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}

// SettingsRepository persists the singleton auto-close configuration.
type SettingsRepository interface {
	// GetAutoCloseSettings retrieves the stored settings. Returns
	// apperrors.ErrNotFound when no settings row has ever been saved.
	GetAutoCloseSettings(ctx context.Context) (*domain.AutoCloseSettings, error)

	// SaveAutoCloseSettings upserts the settings row.
	SaveAutoCloseSettings(ctx context.Context, settings domain.AutoCloseSettings) error
}
