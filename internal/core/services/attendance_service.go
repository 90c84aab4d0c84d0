package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/martapiva/presenze_tracker_app/internal/apperrors"
	"github.com/martapiva/presenze_tracker_app/internal/core/domain"
	portsrepo "github.com/martapiva/presenze_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/martapiva/presenze_tracker_app/internal/core/ports/services"
	"github.com/martapiva/presenze_tracker_app/internal/dto"
	"github.com/martapiva/presenze_tracker_app/internal/utils/timeutil"
)

// attendanceService implements the session engine: check-in/check-out state
// transitions, the auto-close sweep, force-close, and admin entry management.
// All civil time arithmetic happens in the clock's fixed zone.
type attendanceService struct {
	BaseService
	workerRepo   portsrepo.WorkerReader
	sessionRepo  portsrepo.SessionRepositoryFacade
	entryRepo    portsrepo.EntryRepositoryFacade
	settingsRepo portsrepo.SettingsRepository
	clock        timeutil.Clock
}

// NewAttendanceService creates the session engine with the provided
// dependencies. The clock fixes the civil zone; tests pass a frozen one.
func NewAttendanceService(
	workerRepo portsrepo.WorkerReader,
	sessionRepo portsrepo.SessionRepositoryFacade,
	entryRepo portsrepo.EntryRepositoryFacade,
	settingsRepo portsrepo.SettingsRepository,
	clock timeutil.Clock,
) portssvc.AttendanceSvcFacade {
	return &attendanceService{
		workerRepo:   workerRepo,
		sessionRepo:  sessionRepo,
		entryRepo:    entryRepo,
		settingsRepo: settingsRepo,
		clock:        clock,
	}
}

// Ensure attendanceService implements the AttendanceSvcFacade interface
var _ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)

func (s *attendanceService) CheckIn(ctx context.Context, workerID string) (*domain.ActionResult, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve worker for check-in",
				slog.String("worker_id", workerID))
		}
		return nil, err
	}

	now := s.clock.Now()
	today := timeutil.FormatDate(now)

	_, err = s.sessionRepo.FindSessionByWorkerID(ctx, workerID)
	if err == nil {
		return &domain.ActionResult{
			Success: false,
			Message: fmt.Sprintf("%s ha già una sessione attiva", worker.Name),
		}, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for active session",
			slog.String("worker_id", workerID))
		return nil, fmt.Errorf("failed to check for active session: %w", err)
	}

	// One finalized entry per worker per day: a second check-in after a close
	// event (even an auto-close) is rejected for the rest of the business day.
	_, err = s.entryRepo.FindEntryByWorkerAndDate(ctx, workerID, today)
	if err == nil {
		return &domain.ActionResult{
			Success: false,
			Message: fmt.Sprintf("%s ha già una registrazione per oggi", worker.Name),
		}, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing entry",
			slog.String("worker_id", workerID),
			slog.String("date", today))
		return nil, fmt.Errorf("failed to check for existing entry: %w", err)
	}

	session := domain.ActiveSession{
		WorkerID:   workerID,
		WorkerName: worker.Name,
		CheckIn:    timeutil.FormatTime(now),
		Date:       today,
		CreatedAt:  now,
	}
	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to save active session",
			slog.String("worker_id", workerID))
		return nil, fmt.Errorf("failed to save active session: %w", err)
	}

	s.LogInfo(ctx, "Worker checked in",
		slog.String("worker_id", workerID),
		slog.String("check_in", session.CheckIn),
		slog.String("date", session.Date))
	return &domain.ActionResult{
		Success: true,
		Message: fmt.Sprintf("Check-in registrato alle %s", session.CheckIn),
	}, nil
}

func (s *attendanceService) CheckOut(ctx context.Context, workerID string) error {
	session, err := s.sessionRepo.FindSessionByWorkerID(ctx, workerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// No open session: already checked out or swept. Safe no-op.
			s.LogDebug(ctx, "Check-out with no active session",
				slog.String("worker_id", workerID))
			return nil
		}
		s.LogError(ctx, err, "Failed to find active session for check-out",
			slog.String("worker_id", workerID))
		return fmt.Errorf("failed to find active session: %w", err)
	}

	now := s.clock.Now()
	checkOut := timeutil.FormatTime(now)

	entry, err := s.buildClosedEntry(session, checkOut, now, domain.OriginNormal, "", "")
	if err != nil {
		s.LogError(ctx, err, "Failed to finalize check-out entry",
			slog.String("worker_id", workerID))
		return err
	}

	closed, err := s.sessionRepo.CloseSessionIntoEntry(ctx, workerID, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to close session",
			slog.String("worker_id", workerID))
		return fmt.Errorf("failed to close session: %w", err)
	}
	if !closed {
		// The sweep claimed the session between our read and the close.
		s.LogDebug(ctx, "Session already claimed by a concurrent close",
			slog.String("worker_id", workerID))
		return nil
	}

	s.LogInfo(ctx, "Worker checked out",
		slog.String("worker_id", workerID),
		slog.String("check_out", checkOut),
		slog.String("hours_worked", entry.HoursWorked.String()))
	return nil
}

func (s *attendanceService) ListActiveSessions(ctx context.Context) ([]domain.ActiveSession, error) {
	sessions, err := s.sessionRepo.FindSessions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active sessions")
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}
	return sessions, nil
}

func (s *attendanceService) AutoCloseSessions(ctx context.Context, customCloseTime string) (*domain.SweepResult, error) {
	sessions, err := s.sessionRepo.FindSessions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sessions for auto-close")
		return nil, fmt.Errorf("failed to list sessions for auto-close: %w", err)
	}
	if len(sessions) == 0 {
		return &domain.SweepResult{Closed: 0, Message: "Nessuna sessione attiva da chiudere"}, nil
	}

	settings, err := s.GetAutoCloseSettings(ctx)
	if err != nil {
		return nil, err
	}

	closeTime := settings.Time
	if customCloseTime != "" {
		closeTime = customCloseTime
	}
	if !settings.Enabled && customCloseTime == "" {
		return &domain.SweepResult{Closed: 0, Message: "Chiusura automatica disabilitata"}, nil
	}

	now := s.clock.Now()
	today := timeutil.FormatDate(now)
	currentTime := timeutil.FormatMinute(now)

	closedCount := 0
	for _, session := range sessions {
		shouldClose := false
		actualCloseTime := timeutil.NormalizeToSeconds(closeTime)

		// Stale-day sessions always close at the cutoff on their own day.
		// Today's sessions close only once the clock passes the cutoff, at the
		// current time rather than the cutoff. Zero-padded HH:MM strings
		// compare chronologically.
		if session.Date < today {
			shouldClose = true
		} else if session.Date == today && currentTime >= closeTime {
			shouldClose = true
			actualCloseTime = timeutil.NormalizeToSeconds(currentTime)
		}

		if !shouldClose {
			continue
		}

		entry, err := s.buildClosedEntry(&session, actualCloseTime, now, domain.OriginAutoClosed, closeTime,
			fmt.Sprintf("Chiusura automatica alle %s", closeTime))
		if err != nil {
			// One bad session must not abort the sweep.
			s.LogError(ctx, err, "Failed to build auto-close entry",
				slog.String("worker_id", session.WorkerID))
			continue
		}

		claimed, err := s.sessionRepo.CloseSessionIntoEntry(ctx, session.WorkerID, entry)
		if err != nil {
			s.LogError(ctx, err, "Failed to auto-close session",
				slog.String("worker_id", session.WorkerID))
			continue
		}
		if claimed {
			closedCount++
		}
	}

	result := &domain.SweepResult{Closed: closedCount}
	if closedCount > 0 {
		result.Message = fmt.Sprintf("%d sessioni chiuse automaticamente alle %s", closedCount, closeTime)
		s.LogInfo(ctx, "Auto-close sweep finished",
			slog.Int("closed", closedCount),
			slog.String("close_time", closeTime))
	} else {
		result.Message = fmt.Sprintf("Nessuna sessione da chiudere (ora attuale: %s)", currentTime)
	}
	return result, nil
}

func (s *attendanceService) ForceCloseAllSessions(ctx context.Context, closeTime string) (*domain.SweepResult, error) {
	sessions, err := s.sessionRepo.FindSessions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sessions for force-close")
		return nil, fmt.Errorf("failed to list sessions for force-close: %w", err)
	}
	if len(sessions) == 0 {
		return &domain.SweepResult{Closed: 0, Message: "Nessuna sessione attiva"}, nil
	}

	now := s.clock.Now()
	actualCloseTime := timeutil.FormatTime(now)
	if closeTime != "" {
		actualCloseTime = timeutil.NormalizeToSeconds(closeTime)
	}

	closedCount := 0
	for _, session := range sessions {
		entry, err := s.buildClosedEntry(&session, actualCloseTime, now, domain.OriginForceClosed, "",
			"Chiusura forzata dall'amministratore")
		if err != nil {
			s.LogError(ctx, err, "Failed to build force-close entry",
				slog.String("worker_id", session.WorkerID))
			continue
		}

		claimed, err := s.sessionRepo.CloseSessionIntoEntry(ctx, session.WorkerID, entry)
		if err != nil {
			s.LogError(ctx, err, "Failed to force-close session",
				slog.String("worker_id", session.WorkerID))
			continue
		}
		if claimed {
			closedCount++
		}
	}

	s.LogInfo(ctx, "Force-close finished", slog.Int("closed", closedCount))
	return &domain.SweepResult{
		Closed:  closedCount,
		Message: fmt.Sprintf("%d sessioni chiuse manualmente", closedCount),
	}, nil
}

// buildClosedEntry converts an open session plus a checkout time-of-day into a
// finalized entry. When the checkout instant lands at or before check-in (a
// cutoff numerically earlier than the check-in time), the checkout rolls
// forward one day so overnight sessions get a positive duration.
func (s *attendanceService) buildClosedEntry(session *domain.ActiveSession, checkOut string, now time.Time, origin domain.EntryOrigin, autoCloseTime, notes string) (domain.TimeEntry, error) {
	loc := now.Location()

	checkInAt, err := timeutil.ParseTimeOnDate(session.Date, session.CheckIn, loc)
	if err != nil {
		return domain.TimeEntry{}, fmt.Errorf("invalid session check-in: %w", err)
	}
	checkOutAt, err := timeutil.ParseTimeOnDate(session.Date, checkOut, loc)
	if err != nil {
		return domain.TimeEntry{}, fmt.Errorf("invalid checkout time: %w", err)
	}
	if !checkOutAt.After(checkInAt) && origin != domain.OriginNormal {
		checkOutAt = checkOutAt.AddDate(0, 0, 1)
	}

	return domain.TimeEntry{
		EntryID:       uuid.NewString(),
		WorkerID:      session.WorkerID,
		WorkerName:    session.WorkerName,
		Date:          session.Date,
		CheckIn:       session.CheckIn,
		CheckOut:      checkOut,
		HoursWorked:   timeutil.HoursBetween(checkInAt, checkOutAt),
		Origin:        origin,
		AutoCloseTime: autoCloseTime,
		Notes:         notes,
		CreatedAt:     now,
	}, nil
}

func (s *attendanceService) AddManualTimeEntry(ctx context.Context, req dto.CreateManualEntryRequest) (*domain.ActionResult, error) {
	now := s.clock.Now()
	loc := now.Location()

	checkInAt, err := timeutil.ParseTimeOnDate(req.Date, req.CheckIn, loc)
	if err != nil {
		return &domain.ActionResult{Success: false, Message: "Orario di entrata non valido"}, nil
	}
	checkOutAt, err := timeutil.ParseTimeOnDate(req.Date, req.CheckOut, loc)
	if err != nil {
		return &domain.ActionResult{Success: false, Message: "Orario di uscita non valido"}, nil
	}
	if !checkOutAt.After(checkInAt) {
		return &domain.ActionResult{Success: false, Message: "Intervallo orario non valido: l'uscita deve seguire l'entrata"}, nil
	}

	_, err = s.entryRepo.FindEntryByWorkerAndDate(ctx, req.WorkerID, req.Date)
	if err == nil {
		return &domain.ActionResult{
			Success: false,
			Message: fmt.Sprintf("Esiste già una registrazione per %s in data %s", req.WorkerName, req.Date),
		}, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for duplicate entry",
			slog.String("worker_id", req.WorkerID),
			slog.String("date", req.Date))
		return nil, fmt.Errorf("failed to check for duplicate entry: %w", err)
	}

	entry := domain.TimeEntry{
		EntryID:     uuid.NewString(),
		WorkerID:    req.WorkerID,
		WorkerName:  req.WorkerName,
		Date:        req.Date,
		CheckIn:     timeutil.NormalizeToSeconds(req.CheckIn),
		CheckOut:    timeutil.NormalizeToSeconds(req.CheckOut),
		HoursWorked: timeutil.HoursBetween(checkInAt, checkOutAt),
		Origin:      domain.OriginManualEntry,
		Notes:       "Inserimento manuale",
		CreatedAt:   now,
	}
	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save manual entry",
			slog.String("worker_id", req.WorkerID),
			slog.String("date", req.Date))
		return nil, fmt.Errorf("failed to save manual entry: %w", err)
	}

	s.LogInfo(ctx, "Manual entry added",
		slog.String("entry_id", entry.EntryID),
		slog.String("worker_id", req.WorkerID),
		slog.String("date", req.Date))
	return &domain.ActionResult{Success: true, Message: "Registrazione aggiunta manualmente"}, nil
}

func (s *attendanceService) UpdateTimeEntry(ctx context.Context, entryID string, req dto.UpdateTimeEntryRequest) (*domain.ActionResult, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry for update",
				slog.String("entry_id", entryID))
		}
		return nil, err
	}

	now := s.clock.Now()
	loc := now.Location()

	checkInAt, err := timeutil.ParseTimeOnDate(req.Date, req.CheckIn, loc)
	if err != nil {
		return &domain.ActionResult{Success: false, Message: "Orario di entrata non valido"}, nil
	}
	checkOutAt, err := timeutil.ParseTimeOnDate(req.Date, req.CheckOut, loc)
	if err != nil {
		return &domain.ActionResult{Success: false, Message: "Orario di uscita non valido"}, nil
	}
	if !checkOutAt.After(checkInAt) {
		return &domain.ActionResult{Success: false, Message: "Intervallo orario non valido: l'uscita deve seguire l'entrata"}, nil
	}

	// Moving an entry to another day must not collide with that day's entry.
	if req.Date != entry.Date {
		_, err = s.entryRepo.FindEntryByWorkerAndDate(ctx, entry.WorkerID, req.Date)
		if err == nil {
			return &domain.ActionResult{
				Success: false,
				Message: fmt.Sprintf("Esiste già una registrazione per %s in data %s", entry.WorkerName, req.Date),
			}, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to check for duplicate entry on edit",
				slog.String("entry_id", entryID),
				slog.String("date", req.Date))
			return nil, fmt.Errorf("failed to check for duplicate entry: %w", err)
		}
	}

	entry.Date = req.Date
	entry.CheckIn = timeutil.NormalizeToSeconds(req.CheckIn)
	entry.CheckOut = timeutil.NormalizeToSeconds(req.CheckOut)
	entry.HoursWorked = timeutil.HoursBetween(checkInAt, checkOutAt)
	entry.Origin = domain.OriginAdminEdited
	entry.Notes = "Modificato dall'amministratore"

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update entry",
			slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	s.LogInfo(ctx, "Entry updated", slog.String("entry_id", entryID))
	return &domain.ActionResult{Success: true, Message: "Registrazione aggiornata"}, nil
}

func (s *attendanceService) DeleteTimeEntry(ctx context.Context, entryID string) error {
	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete entry",
				slog.String("entry_id", entryID))
		}
		return err
	}
	s.LogInfo(ctx, "Entry deleted", slog.String("entry_id", entryID))
	return nil
}

func (s *attendanceService) GetAutoCloseSettings(ctx context.Context) (*domain.AutoCloseSettings, error) {
	settings, err := s.settingsRepo.GetAutoCloseSettings(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			defaults := domain.DefaultAutoCloseSettings()
			return &defaults, nil
		}
		s.LogError(ctx, err, "Failed to read auto-close settings")
		return nil, fmt.Errorf("failed to read auto-close settings: %w", err)
	}
	return settings, nil
}

func (s *attendanceService) UpdateAutoCloseSettings(ctx context.Context, settings domain.AutoCloseSettings) error {
	if err := s.settingsRepo.SaveAutoCloseSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to save auto-close settings")
		return fmt.Errorf("failed to save auto-close settings: %w", err)
	}
	s.LogInfo(ctx, "Auto-close settings updated",
		slog.String("close_time", settings.Time),
		slog.Bool("enabled", settings.Enabled))
	return nil
}
