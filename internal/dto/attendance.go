package dto

import (
	"github.com/martapiva/presenze_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CheckInRequest identifies the worker checking in at the kiosk.
type CheckInRequest struct {
	WorkerID string `json:"workerId" binding:"required"`
}

// CheckOutRequest identifies the worker checking out.
type CheckOutRequest struct {
	WorkerID string `json:"workerId" binding:"required"`
}

// SweepRequest optionally overrides the checkout time used by an auto-close or
// force-close pass.
type SweepRequest struct {
	CloseTime string `json:"closeTime" binding:"omitempty,timeofday"` // HH:MM
}

// CreateManualEntryRequest defines an admin-typed time entry.
type CreateManualEntryRequest struct {
	WorkerID   string `json:"workerId" binding:"required"`
	WorkerName string `json:"workerName" binding:"required"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	CheckIn    string `json:"checkIn" binding:"required,timeofday"`
	CheckOut   string `json:"checkOut" binding:"required,timeofday"`
}

// UpdateTimeEntryRequest defines the fields an admin may rewrite on an entry.
type UpdateTimeEntryRequest struct {
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	CheckIn  string `json:"checkIn" binding:"required,timeofday"`
	CheckOut string `json:"checkOut" binding:"required,timeofday"`
}

// AutoCloseSettingsRequest updates the sweep configuration.
type AutoCloseSettingsRequest struct {
	Time    string `json:"time" binding:"required,datetime=15:04"`
	Enabled *bool  `json:"enabled" binding:"required"`
}

// ActiveSessionResponse is the API representation of an open session.
type ActiveSessionResponse struct {
	WorkerID   string `json:"workerId"`
	WorkerName string `json:"workerName"`
	CheckIn    string `json:"checkIn"`
	Date       string `json:"date"`
}

// ListActiveSessionsResponse wraps the list of open sessions.
type ListActiveSessionsResponse struct {
	Sessions []ActiveSessionResponse `json:"sessions"`
}

// TimeEntryResponse is the API representation of a finalized entry. The
// isAutoClose/isManualEntry booleans are derived from the origin so the
// existing UI and CSV exporter keep working unchanged.
type TimeEntryResponse struct {
	EntryID       string          `json:"entryId"`
	WorkerID      string          `json:"workerId"`
	WorkerName    string          `json:"workerName"`
	Date          string          `json:"date"`
	CheckIn       string          `json:"checkIn"`
	CheckOut      string          `json:"checkOut"`
	HoursWorked   decimal.Decimal `json:"hoursWorked"`
	Origin        string          `json:"origin"`
	IsAutoClose   bool            `json:"isAutoClose"`
	IsManualEntry bool            `json:"isManualEntry"`
	AutoCloseTime string          `json:"autoCloseTime,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// ToActiveSessionResponse converts a domain.ActiveSession to its API representation.
func ToActiveSessionResponse(s *domain.ActiveSession) ActiveSessionResponse {
	return ActiveSessionResponse{
		WorkerID:   s.WorkerID,
		WorkerName: s.WorkerName,
		CheckIn:    s.CheckIn,
		Date:       s.Date,
	}
}

// ToListActiveSessionsResponse converts a slice of domain.ActiveSession.
func ToListActiveSessionsResponse(sessions []domain.ActiveSession) ListActiveSessionsResponse {
	responses := make([]ActiveSessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = ToActiveSessionResponse(&sessions[i])
	}
	return ListActiveSessionsResponse{Sessions: responses}
}

// ToTimeEntryResponse converts a domain.TimeEntry to its API representation.
func ToTimeEntryResponse(e *domain.TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		EntryID:       e.EntryID,
		WorkerID:      e.WorkerID,
		WorkerName:    e.WorkerName,
		Date:          e.Date,
		CheckIn:       e.CheckIn,
		CheckOut:      e.CheckOut,
		HoursWorked:   e.HoursWorked,
		Origin:        string(e.Origin),
		IsAutoClose:   e.Origin.IsAutoClose(),
		IsManualEntry: e.Origin.IsManualEntry(),
		AutoCloseTime: e.AutoCloseTime,
		Notes:         e.Notes,
	}
}

// ToTimeEntryResponses converts a slice of domain.TimeEntry.
func ToTimeEntryResponses(entries []domain.TimeEntry) []TimeEntryResponse {
	responses := make([]TimeEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToTimeEntryResponse(&entries[i])
	}
	return responses
}
