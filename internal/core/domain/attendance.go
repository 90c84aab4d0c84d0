package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActiveSession is an open, unclosed attendance record. A worker has at most
// one active session at any instant; the store keys sessions by worker ID.
type ActiveSession struct {
	WorkerID   string    `json:"workerId"`
	WorkerName string    `json:"workerName"`
	CheckIn    string    `json:"checkIn"` // HH:MM:SS, zone-fixed
	Date       string    `json:"date"`    // YYYY-MM-DD, the session's business day
	CreatedAt  time.Time `json:"createdAt"`
}

// EntryOrigin describes how a time entry came to exist. The original product
// tagged entries with an isAutoClose/isManualEntry boolean pair; a single
// variant avoids the impossible both-true state.
type EntryOrigin string

const (
	// OriginNormal marks an entry closed by the worker's own check-out.
	OriginNormal EntryOrigin = "NORMAL"
	// OriginAutoClosed marks an entry produced by the auto-close sweep.
	OriginAutoClosed EntryOrigin = "AUTO_CLOSED"
	// OriginManualEntry marks an entry added by the admin from scratch.
	OriginManualEntry EntryOrigin = "MANUAL_ENTRY"
	// OriginAdminEdited marks an entry whose times were rewritten by the admin.
	OriginAdminEdited EntryOrigin = "ADMIN_EDITED"
	// OriginForceClosed marks an entry produced by the administrative force-close.
	OriginForceClosed EntryOrigin = "FORCE_CLOSED"
)

// IsAutoClose reports whether the entry was closed without worker action by the
// periodic sweep.
func (o EntryOrigin) IsAutoClose() bool {
	return o == OriginAutoClosed
}

// IsManualEntry reports whether the entry was typed in by the admin rather than
// produced from a session.
func (o EntryOrigin) IsManualEntry() bool {
	return o == OriginManualEntry
}

// TimeEntry is a finalized record of one worker's attendance for one calendar
// day. Intended invariant: at most one entry per (workerID, date).
type TimeEntry struct {
	EntryID       string          `json:"entryId"`
	WorkerID      string          `json:"workerId"`
	WorkerName    string          `json:"workerName"`
	Date          string          `json:"date"`     // YYYY-MM-DD
	CheckIn       string          `json:"checkIn"`  // HH:MM:SS
	CheckOut      string          `json:"checkOut"` // HH:MM:SS
	HoursWorked   decimal.Decimal `json:"hoursWorked"`
	Origin        EntryOrigin     `json:"origin"`
	AutoCloseTime string          `json:"autoCloseTime,omitempty"` // cutoff used, AUTO_CLOSED only
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// AutoCloseSettings is the singleton sweep configuration.
type AutoCloseSettings struct {
	Time    string `json:"time"` // HH:MM cutoff, zone-local
	Enabled bool   `json:"enabled"`
}

// DefaultAutoCloseSettings is applied when no settings row has ever been saved.
func DefaultAutoCloseSettings() AutoCloseSettings {
	return AutoCloseSettings{Time: "18:00", Enabled: true}
}

// ActionResult is the outcome of an engine operation whose failures are
// business conditions rather than errors. Message is the Italian status text
// the UI displays verbatim.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SweepResult is the outcome of an auto-close or force-close pass.
type SweepResult struct {
	Closed  int    `json:"closed"`
	Message string `json:"message"`
}
