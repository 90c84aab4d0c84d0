package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActiveSession represents a row of the active_sessions table. The table is
// keyed by worker_id, which enforces the one-open-session-per-worker invariant
// at the store layer.
type ActiveSession struct {
	WorkerID   string    `db:"worker_id"`
	WorkerName string    `db:"worker_name"`
	CheckIn    string    `db:"check_in"`
	Date       string    `db:"date"`
	CreatedAt  time.Time `db:"created_at"`
}

// TimeEntry represents a row of the time_entries table.
type TimeEntry struct {
	EntryID       string          `db:"entry_id"`
	WorkerID      string          `db:"worker_id"`
	WorkerName    string          `db:"worker_name"`
	Date          string          `db:"date"`
	CheckIn       string          `db:"check_in"`
	CheckOut      string          `db:"check_out"`
	HoursWorked   decimal.Decimal `db:"hours_worked"`
	Origin        string          `db:"origin"`
	AutoCloseTime string          `db:"auto_close_time"`
	Notes         string          `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
}

// AutoCloseSettings represents the singleton auto_close_settings row.
type AutoCloseSettings struct {
	CloseTime string `db:"close_time"`
	Enabled   bool   `db:"enabled"`
}
