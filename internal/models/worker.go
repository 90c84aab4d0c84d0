package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit timestamps for persisted rows.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}

// Worker represents a row of the workers table.
type Worker struct {
	WorkerID   string          `db:"worker_id"`
	Name       string          `db:"name"`
	ImageURL   string          `db:"image_url"`
	HourlyRate decimal.Decimal `db:"hourly_rate"`
	AuditFields
}
