package domain

import "github.com/shopspring/decimal"

// Worker is a person tracked by the attendance system. Workers are managed by
// the admin panel and looked up by the session engine at check-in time.
type Worker struct {
	WorkerID   string          `json:"workerId"`
	Name       string          `json:"name"`
	ImageURL   string          `json:"imageUrl"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
	AuditFields
}
