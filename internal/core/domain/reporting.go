package domain

import "github.com/shopspring/decimal"

// MonthlyBucket groups finalized entries for one calendar month.
type MonthlyBucket struct {
	Month   string      `json:"month"` // MM.YYYY
	Entries []TimeEntry `json:"entries"`
}

// WorkerSummary aggregates a worker's entries over a report range. Earnings are
// hours times the worker's current hourly rate; entries whose worker has been
// deleted are still counted, with a zero rate and the name captured on the entry.
type WorkerSummary struct {
	WorkerID      string          `json:"workerId"`
	WorkerName    string          `json:"workerName"`
	HourlyRate    decimal.Decimal `json:"hourlyRate"`
	EntryCount    int             `json:"entryCount"`
	TotalHours    decimal.Decimal `json:"totalHours"`
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
}
