package dto

import (
	"github.com/martapiva/presenze_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportQueryParams defines query parameters for entry reports. The date range
// is applied only when both bounds are present.
type ReportQueryParams struct {
	StartDate string `form:"start" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end" binding:"omitempty,datetime=2006-01-02"`
	WorkerID  string `form:"workerId"`
}

// ListTimeEntriesResponse wraps a flat entry report.
type ListTimeEntriesResponse struct {
	Entries []TimeEntryResponse `json:"entries"`
}

// MonthlyBucketResponse is one month's worth of entries.
type MonthlyBucketResponse struct {
	Month   string              `json:"month"` // MM.YYYY
	Entries []TimeEntryResponse `json:"entries"`
}

// MonthlyReportResponse wraps the per-month report, most recent month first.
type MonthlyReportResponse struct {
	Months []MonthlyBucketResponse `json:"months"`
}

// WorkerSummaryResponse aggregates one worker's hours and earnings.
type WorkerSummaryResponse struct {
	WorkerID      string          `json:"workerId"`
	WorkerName    string          `json:"workerName"`
	HourlyRate    decimal.Decimal `json:"hourlyRate"`
	EntryCount    int             `json:"entryCount"`
	TotalHours    decimal.Decimal `json:"totalHours"`
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
}

// SummaryReportResponse wraps the per-worker summary report.
type SummaryReportResponse struct {
	Summaries []WorkerSummaryResponse `json:"summaries"`
}

// ToMonthlyReportResponse converts month buckets to their API representation.
func ToMonthlyReportResponse(buckets []domain.MonthlyBucket) MonthlyReportResponse {
	months := make([]MonthlyBucketResponse, len(buckets))
	for i, b := range buckets {
		months[i] = MonthlyBucketResponse{
			Month:   b.Month,
			Entries: ToTimeEntryResponses(b.Entries),
		}
	}
	return MonthlyReportResponse{Months: months}
}

// ToSummaryReportResponse converts worker summaries to their API representation.
func ToSummaryReportResponse(summaries []domain.WorkerSummary) SummaryReportResponse {
	responses := make([]WorkerSummaryResponse, len(summaries))
	for i, s := range summaries {
		responses[i] = WorkerSummaryResponse{
			WorkerID:      s.WorkerID,
			WorkerName:    s.WorkerName,
			HourlyRate:    s.HourlyRate,
			EntryCount:    s.EntryCount,
			TotalHours:    s.TotalHours,
			TotalEarnings: s.TotalEarnings,
		}
	}
	return SummaryReportResponse{Summaries: responses}
}
