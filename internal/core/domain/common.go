package domain

import "time"

// AuditFields holds standard audit timestamps for domain entities. The product
// has a single shared admin identity, so no per-user attribution is recorded.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
