package domain

import "time"

// Sync run states recorded in the sync_log audit trail.
const (
	SyncStatusRunning = "running"
	SyncStatusSuccess = "success"
	SyncStatusFailed  = "failed"
)

// SyncTypeEmployment labels runs of the rural-employment sync job.
const SyncTypeEmployment = "mgnrega_performance"

// SyncLogEntry is one row of the append-only sync audit trail. A row
// is created as running and updated exactly once on completion.
type SyncLogEntry struct {
	ID               int64      `json:"id"`
	SyncType         string     `json:"sync_type"`
	Status           string     `json:"status"`
	RecordsProcessed int        `json:"records_processed"`
	ErrorMessage     *string    `json:"error_message,omitempty"`
	StartedAt        time.Time  `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}
