package handler

import (
	"net/http"

	"github.com/280205/Mgnrega-Website/internal/scheduler"
	"github.com/280205/Mgnrega-Website/pkg/apiErrors"
	"github.com/280205/Mgnrega-Website/pkg/log"
)

const syncStatusRunLimit = 10

// RunSyncJob triggers an employment sync outside the cron schedule. The
// job itself still enforces single-flight execution.
func RunSyncJob(service *scheduler.EmploymentSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if service.IsRunning() {
			writeJSON(w, http.StatusAccepted, envelope{
				Success: true,
				Message: "sync already in progress, request skipped",
			})
			return
		}

		service.TriggerManualSync()

		writeJSON(w, http.StatusAccepted, envelope{
			Success: true,
			Message: "sync started",
		})
	})
}

// GetSyncStatus exposes the running flag and the recent audit trail.
func GetSyncStatus(service *scheduler.EmploymentSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		runs, err := service.RecentRuns(r.Context(), syncStatusRunLimit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("failed to fetch sync log entries")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to fetch sync status", nil)
			return
		}

		writeData(w, map[string]any{
			"running":     service.IsRunning(),
			"recent_runs": runs,
		}, "")
	})
}
