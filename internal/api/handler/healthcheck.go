package handler

import (
	"net/http"
	"time"

	"github.com/280205/Mgnrega-Website/infrastructure/cache"
	"github.com/280205/Mgnrega-Website/infrastructure/database/postgres"
	"github.com/280205/Mgnrega-Website/pkg/log"
)

type healthStatus struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
}

// HealthcheckHandler reports reachability of the store and the cache.
func HealthcheckHandler(conn *postgres.Connection, cacheClient cache.Cache) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := healthStatus{
			Success:   true,
			Message:   "API is healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Database:  "connected",
			Cache:     "connected",
		}

		if err := conn.Ping(r.Context()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("healthcheck: database unreachable")
			status.Success = false
			status.Message = "Service unhealthy"
			status.Database = "disconnected"
		}

		if err := cacheClient.Ping(r.Context()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("healthcheck: cache unreachable")
			status.Success = false
			status.Message = "Service unhealthy"
			status.Cache = "disconnected"
		}

		code := http.StatusOK
		if !status.Success {
			code = http.StatusServiceUnavailable
		}

		writeJSON(w, code, status)
	})
}
