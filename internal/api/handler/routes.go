package handler

import (
	"net/http"

	"github.com/280205/Mgnrega-Website/infrastructure/cache"
	"github.com/280205/Mgnrega-Website/infrastructure/database/postgres"
	"github.com/280205/Mgnrega-Website/internal/api/handler/router"
	"github.com/280205/Mgnrega-Website/internal/scheduler"
	"github.com/280205/Mgnrega-Website/internal/usecases/locating"
	"github.com/280205/Mgnrega-Website/internal/usecases/performing"
)

func Healthcheck(conn *postgres.Connection, cacheClient cache.Cache) []router.Route {
	return []router.Route{
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(conn, cacheClient),
		},
	}
}

func Districts(service performing.PerformanceReader, locator locating.Locator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/districts/:stateCode",
			Method:  http.MethodGet,
			Handler: ListDistricts(service),
		},
		{
			// httprouter cannot mix a static "locate" child with the
			// :stateCode wildcard, so the literal rides the wildcard.
			Path:    "/api/districts/:stateCode/coordinates",
			Method:  http.MethodGet,
			Handler: LocateDistrict(locator),
		},
	}
}

func Location(locator locating.Locator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/location/detect",
			Method:  http.MethodPost,
			Handler: DetectLocation(locator),
		},
	}
}

func Performance(service performing.PerformanceReader) []router.Route {
	return []router.Route{
		{
			Path:    "/api/performance/current/:districtCode",
			Method:  http.MethodGet,
			Handler: GetCurrentPerformance(service),
		},
		{
			Path:    "/api/performance/history/:districtCode",
			Method:  http.MethodGet,
			Handler: GetPerformanceHistory(service),
		},
		{
			Path:    "/api/performance/compare/:districtCode",
			Method:  http.MethodGet,
			Handler: GetComparison(service),
		},
	}
}

func Sync(service *scheduler.EmploymentSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sync/run",
			Method:  http.MethodPost,
			Handler: RunSyncJob(service),
		},
		{
			Path:    "/api/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(service),
		},
	}
}
