package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/280205/Mgnrega-Website/internal/usecases/locating"
	"github.com/280205/Mgnrega-Website/internal/usecases/performing"
	"github.com/280205/Mgnrega-Website/pkg/apiErrors"
	"github.com/280205/Mgnrega-Website/pkg/log"
)

// ListDistricts returns the districts of a state, or of every state for
// the "ALL" code.
func ListDistricts(service performing.PerformanceReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stateCode := httprouter.ParamsFromContext(r.Context()).ByName("stateCode")
		if stateCode == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "state code is required", nil)
			return
		}

		districts, source, err := service.ListDistricts(r.Context(), stateCode)
		if err != nil {
			logger.WithError(err).WithField("state_code", stateCode).Error("failed to list districts")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to fetch districts", nil)
			return
		}

		writeData(w, districts, source)
	})
}

// LocateDistrict resolves lat/lng query parameters to the nearest
// catalog district.
func LocateDistrict(locator locating.Locator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lat, lng, ok := parseCoordinates(w, r.URL.Query().Get("lat"), r.URL.Query().Get("lng"))
		if !ok {
			return
		}

		locate(w, r, locator, lat, lng)
	})
}

// DetectLocation is the POST variant used by the browser geolocation
// flow; the coordinates arrive in the JSON body.
func DetectLocation(locator locating.Locator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Latitude  *float64 `json:"latitude"`
			Longitude *float64 `json:"longitude"`
		}

		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if body.Latitude == nil || body.Longitude == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "latitude and longitude are required", nil)
			return
		}

		locate(w, r, locator, *body.Latitude, *body.Longitude)
	})
}

func locate(w http.ResponseWriter, r *http.Request, locator locating.Locator, lat, lng float64) {
	logger := log.ForContext(r.Context())

	match, err := locator.NearestDistrict(r.Context(), lat, lng)
	if err != nil {
		switch {
		case errors.Is(err, locating.ErrInvalidCoordinates):
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "latitude or longitude out of range", nil)
		case errors.Is(err, locating.ErrNoDistricts):
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "no district found for these coordinates", nil)
		default:
			logger.WithError(err).Error("failed to locate district")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to locate district", nil)
		}
		return
	}

	writeData(w, match, "")
}

func parseCoordinates(w http.ResponseWriter, latStr, lngStr string) (float64, float64, bool) {
	if latStr == "" || lngStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "latitude and longitude are required", nil)
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "latitude must be a decimal number", nil)
		return 0, 0, false
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "longitude must be a decimal number", nil)
		return 0, 0, false
	}

	return lat, lng, true
}
