package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/280205/Mgnrega-Website/internal/usecases/performing"
	"github.com/280205/Mgnrega-Website/pkg/apiErrors"
	"github.com/280205/Mgnrega-Website/pkg/log"
)

// GetCurrentPerformance returns the most recent record of a district.
func GetCurrentPerformance(service performing.PerformanceReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		districtCode, ok := districtCodeParam(w, r)
		if !ok {
			return
		}

		record, source, err := service.CurrentPerformance(r.Context(), districtCode)
		if err != nil {
			writePerformanceError(w, r, err, districtCode)
			return
		}

		writeData(w, record, source)
	})
}

// GetPerformanceHistory returns up to ?months=N records (default 12).
func GetPerformanceHistory(service performing.PerformanceReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		districtCode, ok := districtCodeParam(w, r)
		if !ok {
			return
		}

		months := performing.DefaultHistoryMonths
		if monthsStr := r.URL.Query().Get("months"); monthsStr != "" {
			parsed, err := strconv.Atoi(monthsStr)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "months must be a positive integer", nil)
				return
			}
			months = parsed
		}

		records, source, err := service.PerformanceHistory(r.Context(), districtCode, months)
		if err != nil {
			writePerformanceError(w, r, err, districtCode)
			return
		}

		writeData(w, records, source)
	})
}

// GetComparison pairs a district's latest record with the state average
// for the same period.
func GetComparison(service performing.PerformanceReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		districtCode, ok := districtCodeParam(w, r)
		if !ok {
			return
		}

		comparison, source, err := service.ComparePerformance(r.Context(), districtCode)
		if err != nil {
			writePerformanceError(w, r, err, districtCode)
			return
		}

		writeData(w, comparison, source)
	})
}

func districtCodeParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	districtCode := httprouter.ParamsFromContext(r.Context()).ByName("districtCode")
	if districtCode == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "district code is required", nil)
		return "", false
	}

	return districtCode, true
}

func writePerformanceError(w http.ResponseWriter, r *http.Request, err error, districtCode string) {
	if errors.Is(err, performing.ErrNoPerformanceData) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "no performance data found for this district", nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).WithField("district_code", districtCode).Error("failed to fetch performance data")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to fetch performance data", nil)
}
