package datagovclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/280205/Mgnrega-Website/internal/config"
)

func testClient(baseURL string) Client {
	return NewClient(&config.Config{
		DataGov: config.DataGov{
			BaseURL:    baseURL,
			ResourceID: "ee03643a-ee4c-48c2-ac30-9f2ff26ab722",
			APIKey:     "test-key",
		},
	})
}

func TestGetEmploymentStatistics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/resource/ee03643a-ee4c-48c2-ac30-9f2ff26ab722", r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, "test-key", query.Get("api-key"))
		assert.Equal(t, "json", query.Get("format"))
		assert.Equal(t, "UTTAR PRADESH", query.Get("filters[state_name]"))
		assert.Equal(t, "2025-2026", query.Get("filters[fin_year]"))
		assert.Equal(t, "1000", query.Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		// Upstream mixes quoted and bare numbers for the same fields.
		_, _ = w.Write([]byte(`{
			"records": [
				{
					"district_code": "UP002",
					"district_name": "Lucknow",
					"state_name": "UTTAR PRADESH",
					"fin_year": "2025-2026",
					"month": "Jul",
					"Persondays_of_Central_Liability_so_far": "250000",
					"Total_Individuals_Worked": 8000,
					"Total_No_of_Active_Job_Cards": "40000",
					"Total_Households_Worked": 55000,
					"Women_Persondays": "120000",
					"SC_persondays": 70000,
					"ST_persondays": "45000",
					"Average_Wage_rate_per_day_per_person": "210.50",
					"Total_Exp": 9000000,
					"Wages": "6500000",
					"Material_and_skilled_Wages": 2500000,
					"Number_of_Completed_Works": "320",
					"Number_of_Ongoing_Works": null
				}
			]
		}`))
	}))
	defer server.Close()

	client := testClient(server.URL + "/resource")

	response, err := client.GetEmploymentStatistics(EmploymentStatisticsParams{
		StateName:     "UTTAR PRADESH",
		FinancialYear: "2025-2026",
		Limit:         1000,
	})

	assert.NoError(t, err)
	assert.Len(t, response.Records, 1)

	record := response.Records[0]
	assert.Equal(t, "UP002", record.DistrictCode)
	assert.Equal(t, "2025-2026", record.FinancialYear)
	assert.Equal(t, "Jul", record.Month)

	// Quoted and bare numbers coerce the same way.
	assert.Equal(t, int64(250000), record.PersonDays.Int())
	assert.Equal(t, int64(8000), record.IndividualsWork.Int())
	assert.Equal(t, int64(40000), record.ActiveJobCards.Int())
	assert.Equal(t, int64(55000), record.HouseholdsWork.Int())
	assert.Equal(t, 210.50, record.AverageWageRate.Float())
	assert.Equal(t, 9000000.0, record.TotalExp.Float())

	// null coerces to zero.
	assert.Equal(t, int64(0), record.OngoingWorks.Int())
}

func TestGetEmploymentStatistics_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"records": []}`))
	}))
	defer server.Close()

	client := testClient(server.URL + "/resource")

	response, err := client.GetEmploymentStatistics(EmploymentStatisticsParams{
		StateName:     "UTTAR PRADESH",
		FinancialYear: "2025-2026",
		Limit:         1000,
	})

	assert.NoError(t, err)
	assert.Empty(t, response.Records)
}

func TestGetEmploymentStatistics_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := testClient(server.URL + "/resource")

	_, err := client.GetEmploymentStatistics(EmploymentStatisticsParams{
		StateName:     "UTTAR PRADESH",
		FinancialYear: "2025-2026",
		Limit:         1000,
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestGetEmploymentStatistics_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"records": [`))
	}))
	defer server.Close()

	client := testClient(server.URL + "/resource")

	_, err := client.GetEmploymentStatistics(EmploymentStatisticsParams{
		StateName:     "UTTAR PRADESH",
		FinancialYear: "2025-2026",
		Limit:         1000,
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
