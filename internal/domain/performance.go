package domain

import "time"

// Data provenance tags surfaced in API responses.
const (
	SourceCache    = "cache"
	SourceDatabase = "database"
	SourceMock     = "mock"
)

// PerformanceRecord is one month of MGNREGA metrics for a district.
// The natural key is (DistrictCode, Year, Month); the sync job fully
// overwrites a row on conflict, never merges.
type PerformanceRecord struct {
	ID                  int64     `json:"id,omitempty"`
	DistrictCode        string    `json:"district_code"`
	Year                int       `json:"year"`
	Month               int       `json:"month"`
	PersonDaysGenerated int64     `json:"person_days_generated"`
	EmploymentProvided  int64     `json:"employment_provided"`
	ActiveJobCards      int64     `json:"active_job_cards"`
	TotalHouseholds     int64     `json:"total_households"`
	WomenPersondays     int64     `json:"women_persondays"`
	SCPersondays        int64     `json:"sc_persondays"`
	STPersondays        int64     `json:"st_persondays"`
	AverageWage         float64   `json:"average_wage"`
	TotalExpenditure    float64   `json:"total_expenditure"`
	WageExpenditure     float64   `json:"wage_expenditure"`
	MaterialExpenditure float64   `json:"material_expenditure"`
	WorksCompleted      int       `json:"works_completed"`
	WorksOngoing        int       `json:"works_ongoing"`
	UpdatedAt           time.Time `json:"updated_at,omitempty"`

	// Joined from districts on read paths
	DistrictName string `json:"district_name,omitempty"`
	StateCode    string `json:"state_code,omitempty"`
}

// StateAverage aggregates sibling districts of a state for one
// year/month. When no sibling rows exist for the period the averages
// stay zero; that fail-closed behavior is intentional.
type StateAverage struct {
	AvgPersonDays  float64 `json:"avg_person_days"`
	AvgEmployment  float64 `json:"avg_employment"`
	AvgJobCards    float64 `json:"avg_job_cards"`
	AvgWage        float64 `json:"avg_wage"`
	DistrictsCount int     `json:"districts_count"`
}

// PerformanceComparison pairs a district's latest record with its
// state-wide average for the same period.
type PerformanceComparison struct {
	District     *PerformanceRecord `json:"district"`
	StateAverage *StateAverage      `json:"stateAverage"`
}
