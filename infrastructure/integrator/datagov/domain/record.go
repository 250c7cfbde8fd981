// Package domain mirrors the data.gov.in MGNREGA resource shape. The
// field names are an external contract and must not be renamed.
package domain

import (
	"bytes"

	"github.com/280205/Mgnrega-Website/pkg/utils"
)

// NumericValue tolerates the upstream's habit of switching between JSON
// strings and bare numbers for the same field across releases.
type NumericValue string

func (n *NumericValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}

	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		*n = NumericValue(data[1 : len(data)-1])
		return nil
	}

	*n = NumericValue(data)
	return nil
}

// Int coerces the value to an integer, zero when missing or malformed.
func (n NumericValue) Int() int64 {
	return utils.IntOrZero(string(n))
}

// Float coerces the value to a float, zero when missing or malformed.
func (n NumericValue) Float() float64 {
	return utils.FloatOrZero(string(n))
}

// EmploymentRecord is one district-month row of the MGNREGA resource.
type EmploymentRecord struct {
	DistrictCode  string `json:"district_code"`
	DistrictName  string `json:"district_name"`
	StateName     string `json:"state_name"`
	FinancialYear string `json:"fin_year"`
	Month         string `json:"month"`

	PersonDays      NumericValue `json:"Persondays_of_Central_Liability_so_far"`
	IndividualsWork NumericValue `json:"Total_Individuals_Worked"`
	ActiveJobCards  NumericValue `json:"Total_No_of_Active_Job_Cards"`
	HouseholdsWork  NumericValue `json:"Total_Households_Worked"`
	WomenPersondays NumericValue `json:"Women_Persondays"`
	SCPersondays    NumericValue `json:"SC_persondays"`
	STPersondays    NumericValue `json:"ST_persondays"`
	AverageWageRate NumericValue `json:"Average_Wage_rate_per_day_per_person"`
	TotalExp        NumericValue `json:"Total_Exp"`
	Wages           NumericValue `json:"Wages"`
	MaterialWages   NumericValue `json:"Material_and_skilled_Wages"`
	CompletedWorks  NumericValue `json:"Number_of_Completed_Works"`
	OngoingWorks    NumericValue `json:"Number_of_Ongoing_Works"`
}
