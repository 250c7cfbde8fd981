package domain

// District is immutable reference data: the smallest administrative
// region the dashboard tracks. Seeded once, never mutated.
type District struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	StateCode string  `json:"state_code"`
	StateName string  `json:"state_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DistrictMatch is a locator result: the nearest catalog district and
// its great-circle distance in whole kilometers.
type DistrictMatch struct {
	District
	DistanceKM int `json:"distance_km"`
}

// StateCodeAll selects districts of every state in listing queries.
const StateCodeAll = "ALL"
