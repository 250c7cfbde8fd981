package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// IntOrZero coerces a numeric string to an integer, defaulting to zero
// when the value is missing or malformed.
func IntOrZero(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}

	// Upstream occasionally reports integer counts as decimals ("1234.0")
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}

	return 0
}

// FloatOrZero coerces a numeric string to a float, defaulting to zero
// when the value is missing or malformed.
func FloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return f
}
