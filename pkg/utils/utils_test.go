package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntOrZero(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{
			name:     "plain integer",
			input:    "250000",
			expected: 250000,
		},
		{
			name:     "decimal string truncates",
			input:    "1234.0",
			expected: 1234,
		},
		{
			name:     "empty string is zero",
			input:    "",
			expected: 0,
		},
		{
			name:     "garbage is zero",
			input:    "NA",
			expected: 0,
		},
		{
			name:     "negative integer",
			input:    "-42",
			expected: -42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IntOrZero(tt.input))
		})
	}
}

func TestFloatOrZero(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{
			name:     "decimal string",
			input:    "210.50",
			expected: 210.50,
		},
		{
			name:     "integer string",
			input:    "9000000",
			expected: 9000000,
		},
		{
			name:     "empty string is zero",
			input:    "",
			expected: 0,
		},
		{
			name:     "garbage is zero",
			input:    "n/a",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FloatOrZero(tt.input))
		})
	}
}

func TestCurrentFinancialYear(t *testing.T) {
	tests := []struct {
		name     string
		ref      time.Time
		expected string
	}{
		{
			name:     "April starts a new fiscal year",
			ref:      time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			expected: "2025-2026",
		},
		{
			name:     "March belongs to the previous fiscal year",
			ref:      time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC),
			expected: "2024-2025",
		},
		{
			name:     "mid-year",
			ref:      time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
			expected: "2025-2026",
		},
		{
			name:     "January",
			ref:      time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
			expected: "2025-2026",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CurrentFinancialYear(tt.ref))
		})
	}
}
