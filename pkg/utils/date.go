package utils

import "time"

// CurrentFinancialYear returns the Indian fiscal year (April to March)
// containing ref, formatted as "YYYY-YYYY".
func CurrentFinancialYear(ref time.Time) string {
	year := ref.Year()
	if ref.Month() < time.April {
		year--
	}

	return formatFinancialYear(year)
}

func formatFinancialYear(startYear int) string {
	return time.Date(startYear, time.April, 1, 0, 0, 0, 0, time.UTC).Format("2006") +
		"-" +
		time.Date(startYear+1, time.April, 1, 0, 0, 0, 0, time.UTC).Format("2006")
}
