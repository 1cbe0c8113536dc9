package dates

import (
	"fmt"
	"strings"
)

// monthNames are the lowercase English month names used as URL path segments.
var monthNames = [12]string{
	"january", "february", "march", "april",
	"may", "june", "july", "august",
	"september", "october", "november", "december",
}

// MonthName converts a month index (0-11) to its lowercase English name.
func MonthName(monthIndex int) (string, error) {
	if monthIndex < 0 || monthIndex > 11 {
		return "", fmt.Errorf("invalid month index: %d", monthIndex)
	}
	return monthNames[monthIndex], nil
}

// MonthIndex converts a month name to its index (0-11). Matching is
// case-insensitive.
func MonthIndex(monthName string) (int, error) {
	lower := strings.ToLower(monthName)
	for i, name := range monthNames {
		if name == lower {
			return i, nil
		}
	}
	return 0, fmt.Errorf("invalid month name: %q", monthName)
}

// IsValidMonthName reports whether s is one of the twelve recognized English
// month names, ignoring case.
func IsValidMonthName(s string) bool {
	_, err := MonthIndex(s)
	return err == nil
}

// FormatDay pads a day-of-month with a leading zero.
func FormatDay(day int) string {
	return fmt.Sprintf("%02d", day)
}
