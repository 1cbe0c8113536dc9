package dates

import (
	"strconv"
	"time"
)

// FromPathSegments builds a date from {year}/{month-name}/{day} route
// segments. The date is anchored in UTC so the same segments resolve to the
// same calendar day in every timezone. An unrecognized month name or a
// non-numeric segment yields ok=false so callers can fall back to "now".
func FromPathSegments(year, monthName, day string) (time.Time, bool) {
	mi, err := MonthIndex(monthName)
	if err != nil {
		return time.Time{}, false
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(mi+1), d, 0, 0, 0, 0, time.UTC), true
}

// ToPathSegments formats a date as its canonical route path
// /{year}/{month-name}/{day}.
func ToPathSegments(t time.Time) string {
	name, _ := MonthName(int(t.Month()) - 1)
	return "/" + strconv.Itoa(t.Year()) + "/" + name + "/" + FormatDay(t.Day())
}

// Midnight truncates t to local midnight.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateOnly reduces t to its calendar day as observed in t's own location,
// re-anchored in UTC. Two DateOnly values compare by calendar day alone,
// which keeps day arithmetic stable when UTC-parsed route dates meet
// local-clock "today" values.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// LocalKey formats t as the local-date key YYYY-MM-DD used by the counts API.
func LocalKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatWithSuffix renders a date as "5th July 2024".
func FormatWithSuffix(t time.Time) string {
	day := t.Day()
	suffix := "th"
	switch {
	case day%10 == 1 && day != 11:
		suffix = "st"
	case day%10 == 2 && day != 12:
		suffix = "nd"
	case day%10 == 3 && day != 13:
		suffix = "rd"
	}
	return strconv.Itoa(day) + suffix + t.Format(" January 2006")
}

// FormatLong renders a date as "Sunday, 10 Mar 2024", the digest header
// format.
func FormatLong(t time.Time) string {
	return t.Format("Monday, 2 Jan 2006")
}

// SameDay reports calendar-day equality, not timestamp equality.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
