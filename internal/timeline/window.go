// Package timeline computes the bounded, today-clamped strip of selectable
// days shown around a selected date, merged with server-supplied per-day
// incident counts.
package timeline

import (
	"time"

	"github.com/ragadecode/ragadecode/internal/dates"
)

const DefaultDaysBefore = 7
const DefaultDaysAfter = 7

// Count is a sparse per-day entry keyed by a local YYYY-MM-DD date string.
// Days missing from the list count as zero.
type Count struct {
	DateISO string `json:"dateISO"`
	Count   int    `json:"count"`
}

// Day is one selectable entry of the window.
type Day struct {
	Date     time.Time `json:"-"`
	Key      string    `json:"key"`
	Path     string    `json:"path"`
	Weekday  string    `json:"weekday"`
	DayOfMon int       `json:"day"`
	Count    int       `json:"count"`
	Selected bool      `json:"selected"`
	// Disabled marks a day strictly after today. The window clamp keeps such
	// days out unless a caller forces a future selected date, in which case
	// they are rendered but not selectable.
	Disabled bool `json:"disabled"`
}

// Window is the ordered, contiguous day range [start, end].
type Window struct {
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
	Days  []Day     `json:"days"`
}

// Compute materializes the window around selected, clamped so no day lies
// after today. When selected equals today the after-slack is dropped entirely
// and the window is [today-daysBefore, today]. Negative magnitudes are
// treated as zero.
func Compute(selected, today time.Time, daysBefore, daysAfter int, counts []Count) Window {
	if daysBefore < 0 {
		daysBefore = 0
	}
	if daysAfter < 0 {
		daysAfter = 0
	}

	// calendar-day normalization: a UTC route date and a local clock still
	// land on the same day grid
	today = dates.DateOnly(today)
	sel := dates.DateOnly(selected)

	start := sel.AddDate(0, 0, -daysBefore)
	end := sel.AddDate(0, 0, daysAfter)
	if end.After(today) {
		end = today
	}
	if sel.Equal(today) {
		start = today.AddDate(0, 0, -daysBefore)
		end = today
	}

	byKey := make(map[string]int, len(counts))
	for _, c := range counts {
		if c.DateISO != "" {
			byKey[c.DateISO] = c.Count
		}
	}

	var days []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := dates.LocalKey(d)
		days = append(days, Day{
			Date:     d,
			Key:      key,
			Path:     dates.ToPathSegments(d),
			Weekday:  d.Format("Mon"),
			DayOfMon: d.Day(),
			Count:    byKey[key],
			Selected: dates.SameDay(d, sel),
			Disabled: d.After(today),
		})
	}

	return Window{Start: start, End: end, Days: days}
}
