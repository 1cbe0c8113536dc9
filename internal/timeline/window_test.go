package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestCompute_FullWindow(t *testing.T) {
	// selected + daysAfter <= today: exactly before+after+1 days
	today := day(2024, time.March, 30)
	selected := day(2024, time.March, 15)

	w := Compute(selected, today, 7, 7, nil)

	require.Len(t, w.Days, 15)
	assert.Equal(t, "2024-03-08", w.Days[0].Key)
	assert.Equal(t, "2024-03-22", w.Days[14].Key)
}

func TestCompute_ClampedToToday(t *testing.T) {
	// Scenario from the date strip: selected 2024-03-10, today 2024-03-15.
	today := day(2024, time.March, 15)
	selected := day(2024, time.March, 10)

	w := Compute(selected, today, 7, 7, nil)

	require.Len(t, w.Days, 13)
	assert.Equal(t, "2024-03-03", w.Days[0].Key)
	assert.Equal(t, "2024-03-15", w.Days[12].Key)

	for _, d := range w.Days {
		assert.False(t, d.Date.After(today), "no day after today: %s", d.Key)
		assert.False(t, d.Disabled, "%s", d.Key)
		assert.Equal(t, d.Key == "2024-03-10", d.Selected, "%s", d.Key)
	}
}

func TestCompute_SelectedIsToday_DropsAfterSlack(t *testing.T) {
	today := day(2024, time.March, 15)

	w := Compute(today, today, 7, 7, nil)

	require.Len(t, w.Days, 8)
	assert.Equal(t, "2024-03-08", w.Days[0].Key)
	assert.Equal(t, "2024-03-15", w.Days[7].Key)
	assert.True(t, w.Days[7].Selected)
}

func TestCompute_ZeroMagnitudes_SingleDay(t *testing.T) {
	today := day(2024, time.March, 15)
	selected := day(2024, time.March, 10)

	w := Compute(selected, today, 0, 0, nil)

	require.Len(t, w.Days, 1)
	assert.Equal(t, "2024-03-10", w.Days[0].Key)
	assert.True(t, w.Days[0].Selected)
}

func TestCompute_NegativeMagnitudesTreatedAsZero(t *testing.T) {
	today := day(2024, time.March, 15)

	w := Compute(today, today, -3, -9, nil)

	require.Len(t, w.Days, 1)
	assert.Equal(t, "2024-03-15", w.Days[0].Key)
}

func TestCompute_CountsMergedByLocalKey(t *testing.T) {
	today := day(2024, time.March, 15)
	counts := []Count{
		{DateISO: "2024-03-14", Count: 4},
		{DateISO: "2024-03-15", Count: 2},
		{DateISO: "2024-03-20", Count: 9}, // outside window, ignored
		{DateISO: "", Count: 99},          // no key, ignored
	}

	w := Compute(today, today, 2, 0, counts)

	require.Len(t, w.Days, 3)
	assert.Equal(t, 0, w.Days[0].Count)
	assert.Equal(t, 4, w.Days[1].Count)
	assert.Equal(t, 2, w.Days[2].Count)
}

func TestCompute_FutureSelectedDisablesFutureDays(t *testing.T) {
	// A caller-forced future selected date bypasses the clamp for the
	// before-window; days past today must come back disabled.
	today := day(2024, time.March, 15)
	selected := day(2024, time.March, 18)

	w := Compute(selected, today, 2, 2, nil)

	for _, d := range w.Days {
		assert.Equal(t, d.Date.After(today), d.Disabled, "%s", d.Key)
	}
}

func TestCompute_MidnightNormalization(t *testing.T) {
	today := time.Date(2024, time.March, 15, 23, 40, 0, 0, time.Local)
	selected := time.Date(2024, time.March, 15, 1, 2, 3, 0, time.Local)

	w := Compute(selected, today, 1, 5, nil)

	require.Len(t, w.Days, 2)
	assert.Equal(t, "2024-03-15", w.Days[1].Key)
	assert.True(t, w.Days[1].Selected)
}

func TestCompute_DayNavigationPaths(t *testing.T) {
	today := day(2024, time.March, 5)

	w := Compute(today, today, 1, 0, nil)

	require.Len(t, w.Days, 2)
	assert.Equal(t, "/2024/march/04", w.Days[0].Path)
	assert.Equal(t, "/2024/march/05", w.Days[1].Path)
}
