package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dates(t *testing.T, in []time.Time) []string {
	t.Helper()
	out := make([]string, len(in))
	for i, d := range in {
		out[i] = FormatDate(d)
	}
	return out
}

func TestCopyTargetsWeekdaysApril2024(t *testing.T) {
	source := Date(2024, time.April, 5)
	got := CopyTargets(2024, time.April, source, ModeWeekdays, nil)

	want := []string{
		"2024-04-01", "2024-04-02", "2024-04-03", "2024-04-04",
		"2024-04-08", "2024-04-09", "2024-04-10", "2024-04-11", "2024-04-12",
		"2024-04-15", "2024-04-16", "2024-04-17", "2024-04-18", "2024-04-19",
		"2024-04-22", "2024-04-23", "2024-04-24", "2024-04-25", "2024-04-26",
		"2024-04-29", "2024-04-30",
	}
	assert.Equal(t, want, dates(t, got))
	for _, d := range got {
		assert.NotEqual(t, time.Saturday, d.Weekday())
		assert.NotEqual(t, time.Sunday, d.Weekday())
	}
}

func TestCopyTargetsWeekends(t *testing.T) {
	source := Date(2024, time.April, 6)
	got := CopyTargets(2024, time.April, source, ModeWeekends, nil)
	assert.Equal(t, []string{
		"2024-04-07", "2024-04-13", "2024-04-14", "2024-04-20", "2024-04-21", "2024-04-27", "2024-04-28",
	}, dates(t, got))
}

func TestCopyTargetsExplicit(t *testing.T) {
	source := Date(2024, time.April, 5)
	picked := []time.Time{
		Date(2024, time.April, 20),
		Date(2024, time.April, 5),
		time.Date(2024, time.April, 9, 14, 30, 0, 0, time.UTC),
		Date(2024, time.April, 20),
	}
	got := CopyTargets(2024, time.April, source, ModeExplicit, picked)
	assert.Equal(t, []string{"2024-04-09", "2024-04-20"}, dates(t, got))

	outside := []time.Time{Date(2024, time.March, 31), Date(2024, time.April, 30), Date(2025, time.April, 9), Date(2024, time.May, 1)}
	assert.Equal(t, []string{"2024-04-30"}, dates(t, CopyTargets(2024, time.April, source, ModeExplicit, outside)))

	assert.Empty(t, CopyTargets(2024, time.April, source, ModeExplicit, nil))
}

func TestParseCopyMode(t *testing.T) {
	m, err := ParseCopyMode("Weekdays")
	require.NoError(t, err)
	assert.Equal(t, ModeWeekdays, m)

	m, err = ParseCopyMode("weekends")
	require.NoError(t, err)
	assert.Equal(t, ModeWeekends, m)

	_, err = ParseCopyMode("fortnight")
	assert.Error(t, err)
}

func TestMonthGridIsSundayFirst(t *testing.T) {
	grid := MonthGrid(2024, time.April)
	require.Len(t, grid, 5)

	// April 1st 2024 is a Monday.
	assert.True(t, grid[0][0].IsZero())
	assert.Equal(t, "2024-04-01", FormatDate(grid[0][1]))
	assert.Equal(t, "2024-04-06", FormatDate(grid[0][6]))
	assert.Equal(t, "2024-04-30", FormatDate(grid[4][2]))
	assert.True(t, grid[4][3].IsZero())

	// September 2024 starts on a Sunday.
	sep := MonthGrid(2024, time.September)
	assert.Equal(t, "2024-09-01", FormatDate(sep[0][0]))

	feb := MonthGrid(2024, time.February)
	last := feb[len(feb)-1]
	var lastDay time.Time
	for _, d := range last {
		if !d.IsZero() {
			lastDay = d
		}
	}
	assert.Equal(t, 29, lastDay.Day())
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, daysIn(time.February, 2000))
	assert.Equal(t, 28, daysIn(time.February, 1900))
	assert.Equal(t, 28, daysIn(time.February, 2023))
	assert.Equal(t, 30, daysIn(time.November, 2023))
	assert.Equal(t, 31, daysIn(time.December, 2023))
}

func TestFormatClock(t *testing.T) {
	tests := map[string]string{
		"13:30":    "01:30 PM",
		"00:15":    "12:15 AM",
		"12:00":    "12:00 PM",
		"09:00":    "09:00 AM",
		"23:45":    "11:45 PM",
		"17:00:00": "05:00 PM",
		"noon":     "noon",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatClock(in), in)
	}
}

func TestStepMinuteAndHour(t *testing.T) {
	assert.Equal(t, 15, StepMinute(0, true))
	assert.Equal(t, 0, StepMinute(45, true))
	assert.Equal(t, 45, StepMinute(0, false))
	assert.Equal(t, 45, StepMinute(10, false))
	assert.Equal(t, 15, StepMinute(30, false))

	assert.Equal(t, 23, StepHour(23, true))
	assert.Equal(t, 0, StepHour(0, false))
	assert.Equal(t, 10, StepHour(9, true))
}

func TestParseClock(t *testing.T) {
	v, err := ParseClock("9:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", v)

	v, err = ParseClock("17:30:00")
	require.NoError(t, err)
	assert.Equal(t, "17:30", v)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
	_, err = ParseClock("")
	assert.Error(t, err)
}
