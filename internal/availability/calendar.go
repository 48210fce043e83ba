package availability

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"profix/internal/models"
)

// Date returns midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(models.DateLayout, strings.TrimSpace(s))
}

func FormatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MonthGrid lays out a month in Sunday-first weeks. Cells outside the month
// are zero times.
func MonthGrid(year int, month time.Month) [][]time.Time {
	first := Date(year, month, 1)
	offset := int(first.Weekday())
	days := daysIn(month, year)

	weeks := make([][]time.Time, 0, 6)
	day := 1
	for day <= days {
		week := make([]time.Time, 7)
		for col := 0; col < 7; col++ {
			if len(weeks) == 0 && col < offset {
				continue
			}
			if day > days {
				continue
			}
			week[col] = Date(year, month, day)
			day++
		}
		weeks = append(weeks, week)
	}
	return weeks
}

func daysIn(m time.Month, year int) int {
	switch m {
	case time.February:
		if (year%4 == 0 && year%100 != 0) || year%400 == 0 {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// CopyMode selects how copy targets are chosen.
type CopyMode int

const (
	ModeExplicit CopyMode = iota
	ModeWeekdays
	ModeWeekends
)

func (m CopyMode) String() string {
	switch m {
	case ModeWeekdays:
		return "weekdays"
	case ModeWeekends:
		return "weekends"
	default:
		return "explicit"
	}
}

// ParseCopyMode accepts "weekdays", "weekends" or "explicit".
func ParseCopyMode(s string) (CopyMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weekdays":
		return ModeWeekdays, nil
	case "weekends":
		return ModeWeekends, nil
	case "explicit", "":
		return ModeExplicit, nil
	}
	return ModeExplicit, fmt.Errorf("unknown copy mode %q", s)
}

// CopyTargets computes the dates the source day's settings are copied to,
// sorted ascending. The source date is never a target. Weekdays are Monday
// to Friday and weekends Saturday and Sunday of the given month; explicit
// picks outside the month are dropped and the rest de-duplicated.
func CopyTargets(year int, month time.Month, source time.Time, mode CopyMode, explicit []time.Time) []time.Time {
	var out []time.Time
	switch mode {
	case ModeWeekdays, ModeWeekends:
		for d := 1; d <= daysIn(month, year); d++ {
			date := Date(year, month, d)
			if sameDay(date, source) {
				continue
			}
			weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
			if weekend == (mode == ModeWeekends) {
				out = append(out, date)
			}
		}
	default:
		seen := make(map[string]bool, len(explicit))
		for _, d := range explicit {
			date := Date(d.Year(), d.Month(), d.Day())
			key := FormatDate(date)
			if date.Year() != year || date.Month() != month || sameDay(date, source) || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, date)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	}
	return out
}

// FormatClock renders "13:30" as "01:30 PM". Unparseable input is returned
// unchanged.
func FormatClock(v string) string {
	parts := strings.Split(v, ":")
	if len(parts) < 2 {
		return v
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return v
	}
	amPm := "AM"
	if hour >= 12 {
		amPm = "PM"
	}
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour > 12:
		display = hour - 12
	}
	return fmt.Sprintf("%02d:%s %s", display, parts[1], amPm)
}

// StepMinute moves a time picker's minute by one 15-minute step, wrapping
// around the hour.
func StepMinute(minute int, up bool) int {
	if up {
		return (minute + 15) % 60
	}
	if minute >= 15 {
		return minute - 15
	}
	return 45
}

// StepHour moves the hour by one, clamped to 0..23.
func StepHour(hour int, up bool) int {
	switch {
	case up && hour < 23:
		return hour + 1
	case !up && hour > 0:
		return hour - 1
	}
	return hour
}

// ParseClock validates an "HH:MM" time.
func ParseClock(v string) (string, error) {
	t, err := time.Parse(models.ClockLayout, strings.TrimSpace(normalizeClock(v, "")))
	if err != nil {
		return "", fmt.Errorf("invalid time %q, want HH:MM", v)
	}
	return t.Format(models.ClockLayout), nil
}
