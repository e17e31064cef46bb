// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// BeginningOfWeek returns midnight of the Monday of t's week.
func BeginningOfWeek(t time.Time) time.Time {
	t = BeginningOfDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the preceding Monday
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

func BeginningOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

func BeginningOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// NextAnniversary returns the next calendar occurrence of date's month and
// day relative to now, today counting as an occurrence. A date late in the
// year whose anniversary already passed rolls over into the next year.
func NextAnniversary(now, date time.Time) time.Time {
	next := time.Date(now.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if next.Before(BeginningOfDay(now)) {
		next = next.AddDate(1, 0, 0)
	}
	return next
}

// ViewInterval computes the half-open [start, end) interval enclosing ref for
// a calendar view granularity: "year", "month", "week" or "day".
func ViewInterval(view string, ref time.Time) (time.Time, time.Time, error) {
	switch view {
	case "year":
		start := BeginningOfYear(ref)
		return start, start.AddDate(1, 0, 0), nil
	case "month":
		start := BeginningOfMonth(ref)
		return start, start.AddDate(0, 1, 0), nil
	case "week":
		start := BeginningOfWeek(ref)
		return start, start.AddDate(0, 0, 7), nil
	case "day":
		start := BeginningOfDay(ref)
		return start, start.AddDate(0, 0, 1), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("invalid calendar view: %s", view)
	}
}

// IntervalsOverlap reports whether the half-open intervals [aStart, aEnd)
// and [bStart, bEnd) intersect.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
