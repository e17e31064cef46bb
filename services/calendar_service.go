package services

import (
	"sort"
	"time"

	"inkstudio-backend/models"
)

// CalendarDay groups the appointments of one day, ordered by start time.
type CalendarDay struct {
	Date         string               `json:"date"` // YYYY-MM-DD
	Appointments []models.Appointment `json:"appointments"`
}

// GroupByDay buckets visible appointments of the half-open [start, end)
// interval by calendar day and sorts both the days and each day's
// appointments by start time. Non-visible statuses (pending, cancelled,
// rejected, declined) are excluded from the grid. An appointment that
// started before the interval but overlaps it lands on the first day.
func GroupByDay(appointments []models.Appointment, start, end time.Time) []CalendarDay {
	buckets := make(map[string][]models.Appointment)
	for _, appt := range appointments {
		if !models.IsVisibleStatus(appt.Status) {
			continue
		}
		bucketTime := appt.StartTime
		if bucketTime.Before(start) {
			bucketTime = start
		}
		day := bucketTime.Format("2006-01-02")
		buckets[day] = append(buckets[day], appt)
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]CalendarDay, 0, len(days))
	for _, day := range days {
		appts := buckets[day]
		sort.Slice(appts, func(i, j int) bool {
			return appts[i].StartTime.Before(appts[j].StartTime)
		})
		result = append(result, CalendarDay{Date: day, Appointments: appts})
	}
	return result
}
