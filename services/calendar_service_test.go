package services

import (
	"testing"
	"time"

	"inkstudio-backend/models"
)

func TestGroupByDay(t *testing.T) {
	day1 := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	end := day1.AddDate(0, 0, 7)

	appointments := []models.Appointment{
		{ServiceName: "late", Status: models.StatusConfirmed, StartTime: day1.Add(17 * time.Hour)},
		{ServiceName: "early", Status: models.StatusCompleted, StartTime: day1.Add(9 * time.Hour)},
		{ServiceName: "next day", Status: models.StatusConfirmed, StartTime: day2.Add(11 * time.Hour)},
		{ServiceName: "pending hidden", Status: models.StatusPending, StartTime: day1.Add(10 * time.Hour)},
		{ServiceName: "cancelled hidden", Status: models.StatusCancelled, StartTime: day1.Add(12 * time.Hour)},
		{ServiceName: "rejected hidden", Status: models.StatusRejected, StartTime: day2.Add(12 * time.Hour)},
		{ServiceName: "declined hidden", Status: models.StatusDeclined, StartTime: day2.Add(13 * time.Hour)},
	}

	days := GroupByDay(appointments, day1, end)

	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Date != "2025-04-07" || days[1].Date != "2025-04-08" {
		t.Fatalf("days out of order: %s, %s", days[0].Date, days[1].Date)
	}
	if len(days[0].Appointments) != 2 {
		t.Fatalf("day 1: expected 2 visible appointments, got %d", len(days[0].Appointments))
	}
	// Within a day the earliest appointment comes first
	if days[0].Appointments[0].ServiceName != "early" || days[0].Appointments[1].ServiceName != "late" {
		t.Errorf("day 1 not sorted by start time: %s, %s",
			days[0].Appointments[0].ServiceName, days[0].Appointments[1].ServiceName)
	}
	if len(days[1].Appointments) != 1 || days[1].Appointments[0].ServiceName != "next day" {
		t.Errorf("day 2 contents wrong")
	}
}

func TestGroupByDayClampsToInterval(t *testing.T) {
	start := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	// A session that began the evening before but runs into the interval
	// must appear on the interval's first day, not on a day outside it.
	appointments := []models.Appointment{
		{
			ServiceName: "overnight",
			Status:      models.StatusConfirmed,
			StartTime:   start.Add(-2 * time.Hour),
			EndTime:     start.Add(3 * time.Hour),
		},
		{
			ServiceName: "regular",
			Status:      models.StatusConfirmed,
			StartTime:   start.Add(10 * time.Hour),
			EndTime:     start.Add(11 * time.Hour),
		},
	}

	days := GroupByDay(appointments, start, end)

	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if days[0].Date != "2025-04-07" {
		t.Fatalf("overnight appointment bucketed outside the interval: %s", days[0].Date)
	}
	if len(days[0].Appointments) != 2 {
		t.Fatalf("expected 2 appointments on the first day, got %d", len(days[0].Appointments))
	}
	if days[0].Appointments[0].ServiceName != "overnight" {
		t.Errorf("overnight appointment should sort first, got %s", days[0].Appointments[0].ServiceName)
	}
}

func TestGroupByDayEmpty(t *testing.T) {
	start := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	if got := GroupByDay(nil, start, end); len(got) != 0 {
		t.Errorf("expected empty result for nil input, got %d days", len(got))
	}

	hidden := []models.Appointment{
		{Status: models.StatusPending, StartTime: start.Add(time.Hour)},
	}
	if got := GroupByDay(hidden, start, end); len(got) != 0 {
		t.Errorf("pending-only input should produce no days, got %d", len(got))
	}
}
