package models

import (
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusDeclined, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusRejected, StatusPending, false},
		{StatusDeclined, StatusConfirmed, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRejected, StatusDeclined} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%s) = false", s)
		}
	}
	for _, s := range []string{"", "done", "Pending", "archived"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true", s)
		}
	}
}

func TestTriggersReviewRequest(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{StatusConfirmed, StatusCompleted, true},
		{StatusPending, StatusCompleted, true},
		{StatusCancelled, StatusCompleted, true},
		{StatusCompleted, StatusCompleted, false},
		{StatusConfirmed, StatusCancelled, false},
		{StatusCompleted, StatusCancelled, false},
	}

	for _, tt := range tests {
		if got := TriggersReviewRequest(tt.from, tt.to); got != tt.want {
			t.Errorf("TriggersReviewRequest(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestIsVisibleStatus(t *testing.T) {
	visible := map[string]bool{
		StatusConfirmed: true,
		StatusCompleted: true,
		StatusPending:   false,
		StatusCancelled: false,
		StatusRejected:  false,
		StatusDeclined:  false,
	}
	for status, want := range visible {
		if got := IsVisibleStatus(status); got != want {
			t.Errorf("IsVisibleStatus(%s) = %v, want %v", status, got, want)
		}
	}
}

func TestAppointmentOverlaps(t *testing.T) {
	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	appt := Appointment{
		StartTime: base,
		EndTime:   base.Add(time.Hour),
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"fully inside", base.Add(15 * time.Minute), base.Add(30 * time.Minute), true},
		{"straddles start", base.Add(-30 * time.Minute), base.Add(30 * time.Minute), true},
		{"straddles end", base.Add(30 * time.Minute), base.Add(90 * time.Minute), true},
		{"covers entirely", base.Add(-time.Hour), base.Add(2 * time.Hour), true},
		{"touches at end", base.Add(time.Hour), base.Add(2 * time.Hour), false},
		{"touches at start", base.Add(-time.Hour), base, false},
		{"before", base.Add(-2 * time.Hour), base.Add(-time.Hour), false},
		{"after", base.Add(2 * time.Hour), base.Add(3 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := appt.Overlaps(tt.start, tt.end); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}
