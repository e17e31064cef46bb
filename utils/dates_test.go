package utils

import (
	"testing"
	"time"
)

func TestViewInterval(t *testing.T) {
	// Wednesday mid-month, mid-afternoon
	ref := time.Date(2025, 6, 18, 15, 45, 12, 0, time.UTC)

	tests := []struct {
		view      string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"day", time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC)},
		{"week", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC)},
		{"month", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
		{"year", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			start, end, err := ViewInterval(tt.view, ref)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}

	if _, _, err := ViewInterval("fortnight", ref); err == nil {
		t.Error("expected error for unknown view")
	}
}

func TestBeginningOfWeekSunday(t *testing.T) {
	// Sunday belongs to the week starting the previous Monday
	sunday := time.Date(2025, 6, 22, 23, 59, 0, 0, time.UTC)
	want := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	if got := BeginningOfWeek(sunday); !got.Equal(want) {
		t.Errorf("BeginningOfWeek(sunday) = %v, want %v", got, want)
	}

	monday := time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)
	if got := BeginningOfWeek(monday); !got.Equal(want) {
		t.Errorf("BeginningOfWeek(monday) = %v, want %v", got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			"same day different hours",
			time.Date(2025, 6, 18, 1, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 18, 23, 0, 0, 0, time.UTC),
			0,
		},
		{
			"next day",
			time.Date(2025, 6, 18, 23, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 19, 1, 0, 0, 0, time.UTC),
			1,
		},
		{
			"a week apart",
			time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 25, 12, 0, 0, 0, time.UTC),
			7,
		},
		{
			"negative when end precedes start",
			time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC),
			-2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextAnniversary(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		date time.Time
		want time.Time
	}{
		{
			"upcoming this year",
			time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC),
			time.Date(1990, 8, 3, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			"today counts",
			time.Date(2025, 6, 18, 23, 0, 0, 0, time.UTC),
			time.Date(1990, 6, 18, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			"already passed rolls to next year",
			time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC),
			time.Date(1990, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"january birthday visible from late december",
			time.Date(2025, 12, 29, 12, 0, 0, 0, time.UTC),
			time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextAnniversary(tt.now, tt.date); !got.Equal(tt.want) {
				t.Errorf("NextAnniversary() = %v, want %v", got, tt.want)
			}
		})
	}

	// The year-end wrap keeps the birthday inside the dashboard's 7-day window
	now := time.Date(2025, 12, 29, 12, 0, 0, 0, time.UTC)
	birthday := time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC)
	if days := DaysBetween(now, NextAnniversary(now, birthday)); days != 4 {
		t.Errorf("days until wrapped birthday = %d, want 4", days)
	}
}

func TestIntervalsOverlap(t *testing.T) {
	base := time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC)
	h := time.Hour

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical", base, base.Add(h), base, base.Add(h), true},
		{"partial overlap", base, base.Add(h), base.Add(30 * time.Minute), base.Add(2 * h), true},
		{"adjacent intervals do not overlap", base, base.Add(h), base.Add(h), base.Add(2 * h), false},
		{"disjoint", base, base.Add(h), base.Add(3 * h), base.Add(4 * h), false},
		{"contained", base, base.Add(4 * h), base.Add(h), base.Add(2 * h), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntervalsOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("IntervalsOverlap() = %v, want %v", got, tt.want)
			}
		})
	}
}
