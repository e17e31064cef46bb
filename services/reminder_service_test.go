package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"inkstudio-backend/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestReminderWindows(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	windows := ReminderWindows(now)

	if len(windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(windows))
	}

	w7d, w24h := windows[0], windows[1]

	if w7d.Kind != Reminder7d || w24h.Kind != Reminder24h {
		t.Fatalf("unexpected window kinds: %s, %s", w7d.Kind, w24h.Kind)
	}
	if got := w7d.Start; !got.Equal(now.Add(7 * 24 * time.Hour)) {
		t.Errorf("7d window start = %v", got)
	}
	if got := w7d.End.Sub(w7d.Start); got != 2*time.Hour {
		t.Errorf("7d window length = %v, want 2h", got)
	}
	if got := w24h.Start; !got.Equal(now.Add(23 * time.Hour)) {
		t.Errorf("24h window start = %v", got)
	}
	if got := w24h.End.Sub(w24h.Start); got != 2*time.Hour {
		t.Errorf("24h window length = %v, want 2h", got)
	}

	// The windows must never intersect, otherwise an appointment could
	// receive both reminders in one run.
	if w24h.End.After(w7d.Start) && w7d.End.After(w24h.Start) {
		t.Error("reminder windows overlap")
	}
}

func TestReminderDue(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	windows := ReminderWindows(now)
	w7d, w24h := windows[0], windows[1]

	tests := []struct {
		name   string
		status string
		start  time.Time
		sent7d bool
		sent24 bool
		window ReminderWindow
		want   bool
	}{
		{
			name:   "pending inside 7d window",
			status: models.StatusPending,
			start:  w7d.Start.Add(30 * time.Minute),
			window: w7d,
			want:   true,
		},
		{
			name:   "confirmed inside 24h window",
			status: models.StatusConfirmed,
			start:  w24h.Start.Add(time.Hour),
			window: w24h,
			want:   true,
		},
		{
			name:   "exactly at window start is included",
			status: models.StatusConfirmed,
			start:  w7d.Start,
			window: w7d,
			want:   true,
		},
		{
			name:   "exactly at window end is excluded",
			status: models.StatusConfirmed,
			start:  w7d.End,
			window: w7d,
			want:   false,
		},
		{
			name:   "before window start",
			status: models.StatusConfirmed,
			start:  w24h.Start.Add(-time.Minute),
			window: w24h,
			want:   false,
		},
		{
			name:   "cancelled appointment never due",
			status: models.StatusCancelled,
			start:  w7d.Start.Add(time.Hour),
			window: w7d,
			want:   false,
		},
		{
			name:   "completed appointment never due",
			status: models.StatusCompleted,
			start:  w24h.Start.Add(time.Hour),
			window: w24h,
			want:   false,
		},
		{
			name:   "7d flag already set",
			status: models.StatusConfirmed,
			start:  w7d.Start.Add(time.Hour),
			sent7d: true,
			window: w7d,
			want:   false,
		},
		{
			name:   "24h flag already set",
			status: models.StatusPending,
			start:  w24h.Start.Add(time.Hour),
			sent24: true,
			window: w24h,
			want:   false,
		},
		{
			name:   "7d flag does not block 24h window",
			status: models.StatusConfirmed,
			start:  w24h.Start.Add(time.Hour),
			sent7d: true,
			window: w24h,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := models.Appointment{
				Status:          tt.status,
				StartTime:       tt.start,
				Reminder7dSent:  tt.sent7d,
				Reminder24hSent: tt.sent24,
			}
			if got := ReminderDue(appt, tt.window); got != tt.want {
				t.Errorf("ReminderDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShouldSend(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	w24h := ReminderWindows(now)[1]

	due := models.Appointment{
		Status:    models.StatusConfirmed,
		StartTime: w24h.Start.Add(time.Hour),
	}

	withEmail := due
	withEmail.Client = models.Client{Email: "marta@example.com"}
	if !ShouldSend(withEmail, w24h) {
		t.Error("due appointment with client email should be sent")
	}

	// No client email means no send attempt, and because dispatch is the
	// only flag writer, no flag mutation either.
	if ShouldSend(due, w24h) {
		t.Error("appointment without client email must not be sent")
	}

	notDue := withEmail
	notDue.Reminder24hSent = true
	if ShouldSend(notDue, w24h) {
		t.Error("appointment with the flag already set must not be sent")
	}
}

func TestProcessStudioAutomationGate(t *testing.T) {
	// The gate is checked before any query, so db and sender stay nil.
	svc := NewReminderService(nil, nil)
	now := time.Now()

	tests := []struct {
		name   string
		studio models.Studio
	}{
		{"email disabled", models.Studio{EmailEnabled: false, AppointmentReminders: true}},
		{"reminders disabled", models.Studio{EmailEnabled: true, AppointmentReminders: false}},
		{"both disabled", models.Studio{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.processStudio(tt.studio, now); len(got) != 0 {
				t.Errorf("disabled studio processed %d reminders", len(got))
			}
		})
	}

	enabled := models.Studio{EmailEnabled: true, AppointmentReminders: true}
	if !enabled.RemindersEnabled() {
		t.Error("studio with both switches on should pass the gate")
	}
}

type stubSender struct {
	sent []EmailMessage
	err  error
}

func (s *stubSender) Send(msg EmailMessage) error {
	s.sent = append(s.sent, msg)
	return s.err
}

func newDispatchTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("gorm.Open failed: %v", err)
	}
	return gdb, mock
}

func TestDispatchSetsFlagEvenWhenSendFails(t *testing.T) {
	gdb, mock := newDispatchTestDB(t)

	// The flag update runs after the failed attempt, then the failure is
	// recorded in the message log.
	mock.ExpectExec(`UPDATE "appointments" SET "reminder_24h_sent"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "message_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))

	sender := &stubSender{err: errors.New("connection refused")}
	svc := NewReminderService(gdb, sender)

	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	w24h := ReminderWindows(now)[1]
	appt := models.Appointment{
		ID:          uuid.New(),
		ClientID:    uuid.New(),
		ServiceName: "Blackwork sleeve session",
		Status:      models.StatusConfirmed,
		StartTime:   w24h.Start.Add(time.Hour),
		Client:      models.Client{Email: "marta@example.com"},
	}
	studio := models.Studio{ID: uuid.New(), Name: "Iron Rose Tattoo"}

	result := svc.dispatch(studio, appt, w24h)

	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 send attempt, got %d", len(sender.sent))
	}
	// The processed payload reports entries uniformly; the message log
	// carries the real outcome.
	if result.Status != "sent" {
		t.Errorf("result status = %q", result.Status)
	}
	if result.ID != appt.ID || result.Type != Reminder24h {
		t.Errorf("result = %+v", result)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("flag update or log insert missing: %v", err)
	}
}

func TestDispatchSetsFlagAfterSuccessfulSend(t *testing.T) {
	gdb, mock := newDispatchTestDB(t)

	mock.ExpectExec(`UPDATE "appointments" SET "reminder_7d_sent"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "message_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))

	sender := &stubSender{}
	svc := NewReminderService(gdb, sender)

	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	w7d := ReminderWindows(now)[0]
	appt := models.Appointment{
		ID:        uuid.New(),
		ClientID:  uuid.New(),
		Status:    models.StatusPending,
		StartTime: w7d.Start.Add(time.Hour),
		Client:    models.Client{Email: "marta@example.com"},
	}

	result := svc.dispatch(models.Studio{ID: uuid.New(), Name: "Iron Rose Tattoo"}, appt, w7d)

	if result.Status != "sent" || result.Email != "marta@example.com" {
		t.Errorf("result = %+v", result)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("flag update or log insert missing: %v", err)
	}
}

func TestBuildReminderEmail(t *testing.T) {
	studio := models.Studio{
		Name:       "Iron Rose Tattoo",
		Address:    "12 Needle St",
		Phone:      "+34600111222",
		SenderName: "Iron Rose",
		ReplyTo:    "hello@ironrose.example",
	}
	appt := models.Appointment{
		ServiceName: "Blackwork sleeve session",
		StartTime:   time.Date(2025, 3, 17, 16, 30, 0, 0, time.UTC),
		Client: models.Client{
			Name:  "Marta",
			Email: "marta@example.com",
		},
	}

	msg := BuildReminderEmail(studio, appt, Reminder24h)

	if msg.To != "marta@example.com" {
		t.Errorf("To = %q", msg.To)
	}
	if msg.SenderName != "Iron Rose" || msg.ReplyTo != "hello@ironrose.example" {
		t.Errorf("sender identity = %q / %q", msg.SenderName, msg.ReplyTo)
	}
	if !strings.Contains(msg.Subject, "Blackwork sleeve session") || !strings.Contains(msg.Subject, "Iron Rose Tattoo") {
		t.Errorf("subject missing service or studio: %q", msg.Subject)
	}
	if !strings.Contains(msg.Text, "tomorrow") {
		t.Errorf("24h body should mention tomorrow: %q", msg.Text)
	}
	if !strings.Contains(msg.Text, "Marta") {
		t.Errorf("body missing client name: %q", msg.Text)
	}
	if !strings.Contains(msg.HTML, "Blackwork sleeve session") {
		t.Errorf("html body missing service name")
	}

	weekMsg := BuildReminderEmail(studio, appt, Reminder7d)
	if !strings.Contains(weekMsg.Text, "one week") {
		t.Errorf("7d body should mention one week: %q", weekMsg.Text)
	}
}
