// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"time"

	"inkstudio-backend/models"
	"inkstudio-backend/monitoring"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Reminder kinds, matching the two look-ahead windows.
const (
	Reminder7d  = "7d"
	Reminder24h = "24h"
)

// ReminderWindow is a fixed look-ahead interval relative to the dispatcher's
// invocation instant. Appointments whose start time falls in [Start, End)
// are due for the window's reminder.
type ReminderWindow struct {
	Kind  string
	Start time.Time
	End   time.Time
}

// ReminderWindows returns the two dispatch windows for an invocation at now:
// [now+7d, now+7d+2h) and [now+23h, now+25h). They never overlap.
func ReminderWindows(now time.Time) []ReminderWindow {
	return []ReminderWindow{
		{Kind: Reminder7d, Start: now.Add(7 * 24 * time.Hour), End: now.Add(7*24*time.Hour + 2*time.Hour)},
		{Kind: Reminder24h, Start: now.Add(23 * time.Hour), End: now.Add(25 * time.Hour)},
	}
}

// ReminderDue reports whether the appointment qualifies for the window:
// start time inside the window, status pending or confirmed, and the
// window's idempotency flag still unset.
func ReminderDue(appt models.Appointment, w ReminderWindow) bool {
	if appt.Status != models.StatusPending && appt.Status != models.StatusConfirmed {
		return false
	}
	switch w.Kind {
	case Reminder7d:
		if appt.Reminder7dSent {
			return false
		}
	case Reminder24h:
		if appt.Reminder24hSent {
			return false
		}
	default:
		return false
	}
	return !appt.StartTime.Before(w.Start) && appt.StartTime.Before(w.End)
}

// ShouldSend reports whether the dispatcher attempts a send for the
// appointment in this window: due, with a client email to deliver to.
// Appointments filtered out here never reach dispatch, so their
// idempotency flags stay untouched.
func ShouldSend(appt models.Appointment, w ReminderWindow) bool {
	return ReminderDue(appt, w) && appt.Client.Email != ""
}

// ProcessedReminder is one entry of the dispatcher's result payload.
type ProcessedReminder struct {
	ID     uuid.UUID `json:"id"`
	Type   string    `json:"type"`
	Status string    `json:"status"`
	Email  string    `json:"email"`
}

type ReminderService struct {
	db     *gorm.DB
	sender EmailSender
}

func NewReminderService(db *gorm.DB, sender EmailSender) *ReminderService {
	return &ReminderService{db: db, sender: sender}
}

// StartScheduler runs the dispatcher hourly so every appointment passes
// through each two-hour window exactly once.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 * * * *", func() {
		if _, err := s.Run(time.Now()); err != nil {
			log.Printf("Reminder run failed: %v", err)
		}
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

// Run executes one single-threaded, run-to-completion dispatcher invocation.
func (s *ReminderService) Run(now time.Time) ([]ProcessedReminder, error) {
	log.Println("Starting reminder dispatch...")

	var studios []models.Studio
	if err := s.db.Find(&studios).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch studios: %w", err)
	}

	processed := []ProcessedReminder{}
	for _, studio := range studios {
		processed = append(processed, s.processStudio(studio, now)...)
	}

	log.Printf("Reminder dispatch completed, %d sent", len(processed))
	return processed, nil
}

func (s *ReminderService) processStudio(studio models.Studio, now time.Time) []ProcessedReminder {
	// Tenant automation settings gate the whole studio
	if !studio.RemindersEnabled() {
		return nil
	}

	var processed []ProcessedReminder
	for _, window := range ReminderWindows(now) {
		appointments, err := s.appointmentsInWindow(studio.ID, window)
		if err != nil {
			// A failed window query skips only this window; the other still runs
			log.Printf("Studio %s: failed to query %s window: %v", studio.ID, window.Kind, err)
			continue
		}

		for _, appt := range appointments {
			if !ShouldSend(appt, window) {
				continue
			}
			processed = append(processed, s.dispatch(studio, appt, window))
		}
	}
	return processed
}

func (s *ReminderService) appointmentsInWindow(studioID uuid.UUID, w ReminderWindow) ([]models.Appointment, error) {
	flagColumn := "reminder_7d_sent"
	if w.Kind == Reminder24h {
		flagColumn = "reminder_24h_sent"
	}

	var appointments []models.Appointment
	err := s.db.Preload("Client").
		Where("studio_id = ? AND start_time >= ? AND start_time < ?", studioID, w.Start, w.End).
		Where("status IN ?", []string{models.StatusPending, models.StatusConfirmed}).
		Where(flagColumn+" = ?", false).
		Find(&appointments).Error
	return appointments, err
}

func (s *ReminderService) dispatch(studio models.Studio, appt models.Appointment, w ReminderWindow) ProcessedReminder {
	msg := BuildReminderEmail(studio, appt, w.Kind)

	sendErr := s.sender.Send(msg)

	status := "sent"
	errorMsg := ""
	if sendErr != nil {
		log.Printf("Failed to send %s reminder for appointment %s: %v", w.Kind, appt.ID, sendErr)
		status = "failed"
		errorMsg = sendErr.Error()
	}
	monitoring.RemindersSent.WithLabelValues(w.Kind, status).Inc()

	// The flag is set after the attempt regardless of the send outcome, so a
	// failed send is never retried on a later run.
	flagColumn := "reminder_7d_sent"
	if w.Kind == Reminder24h {
		flagColumn = "reminder_24h_sent"
	}
	if err := s.db.Model(&models.Appointment{}).Where("id = ?", appt.ID).
		Update(flagColumn, true).Error; err != nil {
		log.Printf("Failed to mark %s reminder sent for appointment %s: %v", w.Kind, appt.ID, err)
	}

	logEntry := models.MessageLog{
		StudioID:      studio.ID,
		ClientID:      &appt.ClientID,
		AppointmentID: &appt.ID,
		Type:          "reminder_" + w.Kind,
		Recipient:     appt.Client.Email,
		Message:       msg.Text,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       "email",
		SentAt:        time.Now(),
	}
	if err := s.db.Create(&logEntry).Error; err != nil {
		log.Printf("Failed to log reminder for appointment %s: %v", appt.ID, err)
	}

	// Result entries report "sent" either way; the dispatcher does not
	// distinguish dispatch success from failure at this level.
	return ProcessedReminder{
		ID:     appt.ID,
		Type:   w.Kind,
		Status: "sent",
		Email:  appt.Client.Email,
	}
}

// BuildReminderEmail renders the plain-text and HTML reminder bodies embedding
// the studio identity and the appointment details.
func BuildReminderEmail(studio models.Studio, appt models.Appointment, kind string) EmailMessage {
	when := appt.StartTime.Format("Monday, 2 January 2006 at 15:04")

	lead := "Your appointment is in one week."
	if kind == Reminder24h {
		lead = "Your appointment is tomorrow."
	}

	subject := fmt.Sprintf("Reminder: %s at %s", appt.ServiceName, studio.Name)

	text := fmt.Sprintf(
		"Hi %s,\n\n%s\n\nService: %s\nWhen: %s\nWhere: %s, %s\n\nQuestions? Call us at %s or reply to this email.\n\n%s",
		appt.Client.Name, lead, appt.ServiceName, when, studio.Name, studio.Address, studio.Phone, studio.Name,
	)

	html := fmt.Sprintf(
		`<p>Hi %s,</p><p>%s</p><ul><li><b>Service:</b> %s</li><li><b>When:</b> %s</li><li><b>Where:</b> %s, %s</li></ul><p>Questions? Call us at %s or reply to this email.</p><p>%s</p>`,
		appt.Client.Name, lead, appt.ServiceName, when, studio.Name, studio.Address, studio.Phone, studio.Name,
	)

	return EmailMessage{
		To:         appt.Client.Email,
		Subject:    subject,
		SenderName: studio.SenderName,
		ReplyTo:    studio.ReplyTo,
		Text:       text,
		HTML:       html,
	}
}
