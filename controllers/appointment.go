// controllers/appointment.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"inkstudio-backend/config"
	"inkstudio-backend/models"
	"inkstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAppointmentInput defines the expected JSON structure for booking
type CreateAppointmentInput struct {
	ArtistID    uuid.UUID `json:"artistId" binding:"required"`
	ClientID    uuid.UUID `json:"clientId" binding:"required"`
	ServiceName string    `json:"serviceName" binding:"required"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	Status      string    `json:"status" binding:"omitempty,oneof=pending confirmed"`
	Notes       string    `json:"notes"`
	Price       float64   `json:"price" binding:"min=0"`
}

// UpdateAppointmentInput defines the expected JSON structure for editing
type UpdateAppointmentInput struct {
	ArtistID    *uuid.UUID `json:"artistId"`
	ServiceName *string    `json:"serviceName"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Notes       *string    `json:"notes"`
	Price       *float64   `json:"price" binding:"omitempty,min=0"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled rejected declined"`
}

// hasArtistConflict checks the new interval against the artist's visible
// appointments, excluding the appointment being rescheduled. The SQL range
// filter narrows the candidates; the half-open Overlaps predicate decides.
func hasArtistConflict(studioUUID, artistUUID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (bool, error) {
	query := config.DB.
		Where("studio_id = ? AND artist_id = ?", studioUUID, artistUUID).
		Where("status IN ?", models.VisibleStatuses()).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var candidates []models.Appointment
	if err := query.Find(&candidates).Error; err != nil {
		return false, err
	}
	for i := range candidates {
		if candidates[i].Overlaps(start, end) {
			return true, nil
		}
	}
	return false, nil
}

// CreateAppointment books a new appointment for the studio
func CreateAppointment(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}

	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !input.EndTime.After(input.StartTime) {
		utils.RespondWithError(c, http.StatusBadRequest, "End time must be after start time")
		return
	}

	// Validate artist belongs to the studio
	var artist models.User
	if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, input.ArtistID).
		First(&artist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Artist not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Validate client belongs to the studio
	var client models.Client
	if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, input.ClientID).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	conflict, err := hasArtistConflict(studioUUID, input.ArtistID, input.StartTime, input.EndTime, uuid.Nil)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if conflict {
		utils.RespondWithError(c, http.StatusConflict, "Artist already has an appointment in this time slot")
		return
	}

	status := models.StatusPending
	if input.Status != "" {
		status = input.Status
	}

	appointment := models.Appointment{
		ID:          uuid.New(),
		StudioID:    studioUUID,
		ArtistID:    input.ArtistID,
		ClientID:    input.ClientID,
		ServiceName: input.ServiceName,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Status:      status,
		Notes:       input.Notes,
		Price:       input.Price,
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	publishAppointmentEvent("appointment_created", &appointment)

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments lists the studio's appointments, optionally filtered by
// artist, status and a from/to range on start time.
func GetAppointments(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}

	query := config.DB.Preload("Client").Where("studio_id = ?", studioUUID)

	if artist := c.Query("artistId"); artist != "" {
		artistUUID, err := uuid.Parse(artist)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid artist ID format")
			return
		}
		query = query.Where("artist_id = ?", artistUUID)
	}
	if status := c.Query("status"); status != "" {
		if !models.ValidStatus(status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status filter")
			return
		}
		query = query.Where("status = ?", status)
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date")
			return
		}
		query = query.Where("start_time >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date")
			return
		}
		query = query.Where("start_time < ?", t)
	}

	var appointments []models.Appointment
	if err := query.Order("start_time asc").Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment by ID
func GetAppointment(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	appointmentUUID, ok := pathUUID(c, "id", "appointment")
	if !ok {
		return
	}

	var appointment models.Appointment
	if err := config.DB.Preload("Client").
		Where("studio_id = ? AND id = ?", studioUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointment edits or reschedules an appointment. Rescheduling does
// not reset the reminder flags; reminders stay tied to the original slot.
func UpdateAppointment(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	appointmentUUID, ok := pathUUID(c, "id", "appointment")
	if !ok {
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ArtistID != nil {
		var artist models.User
		if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, *input.ArtistID).
			First(&artist).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Artist not found")
			return
		}
		appointment.ArtistID = *input.ArtistID
	}
	if input.ServiceName != nil {
		appointment.ServiceName = *input.ServiceName
	}
	if input.StartTime != nil {
		appointment.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		appointment.EndTime = *input.EndTime
	}
	if input.Notes != nil {
		appointment.Notes = *input.Notes
	}
	if input.Price != nil {
		appointment.Price = *input.Price
	}

	if !appointment.EndTime.After(appointment.StartTime) {
		utils.RespondWithError(c, http.StatusBadRequest, "End time must be after start time")
		return
	}

	if input.StartTime != nil || input.EndTime != nil || input.ArtistID != nil {
		conflict, err := hasArtistConflict(studioUUID, appointment.ArtistID,
			appointment.StartTime, appointment.EndTime, appointment.ID)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		if conflict {
			utils.RespondWithError(c, http.StatusConflict, "Artist already has an appointment in this time slot")
			return
		}
	}

	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	publishAppointmentEvent("appointment_updated", &appointment)

	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointmentStatus changes the lifecycle status. Staff may set any
// status (all states stay editable); the response notes whether the change
// follows a canonical transition and whether it should prompt the client
// for a review.
func UpdateAppointmentStatus(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	appointmentUUID, ok := pathUUID(c, "id", "appointment")
	if !ok {
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	previous := appointment.Status
	reviewPrompt := models.TriggersReviewRequest(previous, input.Status)

	appointment.Status = input.Status
	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update status")
		return
	}

	publishAppointmentEvent("appointment_status_changed", &appointment)

	c.JSON(http.StatusOK, gin.H{
		"appointment":         appointment,
		"previousStatus":      previous,
		"canonicalTransition": models.CanTransition(previous, input.Status),
		"reviewPrompt":        reviewPrompt,
	})
}

// DeleteAppointment soft deletes an appointment
func DeleteAppointment(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	appointmentUUID, ok := pathUUID(c, "id", "appointment")
	if !ok {
		return
	}

	result := config.DB.Where("studio_id = ? AND id = ?", studioUUID, appointmentUUID).
		Delete(&models.Appointment{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	publishAppointmentEvent("appointment_deleted", &models.Appointment{ID: appointmentUUID, StudioID: studioUUID})

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

// publishAppointmentEvent emits a change event so realtime consumers can
// refetch. A missing producer or a publish failure never affects the request.
func publishAppointmentEvent(eventType string, appt *models.Appointment) {
	if config.Events == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		event := map[string]interface{}{
			"event":    eventType,
			"id":       appt.ID,
			"studioId": appt.StudioID,
			"status":   appt.Status,
		}
		jsonData, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal appointment event: %v", err)
			return
		}
		if err := config.Events.SendMessage(ctx, config.AppointmentEventsTopic, []byte(appt.StudioID.String()), jsonData); err != nil {
			log.Printf("Failed to publish appointment event: %v", err)
		}
	}()
}
