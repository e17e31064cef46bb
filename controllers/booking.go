// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"inkstudio-backend/config"
	"inkstudio-backend/models"
	"inkstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PublicBookingInput is the client-facing booking form; bookings created
// here always enter the lifecycle as pending.
type PublicBookingInput struct {
	StudioID    uuid.UUID `json:"studioId" binding:"required"`
	ArtistID    uuid.UUID `json:"artistId" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Phone       string    `json:"phone" binding:"required"`
	Email       string    `json:"email"`
	ServiceName string    `json:"serviceName" binding:"required"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	Notes       string    `json:"notes"`
}

// PublicBook creates a pending appointment from the public booking flow
func PublicBook(c *gin.Context) {
	var input PublicBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !input.EndTime.After(input.StartTime) {
		utils.RespondWithError(c, http.StatusBadRequest, "End time must be after start time")
		return
	}
	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if input.Email != "" && !utils.ValidateEmail(input.Email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email format")
		return
	}

	var studio models.Studio
	if err := config.DB.First(&studio, "id = ?", input.StudioID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Studio not found")
		return
	}

	var artist models.User
	if err := config.DB.Where("studio_id = ? AND id = ? AND is_active = ?",
		input.StudioID, input.ArtistID, true).First(&artist).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Artist not found")
		return
	}

	conflict, err := hasArtistConflict(input.StudioID, input.ArtistID, input.StartTime, input.EndTime, uuid.Nil)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if conflict {
		utils.RespondWithError(c, http.StatusConflict, "This time slot is no longer available")
		return
	}

	// Reuse the client record when the phone is already known
	var client models.Client
	err = config.DB.Where("studio_id = ? AND phone = ?", input.StudioID, input.Phone).
		First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		client = models.Client{
			ID:              uuid.New(),
			StudioID:        input.StudioID,
			CreatedByUserID: input.ArtistID, // attributed to the booked artist
			Name:            input.Name,
			Phone:           input.Phone,
			Email:           input.Email,
			IsActive:        true,
		}
		if err := config.DB.Create(&client).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
			return
		}
	} else if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	} else if input.Email != "" && client.Email == "" {
		config.DB.Model(&client).Update("email", input.Email)
	}

	appointment := models.Appointment{
		ID:          uuid.New(),
		StudioID:    input.StudioID,
		ArtistID:    input.ArtistID,
		ClientID:    client.ID,
		ServiceName: input.ServiceName,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Status:      models.StatusPending,
		Notes:       input.Notes,
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	publishAppointmentEvent("appointment_created", &appointment)

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Booking request received",
		"appointment": appointment,
	})
}
