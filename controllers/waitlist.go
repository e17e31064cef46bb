// controllers/waitlist.go
package controllers

import (
	"errors"
	"net/http"

	"inkstudio-backend/config"
	"inkstudio-backend/models"
	"inkstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PublicWaitlistInput is the unauthenticated marketing capture form
type PublicWaitlistInput struct {
	StudioID         uuid.UUID `json:"studioId" binding:"required"`
	Name             string    `json:"name" binding:"required"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	RequestedService string    `json:"requestedService"`
	RequestedArtist  string    `json:"requestedArtist"`
	Notes            string    `json:"notes"`
}

type UpdateWaitlistInput struct {
	Status string  `json:"status" binding:"required,oneof=new contacted converted discarded"`
	Notes  *string `json:"notes"`
}

// JoinWaitlist captures a public lead; no auth required
func JoinWaitlist(c *gin.Context) {
	var input PublicWaitlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Email == "" && input.Phone == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Email or phone is required")
		return
	}
	if input.Email != "" && !utils.ValidateEmail(input.Email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email format")
		return
	}
	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// The studio must exist; non-existent tenant ids are rejected quietly
	var studio models.Studio
	if err := config.DB.First(&studio, "id = ?", input.StudioID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Studio not found")
		return
	}

	entry := models.WaitlistEntry{
		StudioID:         input.StudioID,
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		RequestedService: input.RequestedService,
		RequestedArtist:  input.RequestedArtist,
		Notes:            input.Notes,
		Status:           models.WaitlistNew,
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to join waitlist")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Added to waitlist", "id": entry.ID})
}

// GetWaitlist lists the studio's waitlist entries, optionally by status
func GetWaitlist(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}

	query := config.DB.Where("studio_id = ?", studioUUID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var entries []models.WaitlistEntry
	if err := query.Order("created_at desc").Find(&entries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve waitlist")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// UpdateWaitlistEntry changes a lead's status or notes
func UpdateWaitlistEntry(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	entryUUID, ok := pathUUID(c, "id", "waitlist entry")
	if !ok {
		return
	}

	var input UpdateWaitlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var entry models.WaitlistEntry
	if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, entryUUID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Waitlist entry not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	entry.Status = input.Status
	if input.Notes != nil {
		entry.Notes = *input.Notes
	}

	if err := config.DB.Save(&entry).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update waitlist entry")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ConvertWaitlistEntry turns a lead into a client record
func ConvertWaitlistEntry(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	userUUID, ok := userID(c)
	if !ok {
		return
	}
	entryUUID, ok := pathUUID(c, "id", "waitlist entry")
	if !ok {
		return
	}

	var entry models.WaitlistEntry
	if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, entryUUID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Waitlist entry not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if entry.Status == models.WaitlistConverted {
		utils.RespondWithError(c, http.StatusConflict, "Entry already converted")
		return
	}
	if entry.Phone == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Entry has no phone number to create a client from")
		return
	}

	// Reuse an existing client with the same phone instead of duplicating
	var client models.Client
	err := config.DB.Where("studio_id = ? AND phone = ?", studioUUID, entry.Phone).
		First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		client = models.Client{
			ID:              uuid.New(),
			StudioID:        studioUUID,
			CreatedByUserID: userUUID,
			Name:            entry.Name,
			Phone:           entry.Phone,
			Email:           entry.Email,
			Notes:           entry.Notes,
			IsActive:        true,
		}
		if err := config.DB.Create(&client).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
			return
		}
	} else if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	entry.Status = models.WaitlistConverted
	if err := config.DB.Save(&entry).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update waitlist entry")
		return
	}

	c.JSON(http.StatusOK, gin.H{"client": client, "entry": entry})
}

// DeleteWaitlistEntry removes a lead
func DeleteWaitlistEntry(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	entryUUID, ok := pathUUID(c, "id", "waitlist entry")
	if !ok {
		return
	}

	result := config.DB.Where("studio_id = ? AND id = ?", studioUUID, entryUUID).
		Delete(&models.WaitlistEntry{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete waitlist entry")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Waitlist entry not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Waitlist entry deleted successfully"})
}
