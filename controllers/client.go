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

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	Name             string     `json:"name" binding:"required"`
	Phone            string     `json:"phone" binding:"required"`
	Email            *string    `json:"email"` // Pointer to allow null
	Birthday         *time.Time `json:"birthday"`
	StylePreferences string     `json:"stylePreferences"`
	Notes            string     `json:"notes"`
}

// UpdateClientInput defines the expected JSON structure for updating a client
type UpdateClientInput struct {
	Name             *string    `json:"name"`
	Phone            *string    `json:"phone"`
	Email            *string    `json:"email"`
	Birthday         *time.Time `json:"birthday"`
	StylePreferences *string    `json:"stylePreferences"`
	Notes            *string    `json:"notes"`
	IsActive         *bool      `json:"isActive"`
}

// CreateClient creates a new client for the studio
func CreateClient(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	userUUID, ok := userID(c)
	if !ok {
		return
	}

	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if phone already exists for this studio
	var existingClient models.Client
	if err := config.DB.Where("studio_id = ? AND phone = ?", studioUUID, input.Phone).
		First(&existingClient).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Client with this phone number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	client := models.Client{
		ID:               uuid.New(),
		StudioID:         studioUUID,
		CreatedByUserID:  userUUID,
		Name:             input.Name,
		Phone:            input.Phone,
		Birthday:         input.Birthday,
		StylePreferences: input.StylePreferences,
		Notes:            input.Notes,
		IsActive:         true,
	}

	if input.Email != nil {
		client.Email = *input.Email
	}

	if err := config.DB.Create(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClients retrieves all clients for the studio
func GetClients(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}

	var clients []models.Client
	if err := config.DB.Where("studio_id = ?", studioUUID).Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient retrieves a specific client by ID
func GetClient(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	clientUUID, ok := pathUUID(c, "id", "client")
	if !ok {
		return
	}

	var client models.Client
	if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, clientUUID).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, client)
}

// UpdateClient updates an existing client
func UpdateClient(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	clientUUID, ok := pathUUID(c, "id", "client")
	if !ok {
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var client models.Client
	if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, clientUUID).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}

		// Check if phone is being changed to another existing client
		if client.Phone != *input.Phone {
			var existingClient models.Client
			if err := config.DB.Where("studio_id = ? AND phone = ?", studioUUID, *input.Phone).
				First(&existingClient).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another client with this phone number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		client.Phone = *input.Phone
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Birthday != nil {
		client.Birthday = input.Birthday
	}
	if input.StylePreferences != nil {
		client.StylePreferences = *input.StylePreferences
	}
	if input.Notes != nil {
		client.Notes = *input.Notes
	}
	if input.IsActive != nil {
		client.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient soft deletes a client
func DeleteClient(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	clientUUID, ok := pathUUID(c, "id", "client")
	if !ok {
		return
	}

	result := config.DB.Where("studio_id = ? AND id = ?", studioUUID, clientUUID).
		Delete(&models.Client{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
