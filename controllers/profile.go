package controllers

import (
	"net/http"

	"inkstudio-backend/config"
	"inkstudio-backend/models"
	"inkstudio-backend/services"
	"inkstudio-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateStudioInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type UpdateAutomationInput struct {
	EmailEnabled         *bool   `json:"emailEnabled"`
	AppointmentReminders *bool   `json:"appointmentReminders"`
	ReviewRequests       *bool   `json:"reviewRequests"`
	SenderName           *string `json:"senderName"`
	ReplyTo              *string `json:"replyTo"`
}

// GetStudioProfile returns the tenant's profile and automation settings
func GetStudioProfile(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}

	var studio models.Studio
	if err := config.DB.First(&studio, "id = ?", studioUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Studio not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":         studio.Name,
		"address":      studio.Address,
		"phone":        studio.Phone,
		"email":        studio.Email,
		"workingHours": studio.WorkingHours,
		"automation": gin.H{
			"emailEnabled":         studio.EmailEnabled,
			"appointmentReminders": studio.AppointmentReminders,
			"reviewRequests":       studio.ReviewRequests,
			"senderName":           studio.SenderName,
			"replyTo":              studio.ReplyTo,
		},
	})
}

// UpdateStudioProfile edits the studio identity fields
func UpdateStudioProfile(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}

	var input UpdateStudioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var studio models.Studio
	if err := config.DB.First(&studio, "id = ?", studioUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Studio not found")
		return
	}

	studio.Name = input.Name
	studio.Address = input.Address
	studio.Phone = input.Phone
	studio.Email = input.Email

	if err := config.DB.Save(&studio).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// UpdateWorkingHours replaces the studio's working hours
func UpdateWorkingHours(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}

	var input struct {
		WorkingHours models.JSONB `json:"workingHours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := config.DB.Model(&models.Studio{}).Where("id = ?", studioUUID).
		Update("working_hours", input.WorkingHours).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update working hours")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Working hours updated"})
}

// UpdateAutomationSettings edits the reminder automation switches consumed
// by the dispatcher
func UpdateAutomationSettings(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}

	var input UpdateAutomationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	updates := map[string]interface{}{}
	if input.EmailEnabled != nil {
		updates["email_enabled"] = *input.EmailEnabled
	}
	if input.AppointmentReminders != nil {
		updates["appointment_reminders"] = *input.AppointmentReminders
	}
	if input.ReviewRequests != nil {
		updates["review_requests"] = *input.ReviewRequests
	}
	if input.SenderName != nil {
		updates["sender_name"] = *input.SenderName
	}
	if input.ReplyTo != nil {
		updates["reply_to"] = *input.ReplyTo
	}
	if len(updates) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "No settings provided")
		return
	}

	if err := config.DB.Model(&models.Studio{}).Where("id = ?", studioUUID).
		Updates(updates).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update automation settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Automation settings updated"})
}

// PreferenceController exposes the per-user layout/theme preference store
type PreferenceController struct {
	Prefs *services.PreferenceService
}

func (pc *PreferenceController) GetPreferences(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	prefs, err := pc.Prefs.Load(uid)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load preferences")
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

func (pc *PreferenceController) SavePreferences(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var input struct {
		Preferences models.JSONB `json:"preferences" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := pc.Prefs.Save(uid, input.Preferences); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save preferences")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Preferences saved"})
}
