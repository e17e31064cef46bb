// controllers/reminder.go
package controllers

import (
	"net/http"
	"os"
	"time"

	"inkstudio-backend/config"
	"inkstudio-backend/models"
	"inkstudio-backend/services"
	"inkstudio-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReminderController exposes the dispatcher for external scheduler triggers.
type ReminderController struct {
	Reminders *services.ReminderService
}

// Run executes one dispatcher invocation. The endpoint takes no meaningful
// input; it is gated by a shared secret so only the scheduler can call it.
func (rc *ReminderController) Run(c *gin.Context) {
	secret := os.Getenv("CRON_SECRET")
	if secret == "" || c.GetHeader("X-Cron-Secret") != secret {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid cron secret")
		return
	}

	processed, err := rc.Reminders.Run(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"processed": processed,
	})
}

// GetMessageLog lists the studio's outbound reminder and marketing messages
func GetMessageLog(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}

	query := config.DB.Where("studio_id = ?", studioUUID)
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}

	var logs []models.MessageLog
	if err := query.Order("sent_at desc").Limit(200).Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve message log")
		return
	}

	c.JSON(http.StatusOK, logs)
}
