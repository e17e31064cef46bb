// controllers/marketing.go
package controllers

import (
	"net/http"

	"inkstudio-backend/services"
	"inkstudio-backend/utils"

	"github.com/gin-gonic/gin"
)

type MarketingController struct {
	Marketing *services.MarketingService
}

type BroadcastInput struct {
	Message string `json:"message" binding:"required"`
}

// Broadcast sends a templated message to all active clients with a phone.
// [ClientName] in the message is substituted per recipient.
func (mc *MarketingController) Broadcast(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}

	var input BroadcastInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	results, err := mc.Marketing.Broadcast(studioUUID, input.Message)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send broadcast")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sent":    len(results),
		"results": results,
	})
}
