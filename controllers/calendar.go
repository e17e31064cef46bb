// controllers/calendar.go
package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"inkstudio-backend/config"
	"inkstudio-backend/models"
	"inkstudio-backend/services"
	"inkstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const calendarCacheTTL = 60 * time.Second

type calendarResponse struct {
	View  string                 `json:"view"`
	Start time.Time              `json:"start"`
	End   time.Time              `json:"end"`
	Days  []services.CalendarDay `json:"days"`
}

// GetCalendar composes the calendar grid: the enclosing interval for the
// requested view and reference date, the studio's visible appointments
// overlapping it (optionally one artist's), bucketed by day.
func GetCalendar(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}

	view := c.DefaultQuery("view", "month")
	dateStr := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	ref, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	start, end, err := utils.ViewInterval(view, ref)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	artistFilter := c.Query("artistId")
	var artistUUID uuid.UUID
	if artistFilter != "" {
		artistUUID, err = uuid.Parse(artistFilter)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid artist ID format")
			return
		}
	}

	cacheKey := fmt.Sprintf("calendar:%s:%s:%s:%s", studioUUID, view, dateStr, artistFilter)
	if config.Cache != nil {
		if cached, err := config.Cache.GetFromCache(c.Request.Context(), cacheKey); err == nil {
			var resp calendarResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	query := config.DB.Preload("Client").
		Where("studio_id = ?", studioUUID).
		Where("status IN ?", models.VisibleStatuses()).
		Where("start_time < ? AND end_time > ?", end, start)
	if artistFilter != "" {
		query = query.Where("artist_id = ?", artistUUID)
	}

	var appointments []models.Appointment
	if err := query.Order("start_time asc").Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	resp := calendarResponse{
		View:  view,
		Start: start,
		End:   end,
		Days:  services.GroupByDay(appointments, start, end),
	}

	if config.Cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			_ = config.Cache.SetToCache(c.Request.Context(), cacheKey, string(data), calendarCacheTTL)
		}
	}

	c.JSON(http.StatusOK, resp)
}
