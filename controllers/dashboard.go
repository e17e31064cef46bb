package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"inkstudio-backend/config"
	"inkstudio-backend/models"
	"inkstudio-backend/utils"

	"github.com/gin-gonic/gin"
)

const dashboardCacheTTL = 2 * time.Minute

type UpcomingBirthday struct {
	Name string `json:"name"`
	Date string `json:"date"` // e.g. "Today", "Tomorrow", "3 days"
}

type TodayAppointment struct {
	ID          string `json:"id"`
	ClientName  string `json:"clientName"`
	ServiceName string `json:"serviceName"`
	StartTime   string `json:"startTime"`
	Status      string `json:"status"`
}

// GetDashboardOverview aggregates the studio's headline numbers
func GetDashboardOverview(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}

	cacheKey := fmt.Sprintf("dashboard:%s", studioUUID)
	if config.Cache != nil {
		if cached, err := config.Cache.GetFromCache(c.Request.Context(), cacheKey); err == nil {
			var resp map[string]interface{}
			if json.Unmarshal([]byte(cached), &resp) == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// Total clients
	var totalClients int64
	config.DB.Model(&models.Client{}).
		Where("studio_id = ? AND deleted_at IS NULL", studioUUID).Count(&totalClients)

	// Appointments this month
	var monthlyAppointments int64
	config.DB.Model(&models.Appointment{}).
		Where("studio_id = ? AND start_time >= ? AND deleted_at IS NULL", studioUUID, firstOfMonth).
		Count(&monthlyAppointments)

	// This month's revenue from the finance ledger
	var monthlyRevenue float64
	config.DB.Model(&models.Transaction{}).
		Where("studio_id = ? AND type = ? AND date >= ? AND deleted_at IS NULL",
			studioUUID, models.TransactionIncome, firstOfMonth).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthlyRevenue)

	// Today's visible appointments
	dayStart := utils.BeginningOfDay(now)
	dayEnd := dayStart.AddDate(0, 0, 1)
	var todays []models.Appointment
	config.DB.Preload("Client").
		Where("studio_id = ? AND start_time >= ? AND start_time < ?", studioUUID, dayStart, dayEnd).
		Where("status IN ?", models.VisibleStatuses()).
		Order("start_time asc").
		Find(&todays)

	todayAppointments := make([]TodayAppointment, 0, len(todays))
	for _, appt := range todays {
		todayAppointments = append(todayAppointments, TodayAppointment{
			ID:          appt.ID.String(),
			ClientName:  appt.Client.Name,
			ServiceName: appt.ServiceName,
			StartTime:   appt.StartTime.Format("15:04"),
			Status:      appt.Status,
		})
	}

	// Upcoming birthdays within 7 days, ignoring the year part
	type birthdayRow struct {
		Name string
		Date time.Time
	}
	var rows []birthdayRow
	config.DB.Raw(`
        SELECT name, birthday as date FROM clients
        WHERE studio_id = ? AND deleted_at IS NULL AND birthday IS NOT NULL
    `, studioUUID).Scan(&rows)

	var upcomingBirthdays []UpcomingBirthday
	for _, r := range rows {
		daysUntil := utils.DaysBetween(now, utils.NextAnniversary(now, r.Date))
		if daysUntil > 6 {
			continue
		}
		var label string
		switch daysUntil {
		case 0:
			label = "Today"
		case 1:
			label = "Tomorrow"
		default:
			label = fmt.Sprintf("%d days", daysUntil)
		}
		upcomingBirthdays = append(upcomingBirthdays, UpcomingBirthday{Name: r.Name, Date: label})
		if len(upcomingBirthdays) >= 7 {
			break
		}
	}

	// Recent clients by last visit
	var recentClients []models.Client
	config.DB.Where("studio_id = ? AND last_visit IS NOT NULL", studioUUID).
		Order("last_visit desc").Limit(3).Find(&recentClients)

	response := gin.H{
		"totalClients":        totalClients,
		"monthlyAppointments": monthlyAppointments,
		"monthlyRevenue":      monthlyRevenue,
		"todayAppointments":   todayAppointments,
		"upcomingBirthdays":   upcomingBirthdays,
		"recentClients":       recentClients,
	}

	if config.Cache != nil {
		if data, err := json.Marshal(response); err == nil {
			_ = config.Cache.SetToCache(c.Request.Context(), cacheKey, string(data), dashboardCacheTTL)
		}
	}

	c.JSON(http.StatusOK, response)
}
