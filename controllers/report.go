// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"inkstudio-backend/config"
	"inkstudio-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportController handles all reporting functions
type ReportController struct{}

// AnalyticsSummary represents the Analytics data
type AnalyticsSummary struct {
	CurrentMonthRevenue   float64          `json:"currentMonthRevenue"`
	MonthGrowth           float64          `json:"monthGrowth"`
	CurrentQuarterRevenue float64          `json:"currentQuarterRevenue"`
	QuarterGrowth         float64          `json:"quarterGrowth"`
	CurrentYearRevenue    float64          `json:"currentYearRevenue"`
	YearGrowth            float64          `json:"yearGrowth"`
	TopServices           []ServiceSummary `json:"topServices"`
	TopArtists            []ArtistSummary  `json:"topArtists"`
	QuickStats            QuickStatistics  `json:"quickStats"`
}

type ServiceSummary struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type ArtistSummary struct {
	Name         string  `json:"name"`
	Appointments int     `json:"appointments"`
	Revenue      float64 `json:"revenue"`
}

type QuickStatistics struct {
	TotalClients      int     `json:"totalClients"`
	TotalAppointments int     `json:"totalAppointments"`
	CompletionRate    float64 `json:"completionRate"`
	AvgTicket         float64 `json:"avgTicket"`
}

func (rc *ReportController) incomeBetween(studioUUID uuid.UUID, start, end time.Time) float64 {
	var total float64
	config.DB.Model(&models.Transaction{}).
		Where("studio_id = ? AND type = ? AND date >= ? AND date < ? AND deleted_at IS NULL",
			studioUUID, models.TransactionIncome, start, end).
		Select("COALESCE(SUM(amount), 0)").Scan(&total)
	return total
}

func growth(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// GetReportAnalytics returns the complete analytics summary
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}

	now := time.Now()
	loc := now.Location()

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	prevMonthStart := monthStart.AddDate(0, -1, 0)

	quarterMonth := time.Month((int(now.Month())-1)/3*3 + 1)
	quarterStart := time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, loc)
	prevQuarterStart := quarterStart.AddDate(0, -3, 0)

	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
	prevYearStart := yearStart.AddDate(-1, 0, 0)

	summary := AnalyticsSummary{}
	summary.CurrentMonthRevenue = rc.incomeBetween(studioUUID, monthStart, monthStart.AddDate(0, 1, 0))
	summary.MonthGrowth = growth(summary.CurrentMonthRevenue,
		rc.incomeBetween(studioUUID, prevMonthStart, monthStart))
	summary.CurrentQuarterRevenue = rc.incomeBetween(studioUUID, quarterStart, quarterStart.AddDate(0, 3, 0))
	summary.QuarterGrowth = growth(summary.CurrentQuarterRevenue,
		rc.incomeBetween(studioUUID, prevQuarterStart, quarterStart))
	summary.CurrentYearRevenue = rc.incomeBetween(studioUUID, yearStart, yearStart.AddDate(1, 0, 0))
	summary.YearGrowth = growth(summary.CurrentYearRevenue,
		rc.incomeBetween(studioUUID, prevYearStart, yearStart))

	// Top services by completed appointment revenue
	config.DB.Raw(`
        SELECT service_name as name, COUNT(*) as count, COALESCE(SUM(price), 0) as revenue
        FROM appointments
        WHERE studio_id = ? AND status = ? AND deleted_at IS NULL
        GROUP BY service_name
        ORDER BY revenue DESC
        LIMIT 5
    `, studioUUID, models.StatusCompleted).Scan(&summary.TopServices)

	// Top artists by completed appointment revenue
	config.DB.Raw(`
        SELECT u.name as name, COUNT(a.id) as appointments, COALESCE(SUM(a.price), 0) as revenue
        FROM appointments a
        JOIN users u ON u.id = a.artist_id
        WHERE a.studio_id = ? AND a.status = ? AND a.deleted_at IS NULL
        GROUP BY u.name
        ORDER BY revenue DESC
        LIMIT 5
    `, studioUUID, models.StatusCompleted).Scan(&summary.TopArtists)

	var totalClients, totalAppointments, completedAppointments int64
	config.DB.Model(&models.Client{}).
		Where("studio_id = ? AND deleted_at IS NULL", studioUUID).Count(&totalClients)
	config.DB.Model(&models.Appointment{}).
		Where("studio_id = ? AND deleted_at IS NULL", studioUUID).Count(&totalAppointments)
	config.DB.Model(&models.Appointment{}).
		Where("studio_id = ? AND status = ? AND deleted_at IS NULL", studioUUID, models.StatusCompleted).
		Count(&completedAppointments)

	var completedRevenue float64
	config.DB.Model(&models.Appointment{}).
		Where("studio_id = ? AND status = ? AND deleted_at IS NULL", studioUUID, models.StatusCompleted).
		Select("COALESCE(SUM(price), 0)").Scan(&completedRevenue)

	summary.QuickStats = QuickStatistics{
		TotalClients:      int(totalClients),
		TotalAppointments: int(totalAppointments),
	}
	if totalAppointments > 0 {
		summary.QuickStats.CompletionRate = float64(completedAppointments) / float64(totalAppointments) * 100
	}
	if completedAppointments > 0 {
		summary.QuickStats.AvgTicket = completedRevenue / float64(completedAppointments)
	}

	c.JSON(http.StatusOK, summary)
}
