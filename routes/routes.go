package routes

import (
	"os"
	"strings"

	"inkstudio-backend/config"
	"inkstudio-backend/controllers"
	"inkstudio-backend/monitoring"
	"inkstudio-backend/services"
	"inkstudio-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(reminders *services.ReminderService) *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Cron-Secret"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())
	r.Use(monitoring.PrometheusMetrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	reminderController := &controllers.ReminderController{Reminders: reminders}
	marketingController := &controllers.MarketingController{Marketing: services.NewMarketingService(config.DB)}
	preferenceController := &controllers.PreferenceController{Prefs: services.NewPreferenceService(config.DB)}
	reportController := &controllers.ReportController{}

	// External scheduler trigger for the reminder dispatcher
	r.POST("/jobs/reminders", reminderController.Run)

	// Public, unauthenticated capture endpoints
	public := r.Group("/public")
	{
		public.POST("/waitlist", controllers.JoinWaitlist)
		public.POST("/booking", controllers.PublicBook)
	}

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Client CRM routes
		clients := api.Group("/clients", utils.RequireCapability(utils.CapManageClients))
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
		}

		// Appointment routes
		appointments := api.Group("/appointments", utils.RequireCapability(utils.CapManageAppointments))
		{
			appointments.POST("", controllers.CreateAppointment)
			appointments.GET("", controllers.GetAppointments)
			appointments.GET("/:id", controllers.GetAppointment)
			appointments.PUT("/:id", controllers.UpdateAppointment)
			appointments.PATCH("/:id/status", controllers.UpdateAppointmentStatus)
			appointments.DELETE("/:id", controllers.DeleteAppointment)
		}

		// Calendar grid
		api.GET("/calendar", utils.RequireCapability(utils.CapManageAppointments), controllers.GetCalendar)

		// Service catalog routes
		svcs := api.Group("/services", utils.RequireCapability(utils.CapManageAppointments))
		{
			svcs.POST("", controllers.CreateService)
			svcs.GET("", controllers.GetServices)
			svcs.GET("/:id", controllers.GetService)
			svcs.PUT("/:id", controllers.UpdateService)
			svcs.DELETE("/:id", controllers.DeleteService)
		}

		// Finance routes
		finance := api.Group("/transactions", utils.RequireCapability(utils.CapManageFinance))
		{
			finance.POST("", controllers.CreateTransaction)
			finance.GET("", controllers.GetTransactions)
			finance.PUT("/:id", controllers.UpdateTransaction)
			finance.DELETE("/:id", controllers.DeleteTransaction)
			finance.GET("/summary", controllers.GetFinanceSummary)
		}

		// Academy routes
		courses := api.Group("/courses", utils.RequireCapability(utils.CapManageAcademy))
		{
			courses.POST("", controllers.CreateCourse)
			courses.GET("", controllers.GetCourses)
			courses.GET("/:id", controllers.GetCourse)
			courses.PUT("/:id", controllers.UpdateCourse)
			courses.DELETE("/:id", controllers.DeleteCourse)
			courses.POST("/:id/enrollments", controllers.EnrollStudent)
			courses.POST("/:id/attendance", controllers.MarkAttendance)
			courses.GET("/:id/attendance", controllers.GetAttendanceSheet)
		}

		// Waitlist management
		waitlist := api.Group("/waitlist", utils.RequireCapability(utils.CapManageMarketing))
		{
			waitlist.GET("", controllers.GetWaitlist)
			waitlist.PUT("/:id", controllers.UpdateWaitlistEntry)
			waitlist.POST("/:id/convert", controllers.ConvertWaitlistEntry)
			waitlist.DELETE("/:id", controllers.DeleteWaitlistEntry)
		}

		// Marketing broadcast
		api.POST("/marketing/broadcast", utils.RequireCapability(utils.CapManageMarketing), marketingController.Broadcast)

		// Message history (reminders + marketing)
		api.GET("/messages", utils.RequireCapability(utils.CapManageMarketing), controllers.GetMessageLog)

		// Reports
		api.GET("/reports", utils.RequireCapability(utils.CapViewReports), reportController.GetReportAnalytics)

		// Dashboard
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Studio settings
		profile := api.Group("/profile", utils.RequireCapability(utils.CapManageSettings))
		{
			profile.GET("", controllers.GetStudioProfile)
			profile.PUT("", controllers.UpdateStudioProfile)
			profile.PUT("/working-hours", controllers.UpdateWorkingHours)
			profile.PUT("/automation", controllers.UpdateAutomationSettings)
		}

		// Per-user preferences
		api.GET("/preferences", preferenceController.GetPreferences)
		api.PUT("/preferences", preferenceController.SavePreferences)

		// Team routes
		employees := api.Group("/employees", utils.RequireCapability(utils.CapManageTeam))
		{
			employees.GET("", controllers.GetEmployees)
			employees.POST("", controllers.AddEmployee)
			employees.PUT("/:id", controllers.UpdateEmployee)
			employees.DELETE("/:id", controllers.DeleteEmployee)
		}
	}

	return r
}
