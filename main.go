package main

import (
	"log"
	"os"

	"inkstudio-backend/config"
	"inkstudio-backend/models"
	"inkstudio-backend/routes"
	"inkstudio-backend/services"
	"inkstudio-backend/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	config.ConnectDB()

	if err := config.DB.AutoMigrate(
		&models.Studio{},
		&models.User{},
		&models.Client{},
		&models.Service{},
		&models.Appointment{},
		&models.Transaction{},
		&models.Course{},
		&models.Enrollment{},
		&models.AttendanceRecord{},
		&models.WaitlistEntry{},
		&models.MessageLog{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Optional infrastructure: the app runs without redis and kafka,
	// caching and event publishing just become no-ops.
	if cache, err := config.ConnectRedis(); err != nil {
		log.Println("Redis unavailable, caching disabled:", err)
	} else {
		config.Cache = cache
	}
	if producer, err := utils.NewKafkaProducer(); err != nil {
		log.Println("Kafka unavailable, event publishing disabled:", err)
	} else {
		config.Events = producer
	}

	sender := services.NewSMTPSender(
		os.Getenv("SMTP_HOST"),
		os.Getenv("SMTP_PORT"),
		os.Getenv("SMTP_FROM"),
	)

	reminders := services.NewReminderService(config.DB, sender)
	reminders.StartScheduler()

	r := routes.SetupRouter(reminders)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server starting on port " + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
