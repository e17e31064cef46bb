// services/marketing_service.go
package services

import (
	"log"
	"os"
	"strings"
	"time"

	"inkstudio-backend/models"

	"github.com/google/uuid"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type MarketingService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewMarketingService(db *gorm.DB) *MarketingService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &MarketingService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

type BroadcastResult struct {
	ClientID uuid.UUID `json:"clientId"`
	Phone    string    `json:"phone"`
	Channel  string    `json:"channel"`
	Status   string    `json:"status"`
}

// Broadcast sends a templated message to every active client of the studio
// that has a phone number. [ClientName] in the template is substituted per
// recipient. Every attempt is recorded in the message log.
func (s *MarketingService) Broadcast(studioID uuid.UUID, template string) ([]BroadcastResult, error) {
	var clients []models.Client
	if err := s.db.Where("studio_id = ? AND is_active = ? AND phone <> ''", studioID, true).
		Find(&clients).Error; err != nil {
		return nil, err
	}

	var results []BroadcastResult
	for _, client := range clients {
		message := strings.ReplaceAll(template, "[ClientName]", client.Name)

		// WhatsApp for E.164 numbers, SMS otherwise
		channel := "sms"
		to := client.Phone
		if strings.HasPrefix(client.Phone, "+") {
			to = "whatsapp:" + client.Phone
			channel = "whatsapp"
		}

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(to)
		params.SetBody(message)
		if channel == "whatsapp" {
			params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
		} else {
			params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
		}

		resp, err := s.client.Api.CreateMessage(params)
		status := "sent"
		errorMsg := ""
		if err != nil {
			log.Printf("Failed to send message to %s: %v", client.Phone, err)
			status = "failed"
			errorMsg = err.Error()
		} else if resp.Sid == nil {
			log.Printf("Message sent to %s, but no SID returned", client.Phone)
		}

		clientID := client.ID
		logEntry := models.MessageLog{
			StudioID:     studioID,
			ClientID:     &clientID,
			Type:         "marketing",
			Recipient:    client.Phone,
			Message:      message,
			Status:       status,
			ErrorMessage: errorMsg,
			Channel:      channel,
			SentAt:       time.Now(),
		}
		if err := s.db.Create(&logEntry).Error; err != nil {
			log.Printf("Failed to log broadcast for client %s: %v", client.ID, err)
		}

		results = append(results, BroadcastResult{
			ClientID: client.ID,
			Phone:    client.Phone,
			Channel:  channel,
			Status:   status,
		})
	}

	return results, nil
}
