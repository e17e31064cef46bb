// controllers/transaction.go
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

// CreateTransactionInput defines the expected JSON structure for a finance entry
type CreateTransactionInput struct {
	Type          string     `json:"type" binding:"required,oneof=income expense"`
	Category      string     `json:"category"`
	Amount        float64    `json:"amount" binding:"required,gt=0"`
	Date          *time.Time `json:"date"`
	AppointmentID *uuid.UUID `json:"appointmentId"`
	ClientID      *uuid.UUID `json:"clientId"`
	PaymentMethod string     `json:"paymentMethod"`
	Notes         string     `json:"notes"`
}

// UpdateTransactionInput defines the expected JSON structure for editing
type UpdateTransactionInput struct {
	Type          *string    `json:"type" binding:"omitempty,oneof=income expense"`
	Category      *string    `json:"category"`
	Amount        *float64   `json:"amount" binding:"omitempty,gt=0"`
	Date          *time.Time `json:"date"`
	PaymentMethod *string    `json:"paymentMethod"`
	Notes         *string    `json:"notes"`
}

// CreateTransaction records an income or expense entry
func CreateTransaction(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	userUUID, ok := userID(c)
	if !ok {
		return
	}

	var input CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	transaction := models.Transaction{
		ID:              uuid.New(),
		StudioID:        studioUUID,
		CreatedByUserID: userUUID,
		Type:            input.Type,
		Amount:          input.Amount,
		Date:            date,
		AppointmentID:   input.AppointmentID,
		ClientID:        input.ClientID,
		PaymentMethod:   input.PaymentMethod,
		Notes:           input.Notes,
	}
	if input.Category != "" {
		transaction.Category = input.Category
	}

	if err := config.DB.Create(&transaction).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// GetTransactions lists entries, optionally filtered by type and date range
func GetTransactions(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}

	query := config.DB.Where("studio_id = ?", studioUUID)

	if t := c.Query("type"); t != "" {
		if t != models.TransactionIncome && t != models.TransactionExpense {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid type filter")
			return
		}
		query = query.Where("type = ?", t)
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date")
			return
		}
		query = query.Where("date >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date")
			return
		}
		query = query.Where("date < ?", t.AddDate(0, 0, 1))
	}

	var transactions []models.Transaction
	if err := query.Order("date desc").Find(&transactions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// UpdateTransaction edits an existing entry
func UpdateTransaction(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	transactionUUID, ok := pathUUID(c, "id", "transaction")
	if !ok {
		return
	}

	var input UpdateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var transaction models.Transaction
	if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, transactionUUID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.Category != nil {
		transaction.Category = *input.Category
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Date != nil {
		transaction.Date = *input.Date
	}
	if input.PaymentMethod != nil {
		transaction.PaymentMethod = *input.PaymentMethod
	}
	if input.Notes != nil {
		transaction.Notes = *input.Notes
	}

	if err := config.DB.Save(&transaction).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction soft deletes an entry
func DeleteTransaction(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	transactionUUID, ok := pathUUID(c, "id", "transaction")
	if !ok {
		return
	}

	result := config.DB.Where("studio_id = ? AND id = ?", studioUUID, transactionUUID).
		Delete(&models.Transaction{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// GetFinanceSummary aggregates income, expenses and net for one month
func GetFinanceSummary(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}

	monthStr := c.DefaultQuery("month", time.Now().Format("2006-01"))
	month, err := time.Parse("2006-01", monthStr)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid month, expected YYYY-MM")
		return
	}
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var income, expenses float64
	config.DB.Model(&models.Transaction{}).
		Where("studio_id = ? AND type = ? AND date >= ? AND date < ? AND deleted_at IS NULL",
			studioUUID, models.TransactionIncome, start, end).
		Select("COALESCE(SUM(amount), 0)").Scan(&income)
	config.DB.Model(&models.Transaction{}).
		Where("studio_id = ? AND type = ? AND date >= ? AND date < ? AND deleted_at IS NULL",
			studioUUID, models.TransactionExpense, start, end).
		Select("COALESCE(SUM(amount), 0)").Scan(&expenses)

	c.JSON(http.StatusOK, gin.H{
		"month":    monthStr,
		"income":   income,
		"expenses": expenses,
		"net":      income - expenses,
	})
}
