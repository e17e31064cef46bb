package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"inkstudio-backend/config"
	"inkstudio-backend/models"
	"inkstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email         string       `json:"email" binding:"required,email"`
	Phone         string       `json:"phone" binding:"required"`
	Name          string       `json:"name" binding:"required"`
	Password      string       `json:"password" binding:"required,min=8"`
	StudioName    string       `json:"studioName" binding:"required"`
	StudioAddress string       `json:"studioAddress"`
	WorkingHours  models.JSONB `json:"workingHours"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // Can be email or phone
	Password   string `json:"password" binding:"required"`
}

// Register creates the studio (tenant) together with its owner account
func Register(c *gin.Context) {
	var input RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if email or phone already exists
	var existingUser models.User
	result := config.DB.Where("email = ? OR phone = ?", input.Email, input.Phone).First(&existingUser)

	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email or phone already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	studio := models.Studio{
		Name:         input.StudioName,
		Address:      input.StudioAddress,
		Email:        input.Email,
		Phone:        input.Phone,
		WorkingHours: input.WorkingHours,
		SenderName:   input.StudioName,
		ReplyTo:      input.Email,
	}

	if studio.WorkingHours == nil {
		studio.WorkingHours = models.JSONB{
			"monday":    map[string]interface{}{"open": "11:00", "close": "20:00", "closed": false},
			"tuesday":   map[string]interface{}{"open": "11:00", "close": "20:00", "closed": false},
			"wednesday": map[string]interface{}{"open": "11:00", "close": "20:00", "closed": false},
			"thursday":  map[string]interface{}{"open": "11:00", "close": "20:00", "closed": false},
			"friday":    map[string]interface{}{"open": "11:00", "close": "21:00", "closed": false},
			"saturday":  map[string]interface{}{"open": "12:00", "close": "21:00", "closed": false},
			"sunday":    map[string]interface{}{"open": "12:00", "close": "18:00", "closed": true},
		}
	}

	newUser := models.User{
		Email:    input.Email,
		Phone:    input.Phone,
		Name:     input.Name,
		Password: input.Password, // Will be hashed in BeforeCreate hook
		Role:     string(utils.RoleOwner),
	}

	// Studio and owner are created together or not at all
	tx := config.DB.Begin()
	if err := tx.Create(&studio).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create studio")
		return
	}
	newUser.StudioID = studio.ID
	if err := tx.Create(&newUser).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}
	tx.Commit()

	token, err := utils.GenerateToken(newUser.ID.String(), studio.ID.String(), utils.RoleOwner)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":         newUser.ID,
			"email":      newUser.Email,
			"phone":      newUser.Phone,
			"role":       newUser.Role,
			"studioId":   studio.ID,
			"studioName": studio.Name,
		},
	})
}

func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	identifier := strings.TrimSpace(input.Identifier)

	var user models.User
	result := config.DB.Where("email = ? OR phone = ?", identifier, identifier).First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !user.IsActive {
		utils.RespondWithError(c, http.StatusUnauthorized, "Account is deactivated")
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	role, ok := utils.ParseRole(user.Role)
	if !ok {
		utils.RespondWithError(c, http.StatusInternalServerError, "Unknown role on account")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.StudioID.String(), role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// Update last login
	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"name":     user.Name,
			"role":     user.Role,
			"studioId": user.StudioID,
		},
	})
}

func Me(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.Preload("Studio").First(&user, "id = ?", uid).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"name":       user.Name,
			"role":       user.Role,
			"studioId":   user.StudioID,
			"studioName": user.Studio.Name,
		},
	})
}
