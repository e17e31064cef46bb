// controllers/team.go
package controllers

import (
	"errors"
	"net/http"

	"inkstudio-backend/config"
	"inkstudio-backend/models"
	"inkstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddEmployeeInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

type UpdateEmployeeInput struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"isActive"`
}

// GetEmployees lists the studio's staff
func GetEmployees(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}

	var employees []models.User
	if err := config.DB.Select("id, email, name, phone, role, is_active, last_login, created_at").
		Where("studio_id = ?", studioUUID).Find(&employees).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve employees")
		return
	}

	c.JSON(http.StatusOK, employees)
}

// AddEmployee creates a staff account in the studio
func AddEmployee(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}

	var input AddEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	role, valid := utils.ParseRole(input.Role)
	if !valid || role == utils.RoleOwner {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid role")
		return
	}

	var existingUser models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existingUser).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	employee := models.User{
		Email:    input.Email,
		Name:     input.Name,
		Phone:    input.Phone,
		Password: input.Password, // hashed in BeforeCreate hook
		Role:     string(role),
		StudioID: studioUUID,
		IsActive: true,
	}

	if err := config.DB.Create(&employee).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    employee.ID,
		"email": employee.Email,
		"name":  employee.Name,
		"role":  employee.Role,
	})
}

// UpdateEmployee edits a staff account
func UpdateEmployee(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	employeeUUID, ok := pathUUID(c, "id", "employee")
	if !ok {
		return
	}

	var input UpdateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var employee models.User
	if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, employeeUUID).
		First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Phone != nil {
		employee.Phone = *input.Phone
	}
	if input.Role != nil {
		role, valid := utils.ParseRole(*input.Role)
		if !valid {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid role")
			return
		}
		// Ownership is not transferable through this endpoint
		if role == utils.RoleOwner || employee.Role == string(utils.RoleOwner) {
			utils.RespondWithError(c, http.StatusBadRequest, "Cannot change owner role")
			return
		}
		employee.Role = string(role)
	}
	if input.IsActive != nil {
		employee.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&employee).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update employee")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       employee.ID,
		"email":    employee.Email,
		"name":     employee.Name,
		"role":     employee.Role,
		"isActive": employee.IsActive,
	})
}

// DeleteEmployee soft deletes a staff account
func DeleteEmployee(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	employeeUUID, ok := pathUUID(c, "id", "employee")
	if !ok {
		return
	}

	var employee models.User
	if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, employeeUUID).
		First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if employee.Role == string(utils.RoleOwner) {
		utils.RespondWithError(c, http.StatusBadRequest, "Cannot delete the studio owner")
		return
	}

	if err := config.DB.Delete(&employee).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete employee")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
