// controllers/course.go
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

// CreateCourseInput defines the expected JSON structure for an academy course
type CreateCourseInput struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Price       float64    `json:"price" binding:"required,min=0"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	MaxStudents int        `json:"maxStudents" binding:"omitempty,min=1"`
}

type UpdateCourseInput struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Price       *float64   `json:"price" binding:"omitempty,min=0"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	MaxStudents *int       `json:"maxStudents" binding:"omitempty,min=1"`
	IsActive    *bool      `json:"isActive"`
}

type EnrollInput struct {
	StudentName  string  `json:"studentName" binding:"required"`
	StudentEmail string  `json:"studentEmail" binding:"omitempty,email"`
	StudentPhone string  `json:"studentPhone"`
	PaidAmount   float64 `json:"paidAmount" binding:"min=0"`
}

type AttendanceInput struct {
	EnrollmentID uuid.UUID `json:"enrollmentId" binding:"required"`
	SessionDate  time.Time `json:"sessionDate" binding:"required"`
	Present      bool      `json:"present"`
}

// CreateCourse adds an academy course
func CreateCourse(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}

	var input CreateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	course := models.Course{
		StudioID:    studioUUID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		IsActive:    true,
	}
	if input.MaxStudents > 0 {
		course.MaxStudents = input.MaxStudents
	}

	if err := config.DB.Create(&course).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create course")
		return
	}

	c.JSON(http.StatusCreated, course)
}

// GetCourses lists the studio's courses
func GetCourses(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}

	var courses []models.Course
	if err := config.DB.Where("studio_id = ?", studioUUID).Find(&courses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve courses")
		return
	}

	c.JSON(http.StatusOK, courses)
}

// GetCourse retrieves a course with its enrollments
func GetCourse(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	courseUUID, ok := pathUUID(c, "id", "course")
	if !ok {
		return
	}

	var course models.Course
	if err := config.DB.Preload("Enrollments").
		Where("studio_id = ? AND id = ?", studioUUID, courseUUID).
		First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Course not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, course)
}

// UpdateCourse edits an existing course
func UpdateCourse(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	courseUUID, ok := pathUUID(c, "id", "course")
	if !ok {
		return
	}

	var input UpdateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var course models.Course
	if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, courseUUID).
		First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Course not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		course.Name = *input.Name
	}
	if input.Description != nil {
		course.Description = *input.Description
	}
	if input.Price != nil {
		course.Price = *input.Price
	}
	if input.StartDate != nil {
		course.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		course.EndDate = input.EndDate
	}
	if input.MaxStudents != nil {
		course.MaxStudents = *input.MaxStudents
	}
	if input.IsActive != nil {
		course.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&course).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update course")
		return
	}

	c.JSON(http.StatusOK, course)
}

// DeleteCourse soft deletes a course
func DeleteCourse(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	courseUUID, ok := pathUUID(c, "id", "course")
	if !ok {
		return
	}

	result := config.DB.Where("studio_id = ? AND id = ?", studioUUID, courseUUID).
		Delete(&models.Course{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete course")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Course not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully"})
}

// EnrollStudent adds a student to a course, enforcing the capacity limit
func EnrollStudent(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	courseUUID, ok := pathUUID(c, "id", "course")
	if !ok {
		return
	}

	var input EnrollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var course models.Course
	if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, courseUUID).
		First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Course not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	if !course.IsActive {
		utils.RespondWithError(c, http.StatusConflict, "Course is not active")
		return
	}

	var activeCount int64
	if err := config.DB.Model(&models.Enrollment{}).
		Where("course_id = ? AND status = ?", courseUUID, models.EnrollmentActive).
		Count(&activeCount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if int(activeCount) >= course.MaxStudents {
		utils.RespondWithError(c, http.StatusConflict, "Course is full")
		return
	}

	enrollment := models.Enrollment{
		StudioID:     studioUUID,
		CourseID:     courseUUID,
		StudentName:  input.StudentName,
		StudentEmail: input.StudentEmail,
		StudentPhone: input.StudentPhone,
		Status:       models.EnrollmentActive,
		PaidAmount:   input.PaidAmount,
	}

	if err := config.DB.Create(&enrollment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to enroll student")
		return
	}

	c.JSON(http.StatusCreated, enrollment)
}

// MarkAttendance upserts an attendance record for one enrollment and session day
func MarkAttendance(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	courseUUID, ok := pathUUID(c, "id", "course")
	if !ok {
		return
	}

	var input AttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// The enrollment must belong to this course and studio
	var enrollment models.Enrollment
	if err := config.DB.Where("studio_id = ? AND course_id = ? AND id = ?",
		studioUUID, courseUUID, input.EnrollmentID).
		First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Enrollment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	sessionDay := utils.BeginningOfDay(input.SessionDate)

	var record models.AttendanceRecord
	err := config.DB.Where("enrollment_id = ? AND session_date = ?", input.EnrollmentID, sessionDay).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.AttendanceRecord{
			StudioID:     studioUUID,
			EnrollmentID: input.EnrollmentID,
			SessionDate:  sessionDay,
			Present:      input.Present,
		}
		if err := config.DB.Create(&record).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record attendance")
			return
		}
		c.JSON(http.StatusCreated, record)
		return
	} else if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	record.Present = input.Present
	if err := config.DB.Save(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update attendance")
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetAttendanceSheet lists per-enrollment attendance for a course
func GetAttendanceSheet(c *gin.Context) {
	studioUUID, ok := studioID(c)
	if !ok {
		return
	}
	courseUUID, ok := pathUUID(c, "id", "course")
	if !ok {
		return
	}

	var enrollments []models.Enrollment
	if err := config.DB.Preload("AttendanceRecords").
		Where("studio_id = ? AND course_id = ?", studioUUID, courseUUID).
		Find(&enrollments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve attendance")
		return
	}

	c.JSON(http.StatusOK, enrollments)
}
