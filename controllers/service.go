// controllers/service.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"pawsgroom-backend/config"
	"pawsgroom-backend/models"
	"pawsgroom-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"` // in minutes
	Category    string   `json:"category"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	Category    *string  `json:"category"`
	IsActive    *bool    `json:"isActive"`
}

func validateServiceInput(input *CreateServiceInput) []utils.FieldError {
	var errs []utils.FieldError

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, utils.FieldError{Field: "name", Message: "Service name is required"})
	}
	if strings.TrimSpace(input.Description) == "" {
		errs = append(errs, utils.FieldError{Field: "description", Message: "Description is required"})
	}
	if input.Price == nil {
		errs = append(errs, utils.FieldError{Field: "price", Message: "Price must be a number"})
	} else if *input.Price < 0 {
		errs = append(errs, utils.FieldError{Field: "price", Message: "Price must not be negative"})
	}
	if input.Duration != nil && *input.Duration < 15 {
		errs = append(errs, utils.FieldError{Field: "duration", Message: "Duration must be at least 15 minutes"})
	}
	if input.Category != "" && !utils.OneOf(input.Category, models.ServiceCategories) {
		errs = append(errs, utils.FieldError{Field: "category", Message: "Invalid category"})
	}

	return errs
}

// GetActiveServices returns the public service catalog (active only)
func GetActiveServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Where("is_active = ?", true).
		Order("created_at DESC").Find(&services).Error; err != nil {
		utils.Log.Errorf("list services failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetAllServices returns every service, active or not (admin only)
func GetAllServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Order("created_at DESC").Find(&services).Error; err != nil {
		utils.Log.Errorf("list all services failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// CreateService creates a new grooming service
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if errs := validateServiceInput(&input); len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	service := models.Service{
		Name:        input.Name,
		Description: input.Description,
		Price:       *input.Price,
		Duration:    60,
		Category:    "grooming",
		IsActive:    true,
	}
	if input.Duration != nil {
		service.Duration = *input.Duration
	}
	if input.Category != "" {
		service.Category = input.Category
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.Log.Errorf("create service failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// UpdateService updates an existing service, including the active flag
func UpdateService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var errs []utils.FieldError
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		errs = append(errs, utils.FieldError{Field: "name", Message: "Service name is required"})
	}
	if input.Description != nil && strings.TrimSpace(*input.Description) == "" {
		errs = append(errs, utils.FieldError{Field: "description", Message: "Description is required"})
	}
	if input.Price != nil && *input.Price < 0 {
		errs = append(errs, utils.FieldError{Field: "price", Message: "Price must not be negative"})
	}
	if input.Duration != nil && *input.Duration < 15 {
		errs = append(errs, utils.FieldError{Field: "duration", Message: "Duration must be at least 15 minutes"})
	}
	if input.Category != nil && !utils.OneOf(*input.Category, models.ServiceCategories) {
		errs = append(errs, utils.FieldError{Field: "category", Message: "Invalid category"})
	}
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	// Retrieve existing service
	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.Log.Errorf("load service failed: %v", err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.Duration != nil {
		service.Duration = *input.Duration
	}
	if input.Category != nil {
		service.Category = *input.Category
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.Log.Errorf("update service failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service. Deletion is unconditional; bookings that
// reference it keep their captured total price.
func DeleteService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Delete(&models.Service{}, "id = ?", serviceUUID)

	if result.Error != nil {
		utils.Log.Errorf("delete service failed: %v", result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
