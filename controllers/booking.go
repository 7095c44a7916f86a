// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"pawsgroom-backend/config"
	"pawsgroom-backend/models"
	"pawsgroom-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingInput defines the expected JSON structure for creating or fully
// updating a booking. Status and Notes are only honored on updates.
type BookingInput struct {
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	PetName         string    `json:"petName"`
	PetType         string    `json:"petType"`
	PetBreed        string    `json:"petBreed"`
	Services        *[]string `json:"services"`
	AppointmentDate string    `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"`
	SpecialRequests string    `json:"specialRequests"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
}

// UpdateBookingStatusInput defines the body of the status-only update
type UpdateBookingStatusInput struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

func validateBookingInput(input *BookingInput, forUpdate bool) ([]utils.FieldError, time.Time, []uuid.UUID) {
	var errs []utils.FieldError
	var appointmentDate time.Time
	var serviceIDs []uuid.UUID

	if strings.TrimSpace(input.CustomerName) == "" {
		errs = append(errs, utils.FieldError{Field: "customerName", Message: "Customer name is required"})
	}
	if !utils.ValidateEmail(input.CustomerEmail) {
		errs = append(errs, utils.FieldError{Field: "customerEmail", Message: "Please enter a valid email"})
	}
	if strings.TrimSpace(input.CustomerPhone) == "" {
		errs = append(errs, utils.FieldError{Field: "customerPhone", Message: "Phone number is required"})
	}
	if strings.TrimSpace(input.PetName) == "" {
		errs = append(errs, utils.FieldError{Field: "petName", Message: "Pet name is required"})
	}
	if !utils.OneOf(input.PetType, models.PetTypes) {
		errs = append(errs, utils.FieldError{Field: "petType", Message: "Invalid pet type"})
	}

	if input.Services == nil {
		errs = append(errs, utils.FieldError{Field: "services", Message: "Services must be an array"})
	} else {
		for _, raw := range *input.Services {
			id, err := uuid.Parse(raw)
			if err != nil {
				errs = append(errs, utils.FieldError{Field: "services", Message: "Invalid service ID: " + raw})
				continue
			}
			serviceIDs = append(serviceIDs, id)
		}
	}

	if strings.TrimSpace(input.AppointmentDate) == "" {
		errs = append(errs, utils.FieldError{Field: "appointmentDate", Message: "Appointment date is required"})
	} else {
		var err error
		appointmentDate, err = utils.ParseAppointmentDate(input.AppointmentDate)
		if err != nil {
			errs = append(errs, utils.FieldError{Field: "appointmentDate", Message: "Invalid appointment date"})
		}
	}
	if strings.TrimSpace(input.AppointmentTime) == "" {
		errs = append(errs, utils.FieldError{Field: "appointmentTime", Message: "Appointment time is required"})
	}

	if forUpdate && input.Status != "" && !utils.OneOf(input.Status, models.BookingStatuses) {
		errs = append(errs, utils.FieldError{Field: "status", Message: "Invalid status"})
	}

	return errs, appointmentDate, serviceIDs
}

// fetchServices resolves the referenced service records and sums their
// prices. IDs that match no record are silently skipped, so the total covers
// the services that actually exist at this moment.
func fetchServices(ids []uuid.UUID) ([]models.Service, float64, error) {
	var services []models.Service
	if len(ids) > 0 {
		if err := config.DB.Where("id IN ?", ids).Find(&services).Error; err != nil {
			return nil, 0, err
		}
	}

	var total float64
	for _, service := range services {
		total += service.Price
	}
	return services, total, nil
}

func loadExpandedBooking(id uuid.UUID) (models.Booking, error) {
	var booking models.Booking
	err := config.DB.Preload("Services").First(&booking, "id = ?", id).Error
	return booking, err
}

// CreateBooking handles the public booking form submission. The total price
// is captured from the current service prices and the status starts pending.
func CreateBooking(c *gin.Context) {
	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	errs, appointmentDate, serviceIDs := validateBookingInput(&input, false)
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	services, totalPrice, err := fetchServices(serviceIDs)
	if err != nil {
		utils.Log.Errorf("fetch services for booking failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	booking := models.Booking{
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		PetName:         input.PetName,
		PetType:         input.PetType,
		PetBreed:        input.PetBreed,
		Services:        services,
		AppointmentDate: appointmentDate,
		AppointmentTime: input.AppointmentTime,
		TotalPrice:      totalPrice,
		Status:          models.StatusPending,
		SpecialRequests: input.SpecialRequests,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		utils.Log.Errorf("create booking failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBookings returns all bookings with their services expanded, latest
// appointment first
func GetBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := config.DB.Preload("Services").
		Order("appointment_date DESC, appointment_time DESC").
		Find(&bookings).Error; err != nil {
		utils.Log.Errorf("list bookings failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking returns a single expanded booking
func GetBooking(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	booking, err := loadExpandedBooking(bookingUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.Log.Errorf("load booking failed: %v", err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBookingStatus sets the status label and optional admin notes. Any of
// the four values may be set from any current status.
func UpdateBookingStatus(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.OneOf(input.Status, models.BookingStatuses) {
		utils.RespondWithValidationErrors(c, []utils.FieldError{
			{Field: "status", Message: "Invalid status"},
		})
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", bookingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.Log.Errorf("load booking failed: %v", err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	booking.Status = input.Status
	if input.Notes != nil {
		booking.Notes = *input.Notes
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.Log.Errorf("update booking status failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	expanded, err := loadExpandedBooking(booking.ID)
	if err != nil {
		utils.Log.Errorf("reload booking failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, expanded)
}

// UpdateBooking is the full admin edit. It re-validates like create and
// recomputes the total price from the services' current prices.
func UpdateBooking(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	errs, appointmentDate, serviceIDs := validateBookingInput(&input, true)
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", bookingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.Log.Errorf("load booking failed: %v", err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	services, totalPrice, err := fetchServices(serviceIDs)
	if err != nil {
		utils.Log.Errorf("fetch services for booking failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	booking.CustomerName = input.CustomerName
	booking.CustomerEmail = input.CustomerEmail
	booking.CustomerPhone = input.CustomerPhone
	booking.PetName = input.PetName
	booking.PetType = input.PetType
	booking.PetBreed = input.PetBreed
	booking.AppointmentDate = appointmentDate
	booking.AppointmentTime = input.AppointmentTime
	booking.TotalPrice = totalPrice
	booking.SpecialRequests = input.SpecialRequests
	booking.Notes = input.Notes
	if input.Status != "" {
		booking.Status = input.Status
	}

	if err := config.DB.Model(&booking).Association("Services").Replace(services); err != nil {
		utils.Log.Errorf("replace booking services failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.Log.Errorf("update booking failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	expanded, err := loadExpandedBooking(booking.ID)
	if err != nil {
		utils.Log.Errorf("reload booking failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, expanded)
}

// DeleteBooking removes a booking outright; there is no archival
func DeleteBooking(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", bookingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.Log.Errorf("load booking failed: %v", err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Clear the service references along with the record
	if err := config.DB.Select("Services").Delete(&booking).Error; err != nil {
		utils.Log.Errorf("delete booking failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
