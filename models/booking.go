package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// BookingStatuses are the accepted values for Booking.Status. No transition
// table is enforced; any status may replace any other.
var BookingStatuses = []string{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}

// PetTypes are the accepted values for Booking.PetType.
var PetTypes = []string{"dog", "cat", "other"}

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerEmail string `gorm:"not null" json:"customerEmail"`
	CustomerPhone string `gorm:"not null" json:"customerPhone"`

	PetName  string `gorm:"not null" json:"petName"`
	PetType  string `gorm:"type:varchar(10);not null" json:"petType"`
	PetBreed string `json:"petBreed"`

	Services []Service `gorm:"many2many:booking_services" json:"services"`

	AppointmentDate time.Time `gorm:"not null;index" json:"appointmentDate"`
	AppointmentTime string    `gorm:"not null" json:"appointmentTime"`

	// Sum of the referenced service prices as of the last create or full
	// update. Not recomputed when a service price changes afterwards.
	TotalPrice float64 `gorm:"type:decimal(10,2);not null" json:"totalPrice"`

	Status          string `gorm:"type:varchar(20);default:'pending'" json:"status"`
	SpecialRequests string `gorm:"type:text" json:"specialRequests"`
	Notes           string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
