package model

import (
	"time"

	"github.com/google/uuid"
)

// PhoneRecord is one SMS notification sign-up. Records are append-only and
// never deduplicated.
type PhoneRecord struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PhoneNumber string    `json:"phone_number" gorm:"column:phone_number;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the table name for GORM.
func (PhoneRecord) TableName() string {
	return "phone_numbers"
}

// StorePhoneRequest is the body of POST /api/storePhoneNumber.
type StorePhoneRequest struct {
	PhoneNumber string `json:"phoneNumber" example:"5551234567"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed API request.
type ErrorResponse struct {
	Error string `json:"error"`
}
