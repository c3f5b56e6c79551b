package models

import (
	"etix/src/types"

	"github.com/google/uuid"
)

// UserProfile is keyed by the auth identity, one row per user.
type UserProfile struct {
	ID                 uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	FullName           string    `json:"full_name"`
	Phone              *string   `json:"phone,omitempty"`
	DateOfBirth        *string   `json:"date_of_birth,omitempty"`
	AddressLine1       *string   `json:"address_line1,omitempty"`
	AddressLine2       *string   `json:"address_line2,omitempty"`
	City               *string   `json:"city,omitempty"`
	PostalCode         *string   `json:"postal_code,omitempty"`
	Country            *string   `json:"country,omitempty"`
	EmailNotifications bool      `json:"email_notifications"`
	SMSNotifications   bool      `json:"sms_notifications"`

	types.Timestamps
}
