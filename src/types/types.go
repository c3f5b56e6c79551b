package types

import (
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type TicketStatus string

const (
	TICKET_PENDING   TicketStatus = "pending"
	TICKET_CONFIRMED TicketStatus = "confirmed"
	TICKET_CANCELLED TicketStatus = "cancelled"
)

type PurchaseRequestBody struct {
	EventID  string `json:"event_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,min=1,max=10"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type UpdateProfileRequestBody struct {
	FullName           string  `json:"full_name" binding:"required"`
	Phone              *string `json:"phone,omitempty"`
	DateOfBirth        *string `json:"date_of_birth,omitempty"`
	AddressLine1       *string `json:"address_line1,omitempty"`
	AddressLine2       *string `json:"address_line2,omitempty"`
	City               *string `json:"city,omitempty"`
	PostalCode         *string `json:"postal_code,omitempty"`
	Country            *string `json:"country,omitempty"`
	EmailNotifications bool    `json:"email_notifications"`
	SMSNotifications   bool    `json:"sms_notifications"`
}

type SessionURIParams struct {
	SessionID string `uri:"sessionId" binding:"required"`
}

type EventURIParams struct {
	ID string `uri:"id" binding:"required,uuid"`
}
