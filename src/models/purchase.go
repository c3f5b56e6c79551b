package models

import (
	"time"

	"github.com/google/uuid"
)

type Purchase struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primarykey" json:"id"`
	TicketID              uuid.UUID  `gorm:"type:uuid" json:"ticket_id"`
	EventID               uuid.UUID  `gorm:"type:uuid" json:"event_id"`
	UserID                *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
	UserEmail             string     `json:"user_email"`
	UserName              string     `json:"user_name"`
	Quantity              uint       `json:"quantity"`
	TotalPrice            float64    `json:"total_price"`
	ConfirmationCode      string     `json:"confirmation_code"`
	StripeSessionID       *string    `gorm:"uniqueIndex" json:"stripe_session_id,omitempty"`
	StripePaymentIntentID *string    `json:"stripe_payment_intent_id,omitempty"`
	CreatedAt             time.Time  `gorm:"autoCreateTime:nano" json:"created_at"`

	Ticket Ticket `gorm:"foreignKey:ticket_id" json:"-"`
	Event  Event  `gorm:"foreignKey:event_id" json:"event,omitempty"`
}
