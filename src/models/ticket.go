package models

import (
	"etix/src/types"

	"github.com/google/uuid"
)

type Ticket struct {
	ID         uuid.UUID          `gorm:"type:uuid;primarykey" json:"id"`
	EventID    uuid.UUID          `gorm:"type:uuid" json:"event_id"`
	UserID     *uuid.UUID         `gorm:"type:uuid" json:"user_id,omitempty"`
	Quantity   uint               `json:"quantity"`
	TotalPrice float64            `json:"total_price"`
	Status     types.TicketStatus `json:"status"`

	Event Event `gorm:"foreignKey:event_id" json:"event,omitempty"`

	types.Timestamps
}
