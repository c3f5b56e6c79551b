package models

import (
	"etix/src/types"
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID               uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	Date             time.Time `json:"date"`
	Location         string    `json:"location"`
	ImageURL         *string   `json:"image_url,omitempty"`
	Price            float64   `json:"price"`
	TotalTickets     uint      `json:"total_tickets"`
	AvailableTickets uint      `json:"available_tickets"`

	Tickets []Ticket `gorm:"foreignKey:event_id" json:"tickets,omitempty"`

	types.Timestamps
}
