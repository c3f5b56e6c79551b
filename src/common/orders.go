package common

import (
	"errors"
	"fmt"
	"log"
	"time"

	"etix/src/config"
	"etix/src/lib"
	"etix/src/lib/mailer"
	"etix/src/models"
	"etix/src/types"
	"etix/src/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderInput struct {
	EventID  uuid.UUID
	Quantity uint
	Name     string
	Email    string
	UserID   *uuid.UUID

	// Set on the payment-confirmed path only, for reconciliation and
	// duplicate-callback detection.
	StripeSessionID       *string
	StripePaymentIntentID *string
}

type OrderResult struct {
	PurchaseID       uuid.UUID
	ConfirmationCode string
}

// OrderProcessor runs the order fulfillment workflow. Collaborators are
// passed in explicitly so tests can swap in a mock connection and a
// recording mailer.
type OrderProcessor struct {
	DB     *gorm.DB
	Mailer mailer.Mailer
}

// Fulfill reserves a Ticket, records the Purchase and decrements the
// event's availability in one transaction. The decrement is guarded on
// available_tickets >= quantity, so two concurrent orders can never
// drive the counter negative; losing the guard surfaces as
// ErrInsufficientInventory at commit time. A checkout session that was
// already fulfilled is a no-op returning the existing purchase.
func (p *OrderProcessor) Fulfill(input *OrderInput) (*OrderResult, error) {
	if input.StripeSessionID != nil {
		var existing models.Purchase
		err := p.DB.
			Where(&models.Purchase{StripeSessionID: input.StripeSessionID}).
			First(&existing).
			Error
		if err == nil {
			log.Printf("Order for checkout session [%s] already fulfilled. Skipping\n", *input.StripeSessionID)
			return &OrderResult{PurchaseID: existing.ID, ConfirmationCode: existing.ConfirmationCode}, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var event models.Event
	var purchase models.Purchase
	code := utils.GenerateConfirmationCode()
	err := p.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("id = ?", input.EventID).
			First(&event).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		if input.Quantity > event.AvailableTickets {
			return ErrInsufficientInventory
		}
		totalPrice := event.Price * float64(input.Quantity)
		ticket := models.Ticket{
			ID:         uuid.New(),
			EventID:    event.ID,
			UserID:     input.UserID,
			Quantity:   input.Quantity,
			TotalPrice: totalPrice,
			Status:     types.TICKET_CONFIRMED,
		}
		if err := tx.Create(&ticket).Error; err != nil {
			log.Printf("Error creating Ticket for Event [%s]: %s\n", event.ID, err.Error())
			return err
		}
		purchase = models.Purchase{
			ID:                    uuid.New(),
			TicketID:              ticket.ID,
			EventID:               event.ID,
			UserID:                input.UserID,
			UserEmail:             input.Email,
			UserName:              input.Name,
			Quantity:              input.Quantity,
			TotalPrice:            totalPrice,
			ConfirmationCode:      code,
			StripeSessionID:       input.StripeSessionID,
			StripePaymentIntentID: input.StripePaymentIntentID,
		}
		if err := tx.Create(&purchase).Error; err != nil {
			log.Printf("Error creating Purchase for Ticket [%s]: %s\n", ticket.ID, err.Error())
			return err
		}
		res := tx.
			Model(&models.Event{}).
			Where("id = ? AND available_tickets >= ?", event.ID, input.Quantity).
			UpdateColumn("available_tickets", gorm.Expr("available_tickets - ?", input.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientInventory
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	go p.sendConfirmationEmail(&event, input, code)

	return &OrderResult{PurchaseID: purchase.ID, ConfirmationCode: code}, nil
}

// sendConfirmationEmail is fire and forget: delivery failure is logged
// and never fails the order.
func (p *OrderProcessor) sendConfirmationEmail(event *models.Event, input *OrderInput, code string) {
	totalPrice := event.Price * float64(input.Quantity)
	appName := config.AppName()
	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1>%s</h1>
    <h2>Ticket Confirmation</h2>
    <p>Hi %s,</p>
    <p>Thank you for your purchase! Your tickets for <strong>%s</strong> have been confirmed.</p>
    <p><strong>Event:</strong> %s</p>
    <p><strong>Date:</strong> %s</p>
    <p><strong>Location:</strong> %s</p>
    <p><strong>Quantity:</strong> %d</p>
    <p><strong>Total Price:</strong> %s</p>
    <p><strong>Confirmation Code:</strong> <span style="font-family: monospace; font-weight: bold;">%s</span></p>
    <p>Please save this confirmation code and bring it with you to the event.</p>
    <p>We look forward to seeing you there!</p>
  </body>
</html>`,
		appName,
		input.Name,
		event.Title,
		event.Title,
		utils.FormatEventDate(event.Date),
		event.Location,
		input.Quantity,
		utils.FormatPrice(totalPrice),
		code,
	)
	if err := p.Mailer.Send(&lib.SendMailInput{
		From:     config.SMTPFrom(),
		FromName: appName,
		To:       []string{input.Email},
		Subject:  fmt.Sprintf("Ticket Confirmation - %s", event.Title),
		Body:     body,
		Html:     true,
	}); err != nil {
		log.Printf("Could not send confirmation email to [%s]: %s\n", input.Email, err.Error())
	}
}

// SweepOrphanTickets cancels confirmed Tickets that never got a matching
// Purchase. The workflow commits both rows together, so an orphan means
// a partial state survived a crash; record it durably instead of leaving
// it to a console scrollback.
func SweepOrphanTickets(db *gorm.DB, olderThan time.Duration) (int64, error) {
	res := db.
		Model(&models.Ticket{}).
		Where("status = ?", types.TICKET_CONFIRMED).
		Where("created_at < ?", time.Now().Add(-olderThan)).
		Where("id NOT IN (?)", db.Model(&models.Purchase{}).Select("ticket_id")).
		Update("status", types.TICKET_CANCELLED)
	if res.Error != nil {
		log.Printf("Error sweeping orphaned tickets: %s\n", res.Error.Error())
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("Cancelled %d orphaned ticket(s) with no matching purchase\n", res.RowsAffected)
	}
	return res.RowsAffected, nil
}
