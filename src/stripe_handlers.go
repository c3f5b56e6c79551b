package main

import (
	"encoding/json"
	"errors"
	"etix/src/common"
	"etix/src/config"
	"etix/src/db"
	"etix/src/lib"
	"etix/src/models"
	"etix/src/types"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"gorm.io/gorm"
)

func stripeHandlers(g *gin.RouterGroup, proc *common.OrderProcessor) *gin.RouterGroup {
	g.
		POST("/checkout", func(ctx *gin.Context) {
			var body types.PurchaseRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, validationErrorResponse(err))
				return
			}
			var event models.Event
			db := db.GetDb()
			if err := db.
				Where("id = ?", body.EventID).
				First(&event).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
					return
				}
				log.Printf("Error retrieving Event [%s]: %s\n", body.EventID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load event"})
				return
			}
			if uint(body.Quantity) > event.AvailableTickets {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Not enough tickets available"})
				return
			}
			cs, err := lib.CreateCheckoutSession(ctx, &lib.CheckoutOrderInput{
				Event:    &event,
				Quantity: body.Quantity,
				Name:     body.Name,
				Email:    body.Email,
				UserID:   ctx.GetString("uid"),
			})
			if err != nil {
				log.Printf("Error creating checkout session for Event [%s]: %s\n", body.EventID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"session_id": cs.ID, "url": cs.URL})
		}).
		GET("/purchases/session/:sessionId", func(ctx *gin.Context) {
			var params types.SessionURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var purchase models.Purchase
			db := db.GetDb()
			if err := db.
				Where(&models.Purchase{StripeSessionID: &params.SessionID}).
				Preload("Event").
				First(&purchase).
				Error; err != nil {
				// The webhook may not have landed yet; the success page
				// treats 404 as still processing.
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
					return
				}
				log.Printf("Error retrieving Purchase for session [%s]: %s\n", params.SessionID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load purchase"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": purchase})
		})
	return g
}

func stripeWebhookRoute(g *gin.Engine, proc *common.OrderProcessor) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	apiv1.POST("/webhook/stripe", func(ctx *gin.Context) {
		payload, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			log.Printf("Error reading request body: %s\n", err.Error())
			ctx.Status(http.StatusServiceUnavailable)
			return
		}
		whsecret := config.StripeWebhookSecret()
		event, err := webhook.ConstructEvent(payload, ctx.GetHeader("Stripe-Signature"), whsecret)
		if err != nil {
			log.Printf("Error verifying webhook signature: %s\n", err.Error())
			ctx.Status(http.StatusBadRequest)
			return
		}
		log.Printf("[StripeEvent] %s\n", event.Type)
		if event.Type == "checkout.session.completed" {
			var cs stripe.CheckoutSession
			if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
				log.Printf("[Stripe] Error parsing CheckoutSession: %s\n", err.Error())
				ctx.JSON(http.StatusOK, gin.H{"received": true})
				return
			}
			// Everything after signature verification is logged and
			// swallowed; the provider must always get the fixed ack so
			// it does not retry a completed payment.
			if err := fulfillFromSession(proc, &cs); err != nil {
				log.Printf("Error processing checkout session [%s]: %s\n", cs.ID, err.Error())
			}
		}
		ctx.JSON(http.StatusOK, gin.H{"received": true})
	})
	return apiv1
}

func fulfillFromSession(proc *common.OrderProcessor, cs *stripe.CheckoutSession) error {
	md := cs.Metadata
	eventId, err := uuid.Parse(md["event_id"])
	if err != nil {
		return errors.New("missing or invalid event_id in session metadata")
	}
	quantity, err := strconv.Atoi(md["quantity"])
	if err != nil || quantity < 1 {
		return errors.New("missing or invalid quantity in session metadata")
	}
	userName := md["user_name"]
	userEmail := md["user_email"]
	if userName == "" || userEmail == "" {
		return errors.New("missing buyer details in session metadata")
	}
	input := &common.OrderInput{
		EventID:         eventId,
		Quantity:        uint(quantity),
		Name:            userName,
		Email:           userEmail,
		StripeSessionID: &cs.ID,
	}
	if uid, err := uuid.Parse(md["user_id"]); err == nil {
		input.UserID = &uid
	}
	if cs.PaymentIntent != nil {
		input.StripePaymentIntentID = &cs.PaymentIntent.ID
	}
	_, err = proc.Fulfill(input)
	return err
}
