package lib

import (
	"context"
	"fmt"
	"math"
	"os"

	"etix/src/config"
	"etix/src/models"

	"github.com/stripe/stripe-go/v82"
)

var stripeClient *stripe.Client

func GetStripeClient() *stripe.Client {
	if stripeClient != nil {
		return stripeClient
	}
	apiKey := os.Getenv("STRIPE_SECRET_KEY")
	sc := stripe.NewClient(apiKey)
	stripeClient = sc

	return sc
}

// NewStripeClient Replace stripe instance with custom client implementation
func NewStripeClient(c *stripe.Client) {
	stripeClient = c
}

type CheckoutOrderInput struct {
	Event    *models.Event
	Quantity int
	Name     string
	Email    string
	UserID   string
}

// CreateCheckoutSession opens a hosted checkout page for a ticket order.
// The order fields ride along as session metadata; no Ticket or Purchase
// rows are written until the payment-completed callback arrives.
func CreateCheckoutSession(ctx context.Context, input *CheckoutOrderInput) (*stripe.CheckoutSession, error) {
	event := input.Event
	appHost := config.AppHost()
	plural := ""
	if input.Quantity > 1 {
		plural = "s"
	}
	params := &stripe.CheckoutSessionCreateParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency: stripe.String("gbp"),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("%s - %d Ticket%s", event.Title, input.Quantity, plural)),
						Description: stripe.String(fmt.Sprintf("Event: %s\nDate: %s\nLocation: %s", event.Title, event.Date.Format("02/01/2006"), event.Location)),
					},
					UnitAmount: stripe.Int64(int64(math.Round(event.Price * 100))),
				},
				Quantity: stripe.Int64(int64(input.Quantity)),
			},
		},
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(input.Email),
		Metadata: map[string]string{
			"event_id":   event.ID.String(),
			"quantity":   fmt.Sprintf("%d", input.Quantity),
			"user_name":  input.Name,
			"user_email": input.Email,
			"user_id":    input.UserID,
		},
		SuccessURL: stripe.String(appHost + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(fmt.Sprintf("%s/events/%s?canceled=true", appHost, event.ID)),
	}
	if event.ImageURL != nil {
		params.LineItems[0].PriceData.ProductData.Images = stripe.StringSlice([]string{*event.ImageURL})
	}
	sc := GetStripeClient()
	return sc.V1CheckoutSessions.Create(ctx, params)
}
