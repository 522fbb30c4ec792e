// Package billing wraps the Stripe API. It is the only code path allowed
// to change an agency's plan slug.
package billing

import (
	"fmt"

	"github.com/stripe/stripe-go/v81"
	checkoutsession "github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/customer"
	"github.com/stripe/stripe-go/v81/webhook"
)

type Config struct {
	SecretKey     string
	WebhookSecret string
	ProPriceID    string
	SuccessURL    string
	CancelURL     string
}

// Gateway is the Stripe surface the billing use cases need.
type Gateway interface {
	CreateCustomer(agencyName, email string) (string, error)
	CreateCheckoutSession(customerID string, agencyID uint) (string, error)
	VerifyWebhook(payload []byte, signature string) (stripe.Event, error)
}

type StripeGateway struct {
	config Config
}

func NewStripeGateway(config Config) *StripeGateway {
	stripe.Key = config.SecretKey
	return &StripeGateway{config: config}
}

func (g *StripeGateway) CreateCustomer(agencyName, email string) (string, error) {
	params := &stripe.CustomerParams{
		Name:  stripe.String(agencyName),
		Email: stripe.String(email),
	}

	c, err := customer.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create stripe customer: %w", err)
	}

	return c.ID, nil
}

// CreateCheckoutSession opens a subscription checkout for the PRO plan.
// The agency ID travels in session metadata so the webhook can map the
// completed checkout back to a tenant.
func (g *StripeGateway) CreateCheckoutSession(customerID string, agencyID uint) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Customer:   stripe.String(customerID),
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(g.config.SuccessURL),
		CancelURL:  stripe.String(g.config.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(g.config.ProPriceID),
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: map[string]string{
			"agency_id": fmt.Sprintf("%d", agencyID),
		},
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	return s.URL, nil
}

func (g *StripeGateway) VerifyWebhook(payload []byte, signature string) (stripe.Event, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.config.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return stripe.Event{}, fmt.Errorf("failed to verify webhook signature: %w", err)
	}

	return event, nil
}
