package libs

import (
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"

	"storefront/config"
	"storefront/services"
)

// NewStripeSessionCreator binds the secret key and returns the
// session-create function injected into the checkout service.
func NewStripeSessionCreator() services.SessionCreateFunc {
	stripe.Key = config.AppConfig.StripeSecretKey
	return func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
		return session.New(params)
	}
}
