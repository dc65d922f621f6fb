package libs

import (
	"fmt"

	"github.com/plutov/paypal/v4"

	"storefront/config"
)

// NewPayPalClient builds the capture client against the sandbox or live
// API base depending on PAYPAL_ENV.
func NewPayPalClient() (*paypal.Client, error) {
	apiBase := paypal.APIBaseSandBox
	if config.AppConfig.PayPalEnv == "live" {
		apiBase = paypal.APIBaseLive
	}

	client, err := paypal.NewClient(config.AppConfig.PayPalClientID, config.AppConfig.PayPalSecret, apiBase)
	if err != nil {
		return nil, fmt.Errorf("failed to create PayPal client: %w", err)
	}
	return client, nil
}
