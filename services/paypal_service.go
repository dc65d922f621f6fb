package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/plutov/paypal/v4"
)

var ErrMissingCaptureField = errors.New("missing orderId or payerId")

// ProviderRejectedError carries a 400-class rejection from the provider so
// the handler can forward the provider's own message instead of a generic
// failure.
type ProviderRejectedError struct {
	Message string
}

func (e *ProviderRejectedError) Error() string {
	return "provider rejected capture: " + e.Message
}

// OrderCapturer is the slice of the PayPal client the capture forwarder
// needs. *paypal.Client satisfies it.
type OrderCapturer interface {
	CaptureOrder(ctx context.Context, orderID string, request paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error)
}

// PayPalService forwards a single best-effort capture request for an
// authorized order. No retries.
type PayPalService struct {
	capturer OrderCapturer
}

func NewPayPalService(capturer OrderCapturer) *PayPalService {
	return &PayPalService{capturer: capturer}
}

func (s *PayPalService) Capture(ctx context.Context, orderID, payerID string) (*paypal.CaptureOrderResponse, error) {
	if orderID == "" || payerID == "" {
		return nil, ErrMissingCaptureField
	}
	if s.capturer == nil {
		return nil, errors.New("paypal client is not configured")
	}

	capture, err := s.capturer.CaptureOrder(ctx, orderID, paypal.CaptureOrderRequest{})
	if err != nil {
		log.Println("Error capturing PayPal payment:", err)

		var providerErr *paypal.ErrorResponse
		if errors.As(err, &providerErr) && providerErr.Response != nil &&
			providerErr.Response.StatusCode == http.StatusBadRequest {
			return nil, &ProviderRejectedError{Message: providerErr.Message}
		}
		return nil, fmt.Errorf("payment capture failed: %w", err)
	}

	log.Println("Capture successful:", capture.ID)
	return capture, nil
}
