package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/stripe/stripe-go/v81"

	"storefront/models"
	"storefront/utils"
)

// Aggregation price policies for duplicate product IDs. "first" keeps the
// price of the first occurrence (the storefront's historical behavior);
// "average" uses the quantity-weighted average across occurrences.
const (
	PolicyFirstPrice      = "first"
	PolicyWeightedAverage = "average"
)

var ErrInvalidItem = errors.New("invalid checkout item")

// SessionCreateFunc submits a hosted-checkout-session request to the
// payment provider. libs.NewStripeSessionCreator builds the real one.
type SessionCreateFunc func(*stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)

type CheckoutOptions struct {
	Currency          string
	SuccessURL        string
	CancelURL         string
	AllowedCountries  []string
	AggregationPolicy string
}

type CheckoutService struct {
	createSession SessionCreateFunc
	opts          CheckoutOptions
}

func NewCheckoutService(createSession SessionCreateFunc, opts CheckoutOptions) *CheckoutService {
	if opts.Currency == "" {
		opts.Currency = "usd"
	}
	if opts.AggregationPolicy == "" {
		opts.AggregationPolicy = PolicyFirstPrice
	}
	return &CheckoutService{createSession: createSession, opts: opts}
}

// AggregatedItem is one provider line item derived from cart entries
// sharing a product ID.
type AggregatedItem struct {
	ID       string
	Name     string
	Image    string
	Price    float64
	Quantity int
}

// Aggregate merges cart entries by product ID, summing quantities and
// resolving the price per the configured policy. Name and image come from
// the first occurrence. Output preserves first-seen order. Any entry that
// fails validation rejects the whole request; an unkeyed entry would
// otherwise collide with every other unkeyed entry.
func (s *CheckoutService) Aggregate(items []models.CartLineEntry) ([]AggregatedItem, error) {
	aggregated := []AggregatedItem{}
	index := map[string]int{}
	weightedSum := map[string]float64{}

	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("%w at index %d: %v", ErrInvalidItem, i, err)
		}

		if pos, ok := index[item.ID]; ok {
			aggregated[pos].Quantity += item.Quantity
			weightedSum[item.ID] += item.Price * float64(item.Quantity)
			continue
		}

		index[item.ID] = len(aggregated)
		weightedSum[item.ID] = item.Price * float64(item.Quantity)
		aggregated = append(aggregated, AggregatedItem{
			ID:       item.ID,
			Name:     item.Name,
			Image:    item.Image,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	if s.opts.AggregationPolicy == PolicyWeightedAverage {
		for i := range aggregated {
			aggregated[i].Price = weightedSum[aggregated[i].ID] / float64(aggregated[i].Quantity)
		}
	}

	return aggregated, nil
}

// CreateSession aggregates the cart and requests a hosted checkout session.
// An empty cart is not rejected here: the provider sees zero line items and
// answers with its own validation error.
func (s *CheckoutService) CreateSession(ctx context.Context, items []models.CartLineEntry) (string, error) {
	aggregated, err := s.Aggregate(items)
	if err != nil {
		return "", err
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(aggregated))
	for _, item := range aggregated {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(s.opts.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:   stripe.String(item.Name),
					Images: stripe.StringSlice([]string{item.Image}),
				},
				UnitAmount: stripe.Int64(utils.ToCents(item.Price)),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(s.opts.SuccessURL),
		CancelURL:          stripe.String(s.opts.CancelURL),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(s.opts.AllowedCountries),
		},
		BillingAddressCollection: stripe.String("required"),
	}
	params.Context = ctx

	session, err := s.createSession(params)
	if err != nil {
		log.Println("Error creating checkout session:", err)
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	return session.ID, nil
}
