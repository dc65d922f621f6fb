package models

import (
	"errors"
	"fmt"
	"math"

	"storefront/utils"
)

var (
	ErrMissingProductID = errors.New("product id is required")
	ErrMissingName      = errors.New("product name is required")
	ErrMissingImage     = errors.New("product image is required")
	ErrInvalidPrice     = errors.New("price must be a positive finite number")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
)

// CartLineEntry is one product/quantity pairing held in a cart.
// Entries are unique by ID; adding the same product again increments
// the existing entry instead of appending a duplicate.
type CartLineEntry struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

func (e CartLineEntry) Validate() error {
	if e.ID == "" {
		return ErrMissingProductID
	}
	if e.Name == "" {
		return ErrMissingName
	}
	if e.Image == "" {
		return ErrMissingImage
	}
	if e.Price <= 0 || math.IsNaN(e.Price) || math.IsInf(e.Price, 0) {
		return ErrInvalidPrice
	}
	if e.Quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

// Cart is an ordered collection of line entries. Insertion order is
// preserved for display. The zero value is an empty, usable cart.
type Cart struct {
	Items []CartLineEntry `json:"items"`
}

// AddOrIncrement validates the entry and merges it into the cart: an
// existing entry with the same ID gets its quantity increased, otherwise
// the entry is appended.
func (c *Cart) AddOrIncrement(entry CartLineEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("invalid cart entry: %w", err)
	}

	for i := range c.Items {
		if c.Items[i].ID == entry.ID {
			c.Items[i].Quantity += entry.Quantity
			return nil
		}
	}

	c.Items = append(c.Items, entry)
	return nil
}

// SetQuantity replaces the quantity of the entry with the given product ID.
// Non-positive quantities and unknown IDs leave the cart unchanged and
// return false so the caller can re-display the prior value.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	if quantity < 1 {
		return false
	}
	for i := range c.Items {
		if c.Items[i].ID == productID {
			c.Items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Remove drops the entry with the given product ID and reports whether
// it was present.
func (c *Cart) Remove(productID string) bool {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

type CartTotals struct {
	TotalPrice float64 `json:"total_price"`
	TotalItems int     `json:"total_items"`
	Skipped    int     `json:"skipped,omitempty"`
}

// Totals sums price*quantity and item counts across the cart. Entries that
// fail validation (possible when the persisted copy was tampered with) are
// skipped and counted in Skipped rather than aborting the whole cart.
func (c *Cart) Totals() CartTotals {
	totals := CartTotals{}
	var sum float64
	for _, entry := range c.Items {
		if err := entry.Validate(); err != nil {
			totals.Skipped++
			continue
		}
		sum += entry.Price * float64(entry.Quantity)
		totals.TotalItems += entry.Quantity
	}
	totals.TotalPrice = utils.RoundCurrency(sum)
	return totals
}

// CanCheckout reports whether the cart has anything to check out.
func (c *Cart) CanCheckout() bool {
	return len(c.Items) > 0
}
