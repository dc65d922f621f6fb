package services

import (
	"context"
	"errors"

	"storefront/models"
	"storefront/repositories"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrItemNotFound    = errors.New("item not found in cart")
)

// CartService owns every cart mutation: load the persisted cart, apply the
// change, write the whole cart back before returning. A failed validation
// aborts with no write, so the stored copy never holds partial state.
type CartService struct {
	store    repositories.CartStore
	notifier Notifier
}

func NewCartService(store repositories.CartStore, notifier Notifier) *CartService {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &CartService{store: store, notifier: notifier}
}

func (s *CartService) Get(ctx context.Context, cartID string) (models.Cart, error) {
	return s.store.Load(ctx, cartID)
}

func (s *CartService) AddItem(ctx context.Context, cartID string, entry models.CartLineEntry) (models.Cart, error) {
	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return models.Cart{}, err
	}

	if err := cart.AddOrIncrement(entry); err != nil {
		return cart, err
	}

	if err := s.store.Save(ctx, cartID, cart); err != nil {
		return cart, err
	}

	s.notifier.ItemAdded(entry.Name, entry.Quantity)
	return cart, nil
}

func (s *CartService) SetQuantity(ctx context.Context, cartID, productID string, quantity int) (models.Cart, error) {
	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return models.Cart{}, err
	}

	if quantity < 1 {
		return cart, ErrInvalidQuantity
	}
	if !cart.SetQuantity(productID, quantity) {
		return cart, ErrItemNotFound
	}

	if err := s.store.Save(ctx, cartID, cart); err != nil {
		return cart, err
	}
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, cartID, productID string) (models.Cart, error) {
	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return models.Cart{}, err
	}

	if !cart.Remove(productID) {
		return cart, ErrItemNotFound
	}

	if err := s.store.Save(ctx, cartID, cart); err != nil {
		return cart, err
	}

	s.notifier.ItemRemoved()
	return cart, nil
}
