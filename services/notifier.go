package services

import "log"

// Notifier is told about cart changes so a client can surface them
// (the storefront plays a sound and shows a banner). The quantity passed
// to ItemAdded is the amount just added, not the cumulative quantity.
type Notifier interface {
	ItemAdded(name string, quantity int)
	ItemRemoved()
}

type LogNotifier struct{}

func (LogNotifier) ItemAdded(name string, quantity int) {
	log.Printf("Added %d x %s to cart", quantity, name)
}

func (LogNotifier) ItemRemoved() {
	log.Println("Item removed from cart")
}
