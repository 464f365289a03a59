// Package event carries cross-component notifications that in the
// storefront's earlier life were DOM custom events. Listeners register
// explicitly; every listener registered at emit time is invoked.
package event

import (
	"sync"

	"github.com/gtteam/shop/internal/model"
)

// CheckoutSucceeded is published after a confirmed checkout, for history
// and audit consumers.
type CheckoutSucceeded struct {
	TransactionID  string
	NewBalance     int
	PurchasedItems []model.PurchasedItem
}

// Bus fans events out to registered listeners. Safe for concurrent use.
type Bus struct {
	mu       sync.RWMutex
	checkout []func(CheckoutSucceeded)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// SubscribeCheckout registers a listener for checkout successes.
func (b *Bus) SubscribeCheckout(fn func(CheckoutSucceeded)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.checkout = append(b.checkout, fn)
}

// PublishCheckout delivers the event to all currently registered
// listeners, synchronously and in registration order.
func (b *Bus) PublishCheckout(e CheckoutSucceeded) {
	b.mu.RLock()
	listeners := append(([]func(CheckoutSucceeded))(nil), b.checkout...)
	b.mu.RUnlock()

	for _, fn := range listeners {
		fn(e)
	}
}
