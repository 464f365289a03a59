// Package checkout orchestrates the cart-to-purchase flow: precondition
// checks, submission, balance propagation, cart clearing, and follow-up
// signals for physical shipments.
package checkout

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gtteam/shop/internal/cart"
	"github.com/gtteam/shop/internal/event"
	"github.com/gtteam/shop/internal/model"
)

// State is the coordinator's position in the cart lifecycle.
type State string

const (
	Idle       State = "idle"
	Submitting State = "submitting"
)

// DefaultAddressDelay spaces the address-collection request away from
// the success notification so the two do not collide visually.
const DefaultAddressDelay = 500 * time.Millisecond

const msgCartEmpty = "Coșul este gol"

// BalanceSink receives the authoritative post-checkout balance.
type BalanceSink interface {
	SetPoints(points int) error
}

// Coordinator drives a checkout from Idle through Submitting and back.
// A second Submit while one is in flight is rejected as busy.
type Coordinator struct {
	mu           sync.Mutex
	state        State
	reconciler   *cart.Reconciler
	balance      BalanceSink
	address      cart.AddressCollector
	bus          *event.Bus
	logger       *slog.Logger
	addressDelay time.Duration
}

// NewCoordinator wires a coordinator. The address collector may be nil;
// the bus may be nil when nothing consumes checkout events.
func NewCoordinator(reconciler *cart.Reconciler, balance BalanceSink, address cart.AddressCollector, bus *event.Bus, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		state:        Idle,
		reconciler:   reconciler,
		balance:      balance,
		address:      address,
		bus:          bus,
		logger:       logger,
		addressDelay: DefaultAddressDelay,
	}
}

// State returns the coordinator's current state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit runs one checkout. An empty cart fails immediately with a
// cart-empty result and no backend call. On success, in order: the new
// balance is pushed to the sink (which broadcasts it), the cart is
// cleared, a delayed address-collection request is scheduled if any
// purchased item shipped physically, and a checkout-succeeded event is
// published. On any failure the cart is left untouched.
func (c *Coordinator) Submit(ctx context.Context) cart.Result {
	c.mu.Lock()
	if c.state == Submitting {
		c.mu.Unlock()
		return cart.Result{Kind: cart.FailBusy, Message: "O comandă este deja în curs"}
	}
	c.state = Submitting
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.state = Idle
		c.mu.Unlock()
	}()

	if len(c.reconciler.State().Items) == 0 {
		return cart.Result{Kind: cart.FailEmptyCart, Message: msgCartEmpty}
	}

	resp, res := c.reconciler.Checkout(ctx)
	if !res.OK {
		return res
	}

	if err := c.balance.SetPoints(resp.NewBalance); err != nil {
		// The purchase went through; a bad balance value is a backend
		// bug worth logging, not a reason to keep a spent cart around.
		c.logger.Error("apply checkout balance", "balance", resp.NewBalance, "error", err)
	}

	c.reconciler.Clear()

	if c.address != nil && anyPhysical(resp.PurchasedItems) {
		time.AfterFunc(c.addressDelay, c.address.RequestOpen)
	}

	if c.bus != nil {
		c.bus.PublishCheckout(event.CheckoutSucceeded{
			TransactionID:  resp.TransactionID,
			NewBalance:     resp.NewBalance,
			PurchasedItems: resp.PurchasedItems,
		})
	}

	c.logger.Info("checkout complete",
		"transaction_id", resp.TransactionID,
		"items", len(resp.PurchasedItems),
		"new_balance", resp.NewBalance)
	return res
}

func anyPhysical(items []model.PurchasedItem) bool {
	for _, item := range items {
		if item.Physical() {
			return true
		}
	}
	return false
}
