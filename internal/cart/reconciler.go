package cart

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gtteam/shop/internal/model"
)

// Messages surfaced when the backend gives none.
const (
	msgAddFailed      = "Nu s-a putut adăuga în coș"
	msgRemoveFailed   = "Nu s-a putut elimina produsul"
	msgQuantityFailed = "Nu s-a putut actualiza cantitatea"
	msgBusy           = "O altă operație pe coș este în curs"
	msgTotalsMismatch = "Totalul coșului nu corespunde cu răspunsul serverului"
)

// Backend is the authoritative cart service. Every mutating call returns
// the full post-mutation cart, which replaces local state wholesale.
type Backend interface {
	Cart(ctx context.Context) (model.CartResponse, error)
	Add(ctx context.Context, rewardID string, qty int) (model.CartResponse, error)
	Remove(ctx context.Context, rewardID string) (model.CartResponse, error)
	Checkout(ctx context.Context, items []model.CartLine) (model.CheckoutResponse, error)
}

// AddressCollector is signalled, fire-and-forget, when a physical product
// enters the cart or ships after checkout.
type AddressCollector interface {
	RequestOpen()
}

// Direction is a quantity adjustment on an existing cart line.
type Direction string

const (
	Increase Direction = "increase"
	Decrease Direction = "decrease"
)

// DefaultAddressDelay spaces the address-collection signal away from the
// success notification.
const DefaultAddressDelay = 300 * time.Millisecond

// Reconciler owns the local cart model and keeps it consistent with the
// backend. Mutating operations are single-flight: a call that arrives
// while another is in flight is rejected with a busy failure instead of
// racing.
type Reconciler struct {
	mu      sync.Mutex
	backend Backend
	address AddressCollector
	logger  *slog.Logger

	state        model.CartState
	loading      bool
	addressDelay time.Duration
}

// NewReconciler creates a reconciler with an empty cart. The address
// collector may be nil when no shipment flow exists.
func NewReconciler(backend Backend, address AddressCollector, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		backend:      backend,
		address:      address,
		logger:       logger,
		addressDelay: DefaultAddressDelay,
	}
}

// State returns a copy of the current cart state.
func (r *Reconciler) State() model.CartState {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.state
	s.Items = append([]model.CartLine{}, r.state.Items...)
	return s
}

// Loading reports whether a mutating call is in flight.
func (r *Reconciler) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

// begin marks a mutating operation in flight, or reports busy.
func (r *Reconciler) begin() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loading {
		return false
	}
	r.loading = true
	return true
}

// end clears the in-flight flag. Deferred on every mutating path so the
// flag can never stay stuck after a failure.
func (r *Reconciler) end() {
	r.mu.Lock()
	r.loading = false
	r.mu.Unlock()
}

// Load fetches the current authoritative cart and replaces local state.
func (r *Reconciler) Load(ctx context.Context) Result {
	if !r.begin() {
		return failure(FailBusy, msgBusy)
	}
	defer r.end()

	resp, err := r.backend.Cart(ctx)
	if err != nil {
		r.logger.Error("load cart", "error", err)
		return failure(FailTransport, "Nu am putut încărca coșul")
	}

	r.replace(resp.Items, resp.TotalPoints)
	return success("")
}

// AddItem adds qty units of the reward to the cart. On success the cart
// is replaced from the response and, for physical products, the address
// collector is signalled after a short delay. On failure local state is
// left untouched. reward must not be nil.
func (r *Reconciler) AddItem(ctx context.Context, reward *model.Reward, qty int) Result {
	if reward == nil || reward.ID == "" {
		panic("cart: AddItem called with nil or empty reward")
	}
	if qty < 1 {
		return failure(FailValidation, "Cantitate invalidă")
	}
	if !r.begin() {
		return failure(FailBusy, msgBusy)
	}
	defer r.end()

	res := r.mutate(ctx, reward.ID, qty, msgAddFailed)
	if res.OK && reward.Physical && r.address != nil {
		time.AfterFunc(r.addressDelay, r.address.RequestOpen)
	}
	return res
}

// ChangeQuantity adjusts an existing line by one unit in the given
// direction. Decreasing a line already at quantity 1 is a local no-op,
// quantities never reach zero through this path. The line must exist.
func (r *Reconciler) ChangeQuantity(ctx context.Context, rewardID string, dir Direction) Result {
	if dir != Increase && dir != Decrease {
		return failure(FailValidation, "Direcție necunoscută")
	}
	if !r.begin() {
		return failure(FailBusy, msgBusy)
	}
	defer r.end()

	r.mu.Lock()
	line := r.state.Line(rewardID)
	if line == nil {
		r.mu.Unlock()
		return failure(FailNotFound, "Produsul nu a fost găsit în coș")
	}
	quantity := line.Quantity
	r.mu.Unlock()

	delta := 1
	if dir == Decrease {
		if quantity <= 1 {
			return success("")
		}
		delta = -1
	}

	return r.mutate(ctx, rewardID, delta, msgQuantityFailed)
}

// RemoveItem removes the line for the reward. A line that is not present
// is a structured not-found failure, never a panic.
func (r *Reconciler) RemoveItem(ctx context.Context, rewardID string) Result {
	if !r.begin() {
		return failure(FailBusy, msgBusy)
	}
	defer r.end()

	resp, err := r.backend.Remove(ctx, rewardID)
	if err != nil {
		r.logger.Error("remove from cart", "reward_id", rewardID, "error", err)
		return failure(FailTransport, msgRemoveFailed)
	}
	if !resp.Success {
		return failure(FailNotFound, fallback(resp.Message, msgRemoveFailed))
	}

	return r.accept(resp)
}

// Checkout submits the current line list and returns the backend's
// answer verbatim. Preconditions and side effects are owned by the
// checkout coordinator; local cart state is not touched here.
func (r *Reconciler) Checkout(ctx context.Context) (model.CheckoutResponse, Result) {
	if !r.begin() {
		return model.CheckoutResponse{}, failure(FailBusy, msgBusy)
	}
	defer r.end()

	items := r.State().Items
	resp, err := r.backend.Checkout(ctx, items)
	if err != nil {
		r.logger.Error("checkout", "error", err)
		return model.CheckoutResponse{}, failure(FailTransport, "Eroare la procesarea comenzii")
	}
	if !resp.Success {
		return resp, failure(FailBusinessRule, fallback(resp.Message, "Comanda nu a putut fi procesată"))
	}
	return resp, success(resp.Message)
}

// Clear resets the local cart without a server round-trip. Used after a
// confirmed checkout.
func (r *Reconciler) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = model.CartState{Items: []model.CartLine{}, LastUpdated: time.Now()}
}

// mutate performs an add-primitive call and reconciles the response.
// Callers hold the in-flight flag.
func (r *Reconciler) mutate(ctx context.Context, rewardID string, qty int, genericMsg string) Result {
	resp, err := r.backend.Add(ctx, rewardID, qty)
	if err != nil {
		r.logger.Error("cart mutation", "reward_id", rewardID, "qty", qty, "error", err)
		return failure(FailTransport, genericMsg)
	}
	if !resp.Success {
		return failure(FailBusinessRule, fallback(resp.Message, genericMsg))
	}

	return r.accept(resp)
}

// accept replaces local state from a successful response and verifies
// the total invariant. The server value is authoritative; a mismatch is
// surfaced as an integrity failure so it can be caught instead of
// silently trusted.
func (r *Reconciler) accept(resp model.CartResponse) Result {
	r.replace(resp.Items, resp.TotalPoints)

	if recomputed := r.State().Total(); recomputed != resp.TotalPoints {
		r.logger.Error("cart total mismatch",
			"server_total", resp.TotalPoints,
			"recomputed", recomputed)
		return failure(FailIntegrity, msgTotalsMismatch)
	}
	return success(resp.Message)
}

func (r *Reconciler) replace(items []model.CartLine, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if items == nil {
		items = []model.CartLine{}
	}
	r.state = model.CartState{
		Items:       items,
		TotalPoints: total,
		LastUpdated: time.Now(),
	}
}

func fallback(msg, generic string) string {
	if msg != "" {
		return msg
	}
	return generic
}
