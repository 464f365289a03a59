// Package backend provides the two implementations of the authoritative
// shop service: Local, a sqlite-backed simulation with the same rules as
// the production API, and Remote, an HTTP client for the real thing.
package backend

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gtteam/shop/internal/category"
	"github.com/gtteam/shop/internal/model"
	"github.com/gtteam/shop/internal/store"
)

// Local is the simulated authoritative backend. It owns the server-side
// cart, the catalog with live stock counts, the user balance, and the
// purchase history. All mutating calls are serialized so stock and
// balance arithmetic stays consistent.
type Local struct {
	mu        sync.Mutex
	rewards   *store.RewardStore
	cart      *store.CartStore
	purchases *store.PurchaseStore
	users     *store.UserStore
	userID    string
	logger    *slog.Logger
}

// NewLocal creates a simulated backend operating for the given user.
func NewLocal(db *sql.DB, userID string, logger *slog.Logger) *Local {
	if logger == nil {
		logger = slog.Default()
	}
	return &Local{
		rewards:   store.NewRewardStore(db),
		cart:      store.NewCartStore(db),
		purchases: store.NewPurchaseStore(db),
		users:     store.NewUserStore(db),
		userID:    userID,
		logger:    logger,
	}
}

// FetchAll returns the catalog, tagged with canonical categories and the
// physical classification.
func (l *Local) FetchAll(ctx context.Context) ([]model.Reward, error) {
	rewards, err := l.rewards.List()
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return category.TagAll(rewards), nil
}

// Profile returns the shop user.
func (l *Local) Profile(ctx context.Context) (model.User, error) {
	u, err := l.users.GetByID(l.userID)
	if err != nil {
		return model.User{}, fmt.Errorf("fetch profile: %w", err)
	}
	if u == nil {
		return model.User{}, fmt.Errorf("user %s not found", l.userID)
	}
	return *u, nil
}

// Cart returns the current server-side cart.
func (l *Local) Cart(ctx context.Context) (model.CartResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cartSnapshot(true, "")
}

// Add puts qty units of a reward into the server cart. qty may be
// negative for quantity decreases; the stock check only constrains
// positive deltas.
func (l *Local) Add(ctx context.Context, rewardID string, qty int) (model.CartResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	reward, err := l.rewards.GetByID(rewardID)
	if err != nil {
		return model.CartResponse{}, err
	}
	if reward == nil {
		return l.cartSnapshot(false, fmt.Sprintf("Produsul cu ID %s nu a fost găsit", rewardID))
	}
	if !reward.InStock || reward.StockCount < qty {
		return l.cartSnapshot(false, "Produsul nu este disponibil în cantitatea dorită")
	}

	err = l.cart.Add(model.CartLine{
		RewardID: reward.ID,
		Name:     reward.Name,
		Price:    reward.Price,
		Quantity: qty,
		Image:    reward.Image,
	})
	if err != nil {
		return model.CartResponse{}, err
	}

	return l.cartSnapshot(true, "Produs adăugat în coș cu succes")
}

// Remove deletes a cart line.
func (l *Local) Remove(ctx context.Context, rewardID string) (model.CartResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	deleted, err := l.cart.Delete(rewardID)
	if err != nil {
		return model.CartResponse{}, err
	}
	if !deleted {
		return l.cartSnapshot(false, "Produsul nu a fost găsit în coș")
	}
	return l.cartSnapshot(true, "Produs eliminat din coș")
}

// Checkout settles the server cart: validates the submission and the
// balance, decrements stock (flipping items out of stock at zero),
// records history with AWB numbers for physical items, debits the user,
// and clears the cart.
func (l *Local) Checkout(ctx context.Context, items []model.CartLine) (model.CheckoutResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	user, err := l.users.GetByID(l.userID)
	if err != nil {
		return model.CheckoutResponse{}, err
	}
	if user == nil {
		return model.CheckoutResponse{}, fmt.Errorf("user %s not found", l.userID)
	}

	if len(items) == 0 {
		return model.CheckoutResponse{
			Success:    false,
			Message:    "Coșul este gol",
			NewBalance: user.ActivityPoints,
		}, nil
	}

	total, err := l.cart.Total()
	if err != nil {
		return model.CheckoutResponse{}, err
	}
	if user.ActivityPoints < total {
		return model.CheckoutResponse{
			Success:    false,
			Message:    fmt.Sprintf("Nu ai suficiente puncte. Ai nevoie de %d AP, dar ai doar %d AP.", total, user.ActivityPoints),
			NewBalance: user.ActivityPoints,
		}, nil
	}

	lines, err := l.cart.List()
	if err != nil {
		return model.CheckoutResponse{}, err
	}

	txID := newTransactionID()
	now := time.Now()
	purchased := make([]model.PurchasedItem, 0, len(lines))
	for _, line := range lines {
		reward, err := l.rewards.GetByID(line.RewardID)
		if err != nil {
			return model.CheckoutResponse{}, err
		}

		var awb string
		if reward != nil {
			if err := l.rewards.DecrementStock(reward.ID, line.Quantity); err != nil {
				return model.CheckoutResponse{}, err
			}
			if category.Tag(*reward).Physical {
				awb = newAWBNumber()
			}
		}

		purchased = append(purchased, model.PurchasedItem{
			ID:           txID,
			RewardID:     line.RewardID,
			RewardName:   line.Name,
			PointsSpent:  line.Price * line.Quantity,
			Quantity:     line.Quantity,
			PurchaseDate: now,
			Status:       "completed",
			AWBNumber:    awb,
		})
	}

	newBalance := user.ActivityPoints - total
	if err := l.users.SetPoints(l.userID, newBalance); err != nil {
		return model.CheckoutResponse{}, err
	}
	if err := l.purchases.Record(purchased); err != nil {
		return model.CheckoutResponse{}, err
	}
	if err := l.cart.Clear(); err != nil {
		return model.CheckoutResponse{}, err
	}

	l.logger.Info("checkout settled", "transaction_id", txID, "total", total, "new_balance", newBalance)
	return model.CheckoutResponse{
		Success:        true,
		Message:        fmt.Sprintf("Achiziție finalizată cu succes! Ai cheltuit %d AP.", total),
		NewBalance:     newBalance,
		TransactionID:  txID,
		PurchasedItems: purchased,
	}, nil
}

// SendPoints transfers points to another member, debiting the user.
func (l *Local) SendPoints(ctx context.Context, recipient string, amount int) (model.TransferResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	user, err := l.users.GetByID(l.userID)
	if err != nil {
		return model.TransferResponse{}, err
	}
	if user == nil {
		return model.TransferResponse{}, fmt.Errorf("user %s not found", l.userID)
	}

	if user.ActivityPoints < amount {
		return model.TransferResponse{
			Success:    false,
			Message:    "Puncte insuficiente",
			NewBalance: user.ActivityPoints,
		}, nil
	}

	newBalance := user.ActivityPoints - amount
	if err := l.users.SetPoints(l.userID, newBalance); err != nil {
		return model.TransferResponse{}, err
	}

	l.logger.Info("points sent", "recipient", recipient, "amount", amount)
	return model.TransferResponse{
		Success:    true,
		Message:    "Puncte trimise cu succes",
		NewBalance: newBalance,
	}, nil
}

// History returns the purchase log, newest first.
func (l *Local) History(ctx context.Context) ([]model.PurchasedItem, error) {
	purchases, err := l.purchases.List()
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	return purchases, nil
}

// cartSnapshot builds a response around the current server cart. Callers
// hold l.mu.
func (l *Local) cartSnapshot(success bool, message string) (model.CartResponse, error) {
	lines, err := l.cart.List()
	if err != nil {
		return model.CartResponse{}, err
	}
	total, err := l.cart.Total()
	if err != nil {
		return model.CartResponse{}, err
	}
	return model.CartResponse{
		Success:     success,
		Message:     message,
		Items:       lines,
		TotalPoints: total,
	}, nil
}

func newTransactionID() string {
	return "#" + randomDigits(13)
}

func newAWBNumber() string {
	return "AWBGENTECH" + randomDigits(11)
}

// randomDigits derives an n-digit string from fresh UUIDs.
func randomDigits(n int) string {
	var b strings.Builder
	for b.Len() < n {
		for _, c := range uuid.NewString() {
			if c >= '0' && c <= '9' {
				b.WriteRune(c)
				if b.Len() == n {
					break
				}
			}
		}
	}
	return b.String()
}
