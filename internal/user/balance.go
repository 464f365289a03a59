package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gtteam/shop/internal/model"
)

var (
	ErrNegativePoints     = errors.New("points must be >= 0")
	ErrEmptyRecipient     = errors.New("recipient is required")
	ErrInvalidAmount      = errors.New("amount must be > 0")
	ErrInsufficientPoints = errors.New("insufficient points")
)

// TransferBackend sends activity points to another member.
type TransferBackend interface {
	SendPoints(ctx context.Context, recipient string, amount int) (model.TransferResponse, error)
}

// Balance holds the current user and their spendable activity points.
// It is the single outward sink for balance updates: every change goes
// through SetPoints, which notifies registered listeners.
type Balance struct {
	mu        sync.RWMutex
	user      model.User
	listeners []func(int)
	logger    *slog.Logger
}

// NewBalance creates a balance holder for the given user.
func NewBalance(u model.User, logger *slog.Logger) *Balance {
	if logger == nil {
		logger = slog.Default()
	}
	return &Balance{user: u, logger: logger}
}

// User returns a copy of the current user.
func (b *Balance) User() model.User {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.user
}

// Points returns the current activity point balance.
func (b *Balance) Points() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.user.ActivityPoints
}

// SetPoints replaces the balance and notifies listeners. Negative values
// are rejected locally.
func (b *Balance) SetPoints(points int) error {
	if points < 0 {
		return ErrNegativePoints
	}

	b.mu.Lock()
	b.user.ActivityPoints = points
	listeners := append(([]func(int))(nil), b.listeners...)
	b.mu.Unlock()

	b.logger.Debug("balance updated", "points", points)
	for _, fn := range listeners {
		fn(points)
	}
	return nil
}

// OnChange registers a listener invoked after every balance update.
func (b *Balance) OnChange(fn func(int)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, fn)
}

// Send transfers amount points to recipient through the backend and, on
// success, applies the returned balance. Validation failures are
// resolved locally without a round-trip.
func (b *Balance) Send(ctx context.Context, backend TransferBackend, recipient string, amount int) error {
	if recipient == "" {
		return ErrEmptyRecipient
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > b.Points() {
		return ErrInsufficientPoints
	}

	resp, err := backend.SendPoints(ctx, recipient, amount)
	if err != nil {
		return fmt.Errorf("send points: %w", err)
	}
	if !resp.Success {
		if resp.Message != "" {
			return errors.New(resp.Message)
		}
		return errors.New("transfer failed")
	}

	return b.SetPoints(resp.NewBalance)
}
