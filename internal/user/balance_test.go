package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtteam/shop/internal/model"
)

func testUser() model.User {
	return model.User{ID: "88", Name: "Alfred Pennyworth", ActivityPoints: 4800}
}

type fakeTransfer struct {
	resp  model.TransferResponse
	err   error
	calls int
}

func (f *fakeTransfer) SendPoints(ctx context.Context, recipient string, amount int) (model.TransferResponse, error) {
	f.calls++
	return f.resp, f.err
}

func TestSetPointsNotifiesListeners(t *testing.T) {
	b := NewBalance(testUser(), nil)

	var seen []int
	b.OnChange(func(p int) { seen = append(seen, p) })
	b.OnChange(func(p int) { seen = append(seen, p*2) })

	require.NoError(t, b.SetPoints(4300))

	assert.Equal(t, 4300, b.Points())
	assert.Equal(t, []int{4300, 8600}, seen)
}

func TestSetPointsRejectsNegative(t *testing.T) {
	b := NewBalance(testUser(), nil)

	err := b.SetPoints(-1)

	assert.ErrorIs(t, err, ErrNegativePoints)
	assert.Equal(t, 4800, b.Points())
}

func TestSendValidatesLocally(t *testing.T) {
	backend := &fakeTransfer{}
	b := NewBalance(testUser(), nil)

	assert.ErrorIs(t, b.Send(context.Background(), backend, "", 100), ErrEmptyRecipient)
	assert.ErrorIs(t, b.Send(context.Background(), backend, "robin", 0), ErrInvalidAmount)
	assert.ErrorIs(t, b.Send(context.Background(), backend, "robin", 5000), ErrInsufficientPoints)
	assert.Equal(t, 0, backend.calls, "local validation must not reach the backend")
}

func TestSendAppliesNewBalance(t *testing.T) {
	backend := &fakeTransfer{resp: model.TransferResponse{Success: true, NewBalance: 4700}}
	b := NewBalance(testUser(), nil)

	var notified int
	b.OnChange(func(p int) { notified = p })

	require.NoError(t, b.Send(context.Background(), backend, "robin", 100))
	assert.Equal(t, 4700, b.Points())
	assert.Equal(t, 4700, notified)
}

func TestSendSurfacesBackendFailure(t *testing.T) {
	backend := &fakeTransfer{resp: model.TransferResponse{Success: false, Message: "Puncte insuficiente"}}
	b := NewBalance(testUser(), nil)

	err := b.Send(context.Background(), backend, "robin", 100)

	require.Error(t, err)
	assert.Equal(t, "Puncte insuficiente", err.Error())
	assert.Equal(t, 4800, b.Points())
}

func TestSendTransportError(t *testing.T) {
	backend := &fakeTransfer{err: errors.New("timeout")}
	b := NewBalance(testUser(), nil)

	err := b.Send(context.Background(), backend, "robin", 100)

	require.Error(t, err)
	assert.Equal(t, 4800, b.Points())
}
