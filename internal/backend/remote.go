package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/gtteam/shop/internal/category"
	"github.com/gtteam/shop/internal/model"
)

const (
	defaultTimeout   = 10 * time.Second
	retryBaseDelay   = time.Second
	retryMaxAttempts = 3
)

// Remote talks to a deployed shop service over HTTP. Transport errors
// and 5xx responses are retried with exponential backoff; business
// refusals come back as unsuccessful responses, not errors, so they are
// never retried.
type Remote struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewRemote creates a client for the service at baseURL.
func NewRemote(baseURL string, logger *slog.Logger) *Remote {
	if logger == nil {
		logger = slog.Default()
	}
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

type addRequest struct {
	RewardID string `json:"rewardId"`
	Quantity int    `json:"quantity"`
}

type removeRequest struct {
	RewardID string `json:"rewardId"`
}

type checkoutRequest struct {
	Items []model.CartLine `json:"items"`
}

type giftRequest struct {
	Recipient string `json:"recipient"`
	Amount    int    `json:"amount"`
}

type rewardsResponse struct {
	Rewards []model.Reward `json:"rewards"`
}

type historyResponse struct {
	Purchases []model.PurchasedItem `json:"purchases"`
}

type apiError struct {
	Message string `json:"message"`
}

// FetchAll retrieves the catalog and tags it locally.
func (r *Remote) FetchAll(ctx context.Context) ([]model.Reward, error) {
	var out rewardsResponse
	if err := r.do(ctx, http.MethodGet, "/api/rewards", nil, &out); err != nil {
		return nil, err
	}
	return category.TagAll(out.Rewards), nil
}

// Profile retrieves the shop user.
func (r *Remote) Profile(ctx context.Context) (model.User, error) {
	var out model.User
	if err := r.do(ctx, http.MethodGet, "/api/user/profile", nil, &out); err != nil {
		return model.User{}, err
	}
	return out, nil
}

// Cart retrieves the server-side cart.
func (r *Remote) Cart(ctx context.Context) (model.CartResponse, error) {
	var out model.CartResponse
	if err := r.do(ctx, http.MethodGet, "/api/cart", nil, &out); err != nil {
		return model.CartResponse{}, err
	}
	return out, nil
}

// Add puts qty units of a reward into the server cart.
func (r *Remote) Add(ctx context.Context, rewardID string, qty int) (model.CartResponse, error) {
	var out model.CartResponse
	err := r.do(ctx, http.MethodPost, "/api/cart/add", addRequest{RewardID: rewardID, Quantity: qty}, &out)
	if err != nil {
		return model.CartResponse{}, err
	}
	return out, nil
}

// Remove deletes a cart line.
func (r *Remote) Remove(ctx context.Context, rewardID string) (model.CartResponse, error) {
	var out model.CartResponse
	err := r.do(ctx, http.MethodPost, "/api/cart/remove", removeRequest{RewardID: rewardID}, &out)
	if err != nil {
		return model.CartResponse{}, err
	}
	return out, nil
}

// Checkout submits the cart for settlement.
func (r *Remote) Checkout(ctx context.Context, items []model.CartLine) (model.CheckoutResponse, error) {
	var out model.CheckoutResponse
	err := r.do(ctx, http.MethodPost, "/api/checkout", checkoutRequest{Items: items}, &out)
	if err != nil {
		return model.CheckoutResponse{}, err
	}
	return out, nil
}

// SendPoints transfers points to another member.
func (r *Remote) SendPoints(ctx context.Context, recipient string, amount int) (model.TransferResponse, error) {
	var out model.TransferResponse
	err := r.do(ctx, http.MethodPost, "/api/user/gift", giftRequest{Recipient: recipient, Amount: amount}, &out)
	if err != nil {
		return model.TransferResponse{}, err
	}
	return out, nil
}

// History retrieves the purchase log, newest first.
func (r *Remote) History(ctx context.Context) ([]model.PurchasedItem, error) {
	var out historyResponse
	if err := r.do(ctx, http.MethodGet, "/api/user/history", nil, &out); err != nil {
		return nil, err
	}
	return out.Purchases, nil
}

// Health probes the service.
func (r *Remote) Health(ctx context.Context) error {
	return r.do(ctx, http.MethodGet, "/health", nil, nil)
}

// do performs one API call with retries. A nil out skips decoding.
func (r *Remote) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	backoff := retry.WithMaxRetries(retryMaxAttempts-1, retry.NewExponential(retryBaseDelay))
	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			r.logger.Warn("retrying api call", "path", path, "attempt", attempt)
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := r.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("request %s: %w", path, err))
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			return retry.RetryableError(fmt.Errorf("%s: status %d", path, resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			var apiErr apiError
			if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Message != "" {
				return fmt.Errorf("%s: %s", path, apiErr.Message)
			}
			return fmt.Errorf("%s: status %d", path, resp.StatusCode)
		}

		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	})
}
