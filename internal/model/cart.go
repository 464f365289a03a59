package model

import "time"

// CartLine is one entry in a cart. Price is a snapshot taken when the
// item was added; RewardID is a weak reference into the catalog.
type CartLine struct {
	RewardID string `json:"rewardId"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
}

// CartState is the full client-side cart model. It is owned by the cart
// reconciler and replaced wholesale from backend responses.
type CartState struct {
	Items       []CartLine `json:"items"`
	TotalPoints int        `json:"totalPoints"`
	LastUpdated time.Time  `json:"lastUpdated"`
}

// Total recomputes the point total from the lines.
func (s CartState) Total() int {
	total := 0
	for _, line := range s.Items {
		total += line.Price * line.Quantity
	}
	return total
}

// Line returns the line for the given reward, or nil if absent.
func (s CartState) Line(rewardID string) *CartLine {
	for i := range s.Items {
		if s.Items[i].RewardID == rewardID {
			return &s.Items[i]
		}
	}
	return nil
}

// CartResponse is the authoritative cart returned by every mutating
// backend call.
type CartResponse struct {
	Success     bool       `json:"success"`
	Message     string     `json:"message,omitempty"`
	Items       []CartLine `json:"items"`
	TotalPoints int        `json:"totalPoints"`
}

// PurchasedItem is one line of a completed checkout. AWBNumber is set
// only for physical items that produced a shipment.
type PurchasedItem struct {
	ID           string    `json:"id"`
	RewardID     string    `json:"rewardId"`
	RewardName   string    `json:"rewardName"`
	PointsSpent  int       `json:"pointsSpent"`
	Quantity     int       `json:"quantity"`
	PurchaseDate time.Time `json:"purchaseDate"`
	Status       string    `json:"status"`
	AWBNumber    string    `json:"awbNumber,omitempty"`
}

// Physical reports whether the purchase produced a shipment tracking
// identifier.
func (p PurchasedItem) Physical() bool {
	return p.AWBNumber != ""
}

// CheckoutResponse is the backend's answer to a checkout submission.
type CheckoutResponse struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message,omitempty"`
	NewBalance     int             `json:"newBalance"`
	TransactionID  string          `json:"transactionId,omitempty"`
	PurchasedItems []PurchasedItem `json:"purchasedItems,omitempty"`
}

// TransferResponse is the backend's answer to a peer-to-peer points
// transfer.
type TransferResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	NewBalance int    `json:"newBalance"`
}
