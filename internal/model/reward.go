package model

import "time"

// Reward is a catalog item redeemable for activity points.
//
// NormalizedCategory and Physical are derived once when the catalog is
// loaded (see internal/category); the raw Category string is kept for
// display and for the default catalog sort.
type Reward struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	FullDescription    string    `json:"fullDescription"`
	Price              int       `json:"price"`
	Image              string    `json:"image"`
	Category           string    `json:"category"`
	NormalizedCategory string    `json:"normalizedCategory,omitempty"`
	InStock            bool      `json:"inStock"`
	StockCount         int       `json:"stockCount"`
	Physical           bool      `json:"physical,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}
