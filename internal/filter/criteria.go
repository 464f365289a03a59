package filter

import (
	"fmt"
	"strings"
	"time"
)

// SortKey selects the ordering applied after filtering. The values match
// the storefront's sort menu labels.
type SortKey string

const (
	SortCategories SortKey = "categorii"
	SortPriceAsc   SortKey = "preț crescător"
	SortPriceDesc  SortKey = "preț descrescător"
	SortNameAsc    SortKey = "ordine a-z"
	SortNameDesc   SortKey = "ordine z-a"
	SortNewest     SortKey = "cele mai noi"
)

const (
	// DefaultPriceMin and DefaultPriceMax are the catalog-wide default
	// price bounds.
	DefaultPriceMin = 15
	DefaultPriceMax = 6000

	// MinSearchLength is the shortest non-empty query that filters;
	// shorter queries pass everything instead of matching nothing.
	MinSearchLength = 2

	// DefaultSearchDebounce is how long the engine waits after the last
	// search keystroke before re-deriving.
	DefaultSearchDebounce = 300 * time.Millisecond
)

// Criteria holds the active filter and sort settings.
type Criteria struct {
	Search     string
	Categories []string
	PriceMin   int
	PriceMax   int
	SortBy     SortKey
}

// DefaultCriteria returns the storefront defaults: no search, no category
// restriction, full price range, category grouping.
func DefaultCriteria() Criteria {
	return Criteria{
		PriceMin: DefaultPriceMin,
		PriceMax: DefaultPriceMax,
		SortBy:   SortCategories,
	}
}

// ParseSortKey resolves a menu label to a SortKey, case-insensitively.
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case SortCategories, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc, SortNewest:
		return key, nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}
