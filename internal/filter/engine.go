package filter

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/text/collate"

	"github.com/gtteam/shop/internal/category"
	"github.com/gtteam/shop/internal/model"
)

// Engine holds the catalog snapshot and the active criteria, and derives
// the visible reward list from them. The derived list is replaced only
// when a full pass completes; listeners are notified exactly once per
// completed derivation, on a separate goroutine.
type Engine struct {
	mu       sync.Mutex
	logger   *slog.Logger
	collator *collate.Collator

	catalog     []model.Reward
	visible     []model.Reward
	criteria    Criteria
	available   []string
	lastDerived time.Time

	debounce time.Duration
	search   onceTimer

	listeners []func([]model.Reward)
}

// Stats summarizes the engine's current state.
type Stats struct {
	Total      int       `json:"total"`
	Filtered   int       `json:"filtered"`
	Categories int       `json:"categories"`
	PriceMin   int       `json:"priceMin"`
	PriceMax   int       `json:"priceMax"`
	LastUpdate time.Time `json:"lastUpdate"`
}

// NewEngine creates an engine with default criteria and an empty catalog.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		logger:   logger,
		collator: newCollator(),
		criteria: DefaultCriteria(),
		debounce: DefaultSearchDebounce,
		visible:  []model.Reward{},
	}
}

// OnVisibleChanged registers a listener for derived-list updates.
func (e *Engine) OnVisibleChanged(fn func([]model.Reward)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, fn)
}

// SetCatalog replaces the catalog snapshot wholesale, tags each reward
// with its canonical category and physical classification, recomputes the
// available category set, and re-derives with the current criteria.
func (e *Engine) SetCatalog(rewards []model.Reward) {
	tagged := category.TagAll(rewards)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.catalog = tagged
	e.refreshAvailableLocked()
	e.deriveLocked()
}

// SetSearch updates the search criterion (trimmed, case-folded) and arms
// the debounce timer; rapid calls coalesce into a single re-derivation
// using only the latest query.
func (e *Engine) SetSearch(query string) {
	e.mu.Lock()
	e.criteria.Search = strings.ToLower(strings.TrimSpace(query))
	d := e.debounce
	e.mu.Unlock()

	e.search.Arm(d, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.deriveLocked()
	})
}

// AddCategory adds one category (normalized first) to the restriction set
// and re-derives immediately.
func (e *Engine) AddCategory(cat string) {
	normalized := category.Normalize(cat)

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, c := range e.criteria.Categories {
		if c == normalized {
			return
		}
	}
	e.criteria.Categories = append(e.criteria.Categories, normalized)
	e.deriveLocked()
}

// SetCategories replaces the restriction set (each entry normalized) and
// re-derives immediately. An empty set means no restriction.
func (e *Engine) SetCategories(cats []string) {
	normalized := make([]string, 0, len(cats))
	for _, c := range cats {
		normalized = append(normalized, category.Normalize(c))
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.criteria.Categories = normalized
	e.deriveLocked()
}

// SetPriceRange updates the inclusive price bounds and re-derives.
// The minimum is clamped to zero and the maximum up to the minimum, so
// independent updates can never produce an inverted range.
func (e *Engine) SetPriceRange(min, max int) {
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.criteria.PriceMin = min
	e.criteria.PriceMax = max
	e.deriveLocked()
}

// SetSort switches the active sort key and re-derives. Unknown keys are
// rejected locally without touching the derived list.
func (e *Engine) SetSort(key SortKey) error {
	parsed, err := ParseSortKey(string(key))
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.criteria.SortBy = parsed
	e.deriveLocked()
	return nil
}

// Reset restores default criteria, drops any pending debounced search,
// and re-derives.
func (e *Engine) Reset() {
	e.search.Cancel()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.criteria = DefaultCriteria()
	e.deriveLocked()
}

// Visible returns a copy of the last derived list. Never nil.
func (e *Engine) Visible() []model.Reward {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]model.Reward{}, e.visible...)
}

// Criteria returns a copy of the active criteria.
func (e *Engine) Criteria() Criteria {
	e.mu.Lock()
	defer e.mu.Unlock()
	c := e.criteria
	c.Categories = append([]string(nil), e.criteria.Categories...)
	return c
}

// Categories returns the distinct canonical categories present in the
// catalog, sorted.
func (e *Engine) Categories() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.available...)
}

// Stats reports catalog and derivation counters. Price bounds are the
// observed min/max over the whole catalog, zero when it is empty.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Stats{
		Total:      len(e.catalog),
		Filtered:   len(e.visible),
		Categories: len(e.available),
		LastUpdate: e.lastDerived,
	}
	for i, r := range e.catalog {
		if i == 0 || r.Price < s.PriceMin {
			s.PriceMin = r.Price
		}
		if r.Price > s.PriceMax {
			s.PriceMax = r.Price
		}
	}
	return s
}

func (e *Engine) refreshAvailableLocked() {
	seen := make(map[string]bool)
	var cats []string
	for _, r := range e.catalog {
		if r.NormalizedCategory == "" || seen[r.NormalizedCategory] {
			continue
		}
		seen[r.NormalizedCategory] = true
		cats = append(cats, r.NormalizedCategory)
	}
	sort.Strings(cats)
	e.available = cats
}

// deriveLocked runs the full filter+sort pass and publishes the result
// atomically. Callers must hold e.mu.
func (e *Engine) deriveLocked() {
	start := time.Now()

	if len(e.catalog) == 0 {
		e.visible = []model.Reward{}
		e.lastDerived = time.Now()
		e.notifyLocked()
		return
	}

	out := make([]model.Reward, 0, len(e.catalog))
	for _, r := range e.catalog {
		if e.matchesSearch(r) && e.matchesCategory(r) && e.matchesPrice(r) {
			out = append(out, r)
		}
	}
	sortRewards(out, e.criteria.SortBy, e.collator)

	e.visible = out
	e.lastDerived = time.Now()
	e.logger.Debug("filters applied",
		"filtered", len(out),
		"total", len(e.catalog),
		"duration", time.Since(start))
	e.notifyLocked()
}

func (e *Engine) matchesSearch(r model.Reward) bool {
	query := e.criteria.Search
	if query == "" || utf8.RuneCountInString(query) < MinSearchLength {
		return true
	}

	var parts []string
	for _, s := range []string{r.Name, r.Description, r.FullDescription, r.Category} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	searchable := strings.ToLower(strings.Join(parts, " "))

	for _, term := range strings.Fields(query) {
		if !strings.Contains(searchable, term) {
			return false
		}
	}
	return true
}

func (e *Engine) matchesCategory(r model.Reward) bool {
	if len(e.criteria.Categories) == 0 {
		return true
	}
	for _, c := range e.criteria.Categories {
		// Substring match is deliberately loose, mirroring the
		// storefront's behavior.
		if r.NormalizedCategory == c || strings.Contains(r.NormalizedCategory, c) {
			return true
		}
	}
	return false
}

func (e *Engine) matchesPrice(r model.Reward) bool {
	return r.Price >= e.criteria.PriceMin && r.Price <= e.criteria.PriceMax
}

// notifyLocked hands the fresh derived list to listeners on a separate
// goroutine so several synchronous criteria changes in the same call
// chain never re-enter the caller.
func (e *Engine) notifyLocked() {
	if len(e.listeners) == 0 {
		return
	}
	snapshot := append([]model.Reward{}, e.visible...)
	listeners := append(([]func([]model.Reward))(nil), e.listeners...)
	go func() {
		for _, fn := range listeners {
			fn(snapshot)
		}
	}()
}
