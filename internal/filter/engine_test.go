package filter

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtteam/shop/internal/model"
)

func testCatalog() []model.Reward {
	return []model.Reward{
		{ID: "1", Name: "Tricou GenTech", Description: "Tricou din bumbac cu logo Generația Tech.", Price: 500, Category: "GenTech", InStock: true, StockCount: 5, Physical: true},
		{ID: "39", Name: "Voucher eMAG 150", Description: "Voucher eMAG în valoare de 150 de lei.", Price: 1500, Category: "Voucher", InStock: true, StockCount: 5},
		{ID: "46", Name: "Voucher Kaufland 100", Description: "Voucher Kaufland în valoare de 100 de lei", Price: 1000, Category: "Voucher", InStock: true, StockCount: 4},
		{ID: "36", Name: "Badge", Description: "Badge vizibil pe Leaderboards.", Price: 15, Category: "Decoratiuni", InStock: true, StockCount: 5},
		{ID: "11", Name: "Abonament 7Card", Description: "Acces timp de o lună la rețeaua 7Card.", Price: 1000, Category: "Abonamente", InStock: true, StockCount: 5},
		{ID: "62", Name: "JBL Speaker", Description: "Boxa portabila.", Price: 4000, Category: "Comori", InStock: true, StockCount: 1, Physical: true},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(nil)
	e.debounce = time.Millisecond
	e.SetCatalog(testCatalog())
	return e
}

func visibleIDs(e *Engine) []string {
	var ids []string
	for _, r := range e.Visible() {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestDefaultDerivationKeepsWholeCatalog(t *testing.T) {
	e := newTestEngine(t)

	visible := e.Visible()
	require.Len(t, visible, len(testCatalog()))

	// Default sort groups by raw category label, then name.
	assert.Equal(t, []string{"11", "62", "36", "1", "39", "46"}, visibleIDs(e))
}

func TestSearchRequiresEveryTerm(t *testing.T) {
	e := newTestEngine(t)

	e.SetSearch("voucher emag")
	require.Eventually(t, func() bool {
		ids := visibleIDs(e)
		return len(ids) == 1 && ids[0] == "39"
	}, time.Second, 5*time.Millisecond)

	e.SetSearch("voucher kaufland")
	require.Eventually(t, func() bool {
		ids := visibleIDs(e)
		return len(ids) == 1 && ids[0] == "46"
	}, time.Second, 5*time.Millisecond)
}

func TestShortAndEmptySearchPassEverything(t *testing.T) {
	e := newTestEngine(t)

	e.SetSearch("v")
	require.Eventually(t, func() bool {
		return len(e.Visible()) == len(testCatalog())
	}, time.Second, 5*time.Millisecond)

	e.SetSearch("")
	require.Eventually(t, func() bool {
		return len(e.Visible()) == len(testCatalog())
	}, time.Second, 5*time.Millisecond)
}

func TestDebounceLastCallWins(t *testing.T) {
	e := NewEngine(nil)
	e.debounce = 50 * time.Millisecond
	e.SetCatalog(testCatalog())

	var derivations atomic.Int32
	e.OnVisibleChanged(func([]model.Reward) {
		derivations.Add(1)
	})

	e.SetSearch("tricou")
	e.SetSearch("badge")
	e.SetSearch("voucher emag")

	require.Eventually(t, func() bool {
		return derivations.Load() == 1
	}, time.Second, 5*time.Millisecond)

	// No further derivations should fire from the superseded queries.
	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, int32(1), derivations.Load())
	assert.Equal(t, []string{"39"}, visibleIDs(e))
}

func TestPriceRangeExcludesAndRestores(t *testing.T) {
	e := newTestEngine(t)

	e.SetPriceRange(1000, 2000)
	assert.NotContains(t, visibleIDs(e), "1")

	e.SetPriceRange(0, 500)
	assert.Contains(t, visibleIDs(e), "1")
}

func TestPriceRangeClamping(t *testing.T) {
	e := newTestEngine(t)

	e.SetPriceRange(-10, -20)
	c := e.Criteria()
	assert.Equal(t, 0, c.PriceMin)
	assert.Equal(t, 0, c.PriceMax)

	e.SetPriceRange(2000, 100)
	c = e.Criteria()
	assert.Equal(t, 2000, c.PriceMin)
	assert.Equal(t, 2000, c.PriceMax)
}

func TestCategoryFilterNormalizesAndMatchesSubstring(t *testing.T) {
	e := newTestEngine(t)

	// "Vouchere" and "Voucher" normalize to the same canonical key.
	e.AddCategory("Vouchere")
	assert.ElementsMatch(t, []string{"39", "46"}, visibleIDs(e))

	// Substring looseness: an unknown label containing a selected
	// category still matches.
	catalog := append(testCatalog(), model.Reward{
		ID: "99", Name: "Curs video", Price: 800, Category: "education-online",
	})
	e.SetCatalog(catalog)
	e.SetCategories([]string{"education"})
	assert.Equal(t, []string{"99"}, visibleIDs(e))
}

func TestSortKeys(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.SetSort(SortPriceAsc))
	ids := visibleIDs(e)
	assert.Equal(t, "36", ids[0])
	assert.Equal(t, "62", ids[len(ids)-1])

	require.NoError(t, e.SetSort(SortPriceDesc))
	assert.Equal(t, "62", visibleIDs(e)[0])

	require.NoError(t, e.SetSort(SortNameAsc))
	assert.Equal(t, "11", visibleIDs(e)[0]) // Abonament 7Card

	require.NoError(t, e.SetSort(SortNameDesc))
	assert.Equal(t, "46", visibleIDs(e)[0]) // Voucher Kaufland 100

	require.NoError(t, e.SetSort(SortNewest))
	assert.Equal(t, "62", visibleIDs(e)[0])
}

func TestSortStability(t *testing.T) {
	e := NewEngine(nil)
	e.SetCatalog([]model.Reward{
		{ID: "a", Name: "Alpha", Price: 1000, Category: "X"},
		{ID: "b", Name: "Beta", Price: 1000, Category: "X"},
		{ID: "c", Name: "Gamma", Price: 1000, Category: "X"},
		{ID: "d", Name: "Delta", Price: 500, Category: "X"},
	})

	require.NoError(t, e.SetSort(SortPriceAsc))
	assert.Equal(t, []string{"d", "a", "b", "c"}, visibleIDs(e))

	require.NoError(t, e.SetSort(SortPriceDesc))
	assert.Equal(t, []string{"a", "b", "c", "d"}, visibleIDs(e))
}

func TestUnknownSortKeyRejected(t *testing.T) {
	e := newTestEngine(t)
	before := visibleIDs(e)

	err := e.SetSort("bogus")
	require.Error(t, err)
	assert.Equal(t, before, visibleIDs(e))
	assert.Equal(t, SortCategories, e.Criteria().SortBy)
}

func TestReset(t *testing.T) {
	e := newTestEngine(t)

	e.AddCategory("Voucher")
	e.SetPriceRange(1000, 2000)
	e.SetSearch("emag")
	require.NoError(t, e.SetSort(SortPriceAsc))

	e.Reset()

	c := e.Criteria()
	assert.Empty(t, c.Search)
	assert.Empty(t, c.Categories)
	assert.Equal(t, DefaultPriceMin, c.PriceMin)
	assert.Equal(t, DefaultPriceMax, c.PriceMax)
	assert.Equal(t, SortCategories, c.SortBy)
	assert.Len(t, e.Visible(), len(testCatalog()))
}

func TestStats(t *testing.T) {
	e := newTestEngine(t)
	e.SetPriceRange(1000, 2000)

	s := e.Stats()
	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 3, s.Filtered)
	assert.Equal(t, 5, s.Categories)
	assert.Equal(t, 15, s.PriceMin)
	assert.Equal(t, 4000, s.PriceMax)
	assert.False(t, s.LastUpdate.IsZero())
}

func TestEmptyCatalog(t *testing.T) {
	e := NewEngine(nil)

	require.NotNil(t, e.Visible())
	assert.Empty(t, e.Visible())

	e.SetCatalog(nil)
	assert.Empty(t, e.Visible())

	s := e.Stats()
	assert.Zero(t, s.PriceMin)
	assert.Zero(t, s.PriceMax)
}
