package filter

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/gtteam/shop/internal/model"
)

// newCollator builds the Romanian collator used for all name/category
// comparisons. Not safe for concurrent use; the engine calls it under
// its mutex.
func newCollator() *collate.Collator {
	return collate.New(language.Romanian)
}

// sortRewards orders rewards in place by the given key. All sorts are
// stable: equal-key items keep their filter-pass relative order.
func sortRewards(rewards []model.Reward, key SortKey, col *collate.Collator) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(rewards, func(i, j int) bool {
			return rewards[i].Price < rewards[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(rewards, func(i, j int) bool {
			return rewards[i].Price > rewards[j].Price
		})
	case SortNameAsc:
		sort.SliceStable(rewards, func(i, j int) bool {
			return col.CompareString(rewards[i].Name, rewards[j].Name) < 0
		})
	case SortNameDesc:
		sort.SliceStable(rewards, func(i, j int) bool {
			return col.CompareString(rewards[i].Name, rewards[j].Name) > 0
		})
	case SortNewest:
		// Reverse lexical on ID, matching the source's notion of "newest".
		sort.SliceStable(rewards, func(i, j int) bool {
			return rewards[i].ID > rewards[j].ID
		})
	default:
		// Category grouping: raw category label first, then name.
		sort.SliceStable(rewards, func(i, j int) bool {
			if c := col.CompareString(rewards[i].Category, rewards[j].Category); c != 0 {
				return c < 0
			}
			return col.CompareString(rewards[i].Name, rewards[j].Name) < 0
		})
	}
}
