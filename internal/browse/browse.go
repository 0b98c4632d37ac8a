// Package browse computes the filtered, sorted product view for the listing
// page: a pure function of the static catalog, the active category, and the
// current filter state.
package browse

import (
	"sort"
	"strconv"
	"strings"

	"zerotable.kr/protein-web/internal/catalog"
	"zerotable.kr/protein-web/internal/filter"
)

// valueTopCount is how many ratio leaders per category survive the
// value-for-money toggle. Ties at the threshold are included.
const valueTopCount = 3

// Results filters products down to the active category and filter state,
// then sorts them by the selected key. The input slice is never mutated.
func Results(products []catalog.Product, category string, s filter.State) []catalog.Product {
	threshold, hasThreshold := valueTopThreshold(products, category)
	query := strings.ToLower(s.Query)

	var out []catalog.Product
	for _, p := range products {
		if p.Category != category {
			continue
		}
		if !matchesQuery(p, query) {
			continue
		}
		if !matchesPrice(p, s.Price) {
			continue
		}
		if !matchesProteinFloor(p, s.Protein) {
			continue
		}
		if !matchesCalorieCeiling(p, s.Calories) {
			continue
		}
		if s.Taste != filter.All && p.Taste != s.Taste {
			continue
		}
		if len(s.Cooking) > 0 && !filter.Selected(s.Cooking, p.Cooking) {
			continue
		}
		if len(s.Form) > 0 && !filter.Selected(s.Form, p.Form) {
			continue
		}
		if s.ValueTop && hasThreshold {
			ratio, ok := p.ValueRatio()
			if !ok || ratio < threshold {
				continue
			}
		}
		if s.LowSodium && !p.LowSodium {
			continue
		}
		out = append(out, p)
	}

	Sort(out, s.Sort)
	return out
}

// Sort orders products in place by the given sort key. Every key tie-breaks
// ascending by product id so the order is deterministic.
func Sort(products []catalog.Product, key string) {
	var less func(a, b catalog.Product) bool
	switch key {
	case filter.SortPriceAsc:
		less = func(a, b catalog.Product) bool { return a.Price < b.Price }
	case filter.SortProteinDesc:
		less = func(a, b catalog.Product) bool { return a.ProteinGrams > b.ProteinGrams }
	case filter.SortCaloriesAsc:
		less = func(a, b catalog.Product) bool { return a.Calories < b.Calories }
	default:
		less = lessByCost
	}
	sort.Slice(products, func(i, j int) bool {
		a, b := products[i], products[j]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return a.ID < b.ID
	})
}

// lessByCost orders by KRW per gram of protein ascending. Products with no
// computable cost sort after every product that has one.
func lessByCost(a, b catalog.Product) bool {
	costA, okA := a.PricePerProtein()
	costB, okB := b.PricePerProtein()
	if okA != okB {
		return okA
	}
	if !okA {
		return false
	}
	return costA < costB
}

// valueTopThreshold returns the ratio of the third-best product in the
// category, or the worst available when fewer than three products have a
// ratio. hasThreshold is false for a category with no ratio-bearing
// products, in which case the value-top toggle filters nothing out.
func valueTopThreshold(products []catalog.Product, category string) (float64, bool) {
	var ratios []float64
	for _, p := range products {
		if p.Category != category {
			continue
		}
		if ratio, ok := p.ValueRatio(); ok {
			ratios = append(ratios, ratio)
		}
	}
	if len(ratios) == 0 {
		return 0, false
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(ratios)))
	idx := valueTopCount - 1
	if idx >= len(ratios) {
		idx = len(ratios) - 1
	}
	return ratios[idx], true
}

func matchesQuery(p catalog.Product, loweredQuery string) bool {
	if loweredQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), loweredQuery) ||
		strings.Contains(strings.ToLower(p.Brand), loweredQuery)
}

func matchesPrice(p catalog.Product, band string) bool {
	switch band {
	case "under20000":
		return p.Price < 20000
	case "20000-30000":
		return p.Price >= 20000 && p.Price <= 30000
	case "over30000":
		return p.Price >= 30000
	default:
		// "all" and unknown bands impose no constraint.
		return true
	}
}

func matchesProteinFloor(p catalog.Product, token string) bool {
	if token == filter.All {
		return true
	}
	floor, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return true
	}
	return p.ProteinGrams >= floor
}

func matchesCalorieCeiling(p catalog.Product, token string) bool {
	if token == filter.All {
		return true
	}
	ceiling, err := strconv.Atoi(token)
	if err != nil {
		return true
	}
	return p.Calories <= ceiling
}
