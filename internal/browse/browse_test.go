package browse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"zerotable.kr/protein-web/internal/catalog"
	"zerotable.kr/protein-web/internal/filter"
)

func chickenFixture() []catalog.Product {
	return []catalog.Product{
		{ID: "grill-basic", Name: "그릴 닭가슴살", Brand: "프레시랩", Price: 17900, ProteinGrams: 23, Calories: 109,
			Category: "chicken", Cooking: "grilled", Form: "slice", Taste: "plain", LowSodium: true},
		{ID: "smoked-steak", Name: "훈제 스테이크", Brand: "프레시랩", Price: 21900, ProteinGrams: 26, Calories: 135,
			Category: "chicken", Cooking: "smoked", Form: "steak", Taste: "smoky"},
		{ID: "sousvide-herb", Name: "수비드 허브", Brand: "델리핏", Price: 25900, ProteinGrams: 25, Calories: 128,
			Category: "chicken", Cooking: "sous-vide", Form: "steak", Taste: "herb", LowSodium: true},
		{ID: "steam-cube", Name: "스팀 큐브", Brand: "델리핏", Price: 15900, ProteinGrams: 20, Calories: 102,
			Category: "chicken", Cooking: "steamed", Form: "cube", Taste: "plain"},
		{ID: "spicy-sausage", Name: "매콤 소시지", Brand: "핏테이블", Price: 13900, ProteinGrams: 18, Calories: 150,
			Category: "chicken", Cooking: "smoked", Form: "sausage", Taste: "spicy"},
		// another category; must never leak into chicken results
		{ID: "zero-jelly", Name: "제로 젤리", Brand: "스윗프리", Price: 9900, ProteinGrams: 0, Calories: 15,
			Category: "zero", Taste: "plain"},
	}
}

func ids(products []catalog.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestResultsDefaultStateShowsWholeCategory(t *testing.T) {
	t.Parallel()

	got := Results(chickenFixture(), "chicken", filter.Default())
	require.Len(t, got, 5)
	for _, p := range got {
		require.Equal(t, "chicken", p.Category)
	}
}

// Each added constraint can only shrink the result set.
func TestResultsNarrowingIsMonotonic(t *testing.T) {
	t.Parallel()

	products := chickenFixture()
	s := filter.Default()
	prev := len(Results(products, "chicken", s))

	s.Price = "under20000"
	n := len(Results(products, "chicken", s))
	require.LessOrEqual(t, n, prev)
	prev = n

	s.Protein = "20"
	n = len(Results(products, "chicken", s))
	require.LessOrEqual(t, n, prev)
	prev = n

	s.Cooking = []string{"grilled", "steamed"}
	n = len(Results(products, "chicken", s))
	require.LessOrEqual(t, n, prev)
}

func TestResultsQueryMatchesNameOrBrand(t *testing.T) {
	t.Parallel()

	s := filter.Default()
	s.Query = "델리핏"
	got := Results(chickenFixture(), "chicken", s)
	require.Equal(t, []string{"steam-cube", "sousvide-herb"}, ids(got))

	s.Query = "스테이크"
	got = Results(chickenFixture(), "chicken", s)
	require.Equal(t, []string{"smoked-steak"}, ids(got))

	s.Query = "없는상품"
	require.Empty(t, Results(chickenFixture(), "chicken", s))
}

func TestResultsPriceBands(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{
		{ID: "a", Price: 19999, ProteinGrams: 20, Category: "chicken"},
		{ID: "b", Price: 20000, ProteinGrams: 20, Category: "chicken"},
		{ID: "c", Price: 30000, ProteinGrams: 20, Category: "chicken"},
		{ID: "d", Price: 30001, ProteinGrams: 20, Category: "chicken"},
	}

	s := filter.Default()
	s.Sort = filter.SortPriceAsc

	s.Price = "under20000"
	require.Equal(t, []string{"a"}, ids(Results(products, "chicken", s)))

	s.Price = "20000-30000"
	require.Equal(t, []string{"b", "c"}, ids(Results(products, "chicken", s)))

	s.Price = "over30000"
	require.Equal(t, []string{"c", "d"}, ids(Results(products, "chicken", s)))
}

func TestResultsUnknownScalarTokensImposeNoConstraint(t *testing.T) {
	t.Parallel()

	s := filter.Default()
	s.Price = "mystery"
	s.Protein = "lots"
	s.Calories = "few"
	got := Results(chickenFixture(), "chicken", s)
	require.Len(t, got, 5)
}

func TestResultsMultiSelectIsUnionWithinField(t *testing.T) {
	t.Parallel()

	s := filter.Default()
	s.Cooking = []string{"grilled", "steamed"}
	got := Results(chickenFixture(), "chicken", s)
	require.ElementsMatch(t, []string{"grill-basic", "steam-cube"}, ids(got))

	// fields combine with AND
	s.Form = []string{"cube"}
	got = Results(chickenFixture(), "chicken", s)
	require.Equal(t, []string{"steam-cube"}, ids(got))
}

func TestResultsLowSodium(t *testing.T) {
	t.Parallel()

	s := filter.Default()
	s.LowSodium = true
	got := Results(chickenFixture(), "chicken", s)
	require.ElementsMatch(t, []string{"grill-basic", "sousvide-herb"}, ids(got))
}

func TestResultsValueTopKeepsRatioLeaders(t *testing.T) {
	t.Parallel()

	s := filter.Default()
	s.ValueTop = true
	got := Results(chickenFixture(), "chicken", s)

	// ratios (protein per KRW): grill-basic .001285, steam-cube .001258,
	// spicy-sausage .001295, smoked-steak .001187, sousvide-herb .000965
	require.ElementsMatch(t, []string{"spicy-sausage", "grill-basic", "steam-cube"}, ids(got))
}

func TestResultsValueTopIncludesThresholdTies(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{
		{ID: "a", Price: 10000, ProteinGrams: 30, Category: "chicken"},
		{ID: "b", Price: 10000, ProteinGrams: 25, Category: "chicken"},
		{ID: "c", Price: 10000, ProteinGrams: 20, Category: "chicken"},
		{ID: "d", Price: 10000, ProteinGrams: 20, Category: "chicken"},
		{ID: "e", Price: 10000, ProteinGrams: 10, Category: "chicken"},
	}
	s := filter.Default()
	s.ValueTop = true
	got := Results(products, "chicken", s)
	require.ElementsMatch(t, []string{"a", "b", "c", "d"}, ids(got))
}

func TestResultsValueTopExcludesProductsWithoutRatio(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{
		{ID: "a", Price: 10000, ProteinGrams: 30, Category: "zero"},
		{ID: "no-protein", Price: 9900, ProteinGrams: 0, Category: "zero"},
	}
	s := filter.Default()
	s.ValueTop = true
	got := Results(products, "zero", s)
	require.Equal(t, []string{"a"}, ids(got))
}

func TestResultsValueTopNoRatioCategoryIsUnaffected(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{
		{ID: "cola", Price: 16900, ProteinGrams: 0, Category: "zero"},
		{ID: "jelly", Price: 9900, ProteinGrams: 0, Category: "zero"},
	}
	s := filter.Default()
	s.ValueTop = true
	got := Results(products, "zero", s)
	require.Len(t, got, 2)
}

func TestSortPriceAsc(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{
		{ID: "x", Price: 3200, ProteinGrams: 10},
		{ID: "y", Price: 2500, ProteinGrams: 10},
	}
	Sort(products, filter.SortPriceAsc)
	require.Equal(t, []string{"y", "x"}, ids(products))
}

func TestSortProteinDesc(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{
		{ID: "x", Price: 10000, ProteinGrams: 23},
		{ID: "y", Price: 10000, ProteinGrams: 26},
	}
	Sort(products, filter.SortProteinDesc)
	require.Equal(t, []string{"y", "x"}, ids(products))
}

func TestSortCaloriesAsc(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{
		{ID: "x", Calories: 150},
		{ID: "y", Calories: 109},
	}
	Sort(products, filter.SortCaloriesAsc)
	require.Equal(t, []string{"y", "x"}, ids(products))
}

func TestSortValueForMoneyPutsNoRatioLast(t *testing.T) {
	t.Parallel()

	// 400 KRW/g, 800 KRW/g, and no computable cost at all
	products := []catalog.Product{
		{ID: "no-ratio", Price: 9900, ProteinGrams: 0},
		{ID: "cheap-protein", Price: 10000, ProteinGrams: 25},
		{ID: "pricey-protein", Price: 20000, ProteinGrams: 25},
	}
	Sort(products, filter.SortValueForMoney)
	require.Equal(t, []string{"cheap-protein", "pricey-protein", "no-ratio"}, ids(products))
}

func TestSortTieBreaksByID(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{
		{ID: "b", Price: 10000, ProteinGrams: 20, Calories: 100},
		{ID: "a", Price: 10000, ProteinGrams: 20, Calories: 100},
		{ID: "c", Price: 10000, ProteinGrams: 20, Calories: 100},
	}
	for _, key := range []string{
		filter.SortValueForMoney, filter.SortPriceAsc,
		filter.SortProteinDesc, filter.SortCaloriesAsc,
	} {
		Sort(products, key)
		require.Equal(t, []string{"a", "b", "c"}, ids(products), "sort key %s", key)
	}
}

func TestResultsProteinFloorWithPriceBand(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{
		{ID: "cheap-low-protein", Price: 2500, ProteinGrams: 23, Category: "chicken"},
		{ID: "cheap-high-protein", Price: 18000, ProteinGrams: 26, Category: "chicken"},
	}
	s := filter.Default()
	s.Protein = "25"
	s.Price = "under20000"
	got := Results(products, "chicken", s)
	require.Equal(t, []string{"cheap-high-protein"}, ids(got))
}

func TestResultsEndToEnd(t *testing.T) {
	t.Parallel()

	s := filter.Default()
	s.Price = "under20000"
	s.Protein = "20"
	s.Sort = filter.SortPriceAsc
	got := Results(chickenFixture(), "chicken", s)
	require.Equal(t, []string{"steam-cube", "grill-basic"}, ids(got))
}

func TestResultsDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	products := chickenFixture()
	s := filter.Default()
	s.Sort = filter.SortPriceAsc
	_ = Results(products, "chicken", s)
	require.Equal(t, "grill-basic", products[0].ID)
}
