package filter

// Option pairs a canonical token (stored in state and in the URL) with its
// display label.
type Option struct {
	Value string
	Label string
}

// Sort keys accepted by the products surface.
const (
	SortValueForMoney = "valueForMoney"
	SortPriceAsc      = "priceAsc"
	SortProteinDesc   = "proteinDesc"
	SortCaloriesAsc   = "caloriesAsc"
)

// DefaultSort is applied when the URL carries no sort key.
const DefaultSort = SortValueForMoney

// All is the sentinel meaning "this dimension imposes no constraint".
// It is never written to the URL.
const All = "all"

// MaxMultiSelect caps how many cooking or form values can be selected at once.
const MaxMultiSelect = 2

// SortOptions lists the selectable sort orders.
var SortOptions = []Option{
	{Value: SortValueForMoney, Label: "가성비 높은순"},
	{Value: SortPriceAsc, Label: "가격 낮은순"},
	{Value: SortProteinDesc, Label: "단백질 높은순"},
	{Value: SortCaloriesAsc, Label: "칼로리 낮은순"},
}

// CategoryOptions lists the browsable product categories.
var CategoryOptions = []Option{
	{Value: "chicken", Label: "닭가슴살"},
	{Value: "protein", Label: "단백질"},
	{Value: "zero", Label: "제로 식품"},
}

// PriceOptions lists the fixed price bands in KRW.
var PriceOptions = []Option{
	{Value: All, Label: "가격 전체"},
	{Value: "under20000", Label: "2만원 미만"},
	{Value: "20000-30000", Label: "2~3만원"},
	{Value: "over30000", Label: "3만원 이상"},
}

// ProteinOptions lists protein floors in grams per serving.
var ProteinOptions = []Option{
	{Value: All, Label: "단백질 전체"},
	{Value: "20", Label: "20g+"},
	{Value: "23", Label: "23g+"},
	{Value: "25", Label: "25g+"},
	{Value: "30", Label: "30g+"},
}

// CaloriesOptions lists calorie ceilings in kcal per serving.
var CaloriesOptions = []Option{
	{Value: All, Label: "칼로리 전체"},
	{Value: "120", Label: "120kcal-"},
	{Value: "150", Label: "150kcal-"},
	{Value: "180", Label: "180kcal-"},
}

// TasteOptions lists the single-choice taste filter.
var TasteOptions = []Option{
	{Value: All, Label: "Taste 전체"},
	{Value: "plain", Label: "Plain"},
	{Value: "spicy", Label: "Spicy"},
	{Value: "smoky", Label: "Smoky"},
	{Value: "herb", Label: "Herb"},
}

// CookingOptions lists the multi-select cooking methods.
var CookingOptions = []Option{
	{Value: "grilled", Label: "Grilled"},
	{Value: "smoked", Label: "Smoked"},
	{Value: "sous-vide", Label: "Sous-vide"},
	{Value: "steamed", Label: "Steamed"},
}

// FormOptions lists the multi-select product forms.
var FormOptions = []Option{
	{Value: "slice", Label: "Slice"},
	{Value: "steak", Label: "Steak"},
	{Value: "cube", Label: "Cube"},
	{Value: "sausage", Label: "Sausage"},
}

// OptionLabel returns the label for value, falling back to the raw value when
// the token is unknown. Legacy or hand-edited query values stay visible
// instead of breaking the page.
func OptionLabel(options []Option, value string) string {
	for _, option := range options {
		if option.Value == value {
			return option.Label
		}
	}
	return value
}

// CategoryLabel resolves a category token to its display name, with a generic
// fallback for unknown categories.
func CategoryLabel(value string) string {
	for _, option := range CategoryOptions {
		if option.Value == value {
			return option.Label
		}
	}
	return "상품"
}

// SortLabel resolves a sort key to its display name.
func SortLabel(value string) string {
	return OptionLabel(SortOptions, value)
}
