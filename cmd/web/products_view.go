package main

import (
	"net/url"
	"sort"

	"zerotable.kr/protein-web/internal/catalog"
	"zerotable.kr/protein-web/internal/filter"
	"zerotable.kr/protein-web/internal/format"
)

// ProductsView aggregates everything the listing page renders: the result
// grid, the desktop sidebar, the active-filter chips, and the mobile sheet.
type ProductsView struct {
	Category      string
	CategoryLabel string
	ResultCount   string
	Query         string
	SearchInput   string
	Chips         []string
	Empty         bool
	Cards         []ProductCard

	Sort     []ChoiceView
	Price    []ChoiceView
	Protein  []ChoiceView
	Calories []ChoiceView
	Taste    []ChoiceView
	Cooking  []ToggleView
	Form     []ToggleView

	ValueTop  ToggleView
	LowSodium ToggleView

	ResetHref    string
	CurrentQuery string
	MaxSelect    int

	// SearchHidden carries every active non-query key through the search
	// form, so submitting a search keeps the other filters applied.
	SearchHidden []HiddenField
}

// HiddenField is one hidden input of the search form.
type HiddenField struct {
	Name  string
	Value string
}

// ChoiceView is a single-select option with the URL selecting it.
type ChoiceView struct {
	Value    string
	Label    string
	Selected bool
	Href     string
}

// ToggleView is a multi-select or boolean option. Disabled marks a
// multi-select entry that cannot be added because the cap is reached; the
// template renders it inert instead of silently dropping the click.
type ToggleView struct {
	Value    string
	Label    string
	Selected bool
	Disabled bool
	Href     string
}

// ProductCard is one grid entry.
type ProductCard struct {
	ID       string
	Href     string
	Name     string
	Brand    string
	Image    string
	Short    string
	Tags     []string
	Price    string
	Protein  string
	Calories string
}

// listingURL builds the canonical listing URL for a category and state:
// every field at its empty sentinel is absent from the query.
func listingURL(category string, s filter.State) string {
	values := filter.Encode(s)
	if category != "" {
		values.Set(filter.ParamCategory, category)
	}
	if encoded := values.Encode(); encoded != "" {
		return "/products?" + encoded
	}
	return "/products"
}

// encodeQuery is listingURL without the path, used for the mobile form's
// hidden carry-over field.
func encodeQuery(category string, s filter.State) string {
	values := filter.Encode(s)
	if category != "" {
		values.Set(filter.ParamCategory, category)
	}
	return values.Encode()
}

func buildProductsView(categoryParam, activeCategory string, s filter.State, results []catalog.Product) ProductsView {
	view := ProductsView{
		Category:      activeCategory,
		CategoryLabel: filter.CategoryLabel(activeCategory),
		ResultCount:   format.Count(len(results)),
		Query:         s.Query,
		SearchInput:   s.Query,
		Empty:         len(results) == 0,
		ResetHref:     listingURL(categoryParam, filter.Default()),
		CurrentQuery:  encodeQuery(categoryParam, s),
		MaxSelect:     filter.MaxMultiSelect,
	}

	carried := filter.Encode(s)
	carried.Del(filter.ParamQuery)
	if categoryParam != "" {
		carried.Set(filter.ParamCategory, categoryParam)
	}
	for name, values := range carried {
		for _, value := range values {
			view.SearchHidden = append(view.SearchHidden, HiddenField{Name: name, Value: value})
		}
	}
	sort.Slice(view.SearchHidden, func(i, j int) bool {
		return view.SearchHidden[i].Name < view.SearchHidden[j].Name
	})

	for _, p := range results {
		view.Cards = append(view.Cards, ProductCard{
			ID:       p.ID,
			Href:     "/products/" + url.PathEscape(p.ID),
			Name:     p.Name,
			Brand:    p.Brand,
			Image:    p.Image,
			Short:    p.ShortDescription,
			Tags:     p.Tags,
			Price:    format.Won(p.Price),
			Protein:  format.Protein(p.ProteinGrams),
			Calories: format.Calories(p.Calories),
		})
	}

	view.Sort = choices(filter.SortOptions, s.Sort, func(v string) filter.State {
		next := s.Clone()
		next.Sort = v
		return next
	}, categoryParam)
	view.Price = choices(filter.PriceOptions, s.Price, func(v string) filter.State {
		next := s.Clone()
		next.Price = v
		return next
	}, categoryParam)
	view.Protein = choices(filter.ProteinOptions, s.Protein, func(v string) filter.State {
		next := s.Clone()
		next.Protein = v
		return next
	}, categoryParam)
	view.Calories = choices(filter.CaloriesOptions, s.Calories, func(v string) filter.State {
		next := s.Clone()
		next.Calories = v
		return next
	}, categoryParam)
	view.Taste = choices(filter.TasteOptions, s.Taste, func(v string) filter.State {
		next := s.Clone()
		next.Taste = v
		return next
	}, categoryParam)

	view.Cooking = toggles(filter.CookingOptions, s.Cooking, func(v string) filter.State {
		next := s.Clone()
		next.Cooking = filter.Toggle(s.Cooking, v, filter.MaxMultiSelect)
		return next
	}, categoryParam)
	view.Form = toggles(filter.FormOptions, s.Form, func(v string) filter.State {
		next := s.Clone()
		next.Form = filter.Toggle(s.Form, v, filter.MaxMultiSelect)
		return next
	}, categoryParam)

	valueTopNext := s.Clone()
	valueTopNext.ValueTop = !s.ValueTop
	view.ValueTop = ToggleView{
		Label:    "가성비 TOP3만",
		Selected: s.ValueTop,
		Href:     listingURL(categoryParam, valueTopNext),
	}
	lowSodiumNext := s.Clone()
	lowSodiumNext.LowSodium = !s.LowSodium
	view.LowSodium = ToggleView{
		Label:    "저염만",
		Selected: s.LowSodium,
		Href:     listingURL(categoryParam, lowSodiumNext),
	}

	view.Chips = buildChips(s)
	return view
}

func choices(options []filter.Option, current string, next func(string) filter.State, categoryParam string) []ChoiceView {
	out := make([]ChoiceView, 0, len(options))
	for _, option := range options {
		out = append(out, ChoiceView{
			Value:    option.Value,
			Label:    option.Label,
			Selected: option.Value == current,
			Href:     listingURL(categoryParam, next(option.Value)),
		})
	}
	return out
}

func toggles(options []filter.Option, selected []string, next func(string) filter.State, categoryParam string) []ToggleView {
	atCap := len(selected) >= filter.MaxMultiSelect
	out := make([]ToggleView, 0, len(options))
	for _, option := range options {
		isSelected := filter.Selected(selected, option.Value)
		out = append(out, ToggleView{
			Value:    option.Value,
			Label:    option.Label,
			Selected: isSelected,
			Disabled: atCap && !isSelected,
			Href:     listingURL(categoryParam, next(option.Value)),
		})
	}
	return out
}

// buildChips summarizes every non-default filter for the mobile header.
func buildChips(s filter.State) []string {
	var chips []string
	if s.Query != "" {
		chips = append(chips, "검색: "+s.Query)
	}
	if s.Sort != filter.DefaultSort {
		chips = append(chips, "정렬: "+filter.SortLabel(s.Sort))
	}
	if s.Price != filter.All {
		chips = append(chips, "가격: "+filter.OptionLabel(filter.PriceOptions, s.Price))
	}
	if s.Protein != filter.All {
		chips = append(chips, "단백질: "+filter.OptionLabel(filter.ProteinOptions, s.Protein))
	}
	if s.Calories != filter.All {
		chips = append(chips, "칼로리: "+filter.OptionLabel(filter.CaloriesOptions, s.Calories))
	}
	if s.Taste != filter.All {
		chips = append(chips, "맛: "+filter.OptionLabel(filter.TasteOptions, s.Taste))
	}
	for _, v := range s.Cooking {
		chips = append(chips, "조리: "+filter.OptionLabel(filter.CookingOptions, v))
	}
	for _, v := range s.Form {
		chips = append(chips, "형태: "+filter.OptionLabel(filter.FormOptions, v))
	}
	if s.ValueTop {
		chips = append(chips, "가성비 TOP3")
	}
	if s.LowSodium {
		chips = append(chips, "저염")
	}
	return chips
}
