package main

import (
	"context"
	"html/template"
	"net/url"

	"zerotable.kr/protein-web/internal/catalog"
	"zerotable.kr/protein-web/internal/filter"
	"zerotable.kr/protein-web/internal/format"
	"zerotable.kr/protein-web/internal/pricing"
)

// DetailView is the view model for the product detail page.
type DetailView struct {
	ID          string
	Name        string
	Brand       string
	Image       string
	Short       string
	Tags        []string
	Price       string
	Protein     string
	Calories    string
	Serving     string
	Category    string
	CategoryURL string
	Cooking     string
	Form        string
	Taste       string
	LowSodium   bool

	// ValueLabel is the KRW-per-protein-gram summary; empty when the
	// ratio cannot be computed (e.g. zero-protein products).
	ValueLabel string

	Description template.HTML
	Quotes      []QuoteView
	QuotesEmpty bool
}

// QuoteView is one row of the price comparison panel.
type QuoteView struct {
	Store         string
	LogoText      string
	PriceLabel    string
	ShippingLabel string
	UpdatedLabel  string
	URL           string
	Loading       bool
}

func buildDetailView(ctx context.Context, p catalog.Product) DetailView {
	view := DetailView{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		Image:       p.Image,
		Short:       p.ShortDescription,
		Tags:        p.Tags,
		Price:       format.Won(p.Price),
		Protein:     format.Protein(p.ProteinGrams),
		Calories:    format.Calories(p.Calories),
		Serving:     p.Serving,
		Category:    filter.CategoryLabel(p.Category),
		CategoryURL: "/products?category=" + url.QueryEscape(p.Category),
		Cooking:     filter.OptionLabel(filter.CookingOptions, p.Cooking),
		Form:        filter.OptionLabel(filter.FormOptions, p.Form),
		Taste:       filter.OptionLabel(filter.TasteOptions, p.Taste),
		LowSodium:   p.LowSodium,
		Description: renderMarkdown(p.Description),
	}

	if cost, ok := p.PricePerProtein(); ok {
		view.ValueLabel = "단백질 1g당 " + format.Won(int64(cost+0.5))
	}

	// Quote failures degrade to the empty panel state; the page itself
	// never errors because of the price feed.
	quotes, err := priceFeed.Quotes(ctx, p.ID)
	if err != nil || len(quotes) == 0 {
		view.QuotesEmpty = true
		return view
	}
	for _, q := range quotes {
		view.Quotes = append(view.Quotes, QuoteView{
			Store:         q.Store,
			LogoText:      q.LogoText,
			PriceLabel:    quotePriceLabel(q),
			ShippingLabel: q.ShippingLabel,
			UpdatedLabel:  q.UpdatedLabel,
			URL:           q.URL,
			Loading:       q.Status == pricing.StatusLoading,
		})
	}
	return view
}

func quotePriceLabel(q pricing.Quote) string {
	if q.Status == pricing.StatusLoading {
		return "불러오는 중"
	}
	if q.Price == nil {
		return "정보 없음"
	}
	return format.Won(*q.Price)
}
