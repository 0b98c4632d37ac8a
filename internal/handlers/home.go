package handlers

import (
	"net/url"

	"zerotable.kr/protein-web/internal/browse"
	"zerotable.kr/protein-web/internal/catalog"
	"zerotable.kr/protein-web/internal/filter"
	"zerotable.kr/protein-web/internal/format"
)

// homeFeaturedCount caps the featured strip on the landing page.
const homeFeaturedCount = 4

// HomeView is the view model for the landing page.
type HomeView struct {
	Headline   string
	Subline    string
	Categories []HomeCategory
	Featured   []HomeFeatured
}

// HomeCategory is one category tile.
type HomeCategory struct {
	Href  string
	Label string
	Count string
}

// HomeFeatured is one product card in the featured strip.
type HomeFeatured struct {
	Href    string
	Name    string
	Brand   string
	Image   string
	Price   string
	Protein string
}

// BuildHomeView assembles the landing page: one tile per category and the
// best value-for-money picks across the default category.
func BuildHomeView(c *catalog.Catalog) HomeView {
	view := HomeView{
		Headline: "오늘 뭐 먹을지, 숫자로 고르세요",
		Subline:  "닭가슴살·단백질·제로 식품을 가격과 단백질 기준으로 비교합니다.",
	}
	for _, option := range filter.CategoryOptions {
		view.Categories = append(view.Categories, HomeCategory{
			Href:  "/products?category=" + url.QueryEscape(option.Value),
			Label: option.Label,
			Count: format.Count(len(c.ByCategory(option.Value))),
		})
	}

	picks := browse.Results(c.Products(), filter.CategoryOptions[0].Value, filter.Default())
	if len(picks) > homeFeaturedCount {
		picks = picks[:homeFeaturedCount]
	}
	for _, p := range picks {
		view.Featured = append(view.Featured, HomeFeatured{
			Href:    "/products/" + url.PathEscape(p.ID),
			Name:    p.Name,
			Brand:   p.Brand,
			Image:   p.Image,
			Price:   format.Won(p.Price),
			Protein: format.Protein(p.ProteinGrams),
		})
	}
	return view
}
