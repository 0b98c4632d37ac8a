package handlers

import (
	"zerotable.kr/protein-web/internal/nav"
	"zerotable.kr/protein-web/internal/seo"
)

// PageData is the layout view model shared by every page template.
type PageData struct {
	Title       string
	Lang        string
	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb
	SEO         seo.Data
	// View carries the page-specific view model.
	View any
}
