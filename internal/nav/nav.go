package nav

import (
	"net/url"
	"path"
	"strings"

	"zerotable.kr/protein-web/internal/filter"
)

// Item represents a top-level navigation item.
type Item struct {
	Path  string // e.g. "/products?category=chicken"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation: one entry per product category.
var Main = buildMain()

func buildMain() []Item {
	items := make([]Item, 0, len(filter.CategoryOptions))
	for _, option := range filter.CategoryOptions {
		items = append(items, Item{
			Path:  "/products?category=" + url.QueryEscape(option.Value),
			Label: option.Label,
		})
	}
	return items
}

// Build renders navigation items with active state for the current request.
// The first category counts as active when the URL names none, matching how
// the listing page defaults.
func Build(currentPath string, query url.Values) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	category := query.Get(filter.ParamCategory)
	items := make([]RenderedItem, 0, len(Main))
	for i, it := range Main {
		active := false
		if strings.HasPrefix(currentPath, "/products") {
			want := categoryOf(it.Path)
			active = category == want || (category == "" && i == 0)
		}
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: active,
		})
	}
	return items
}

// Breadcrumbs builds the Home → Products → category trail for the listing
// and detail surfaces.
func Breadcrumbs(currentPath string, query url.Values) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	if !strings.HasPrefix(clean, "/products") {
		crumbs = append(crumbs, Crumb{Href: clean, Label: titleFromSegment(strings.TrimPrefix(clean, "/")), Active: true})
		return crumbs
	}

	category := query.Get(filter.ParamCategory)
	if category == "" {
		category = filter.CategoryOptions[0].Value
	}
	onDetail := clean != "/products"
	crumbs = append(crumbs, Crumb{Href: "/products", Label: "Products"})
	crumbs = append(crumbs, Crumb{
		Href:   "/products?category=" + url.QueryEscape(category),
		Label:  filter.CategoryLabel(category),
		Active: !onDetail,
	})
	if onDetail {
		crumbs = append(crumbs, Crumb{
			Href:   clean,
			Label:  titleFromSegment(path.Base(clean)),
			Active: true,
		})
	}
	return crumbs
}

func categoryOf(navPath string) string {
	target, err := url.Parse(navPath)
	if err != nil {
		return ""
	}
	return target.Query().Get(filter.ParamCategory)
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	r[0] = toUpper(r[0])
	return string(r)
}

func toUpper(r rune) rune {
	// ASCII only is sufficient for slugs here
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
