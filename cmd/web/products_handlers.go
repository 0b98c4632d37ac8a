package main

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"zerotable.kr/protein-web/internal/browse"
	"zerotable.kr/protein-web/internal/catalog"
	"zerotable.kr/protein-web/internal/filter"
	handlersPkg "zerotable.kr/protein-web/internal/handlers"
	"zerotable.kr/protein-web/internal/nav"
	"zerotable.kr/protein-web/internal/seo"
)

// ProductsHandler renders the listing page. The URL query is the single
// source of truth: it is parsed into the applied filter state on every
// request.
func ProductsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	categoryParam := query.Get(filter.ParamCategory)
	activeCategory := categoryParam
	if activeCategory == "" {
		activeCategory = filter.CategoryOptions[0].Value
	}

	store := filter.NewStore(query, nil)
	state := store.State()
	results := browse.Results(products.Products(), activeCategory, state)
	view := buildProductsView(categoryParam, activeCategory, state, results)

	title := view.CategoryLabel + " 검색 결과"
	vm := handlersPkg.PageData{
		Title:       title + " | " + siteName,
		Lang:        "ko",
		Path:        r.URL.Path,
		Nav:         nav.Build(r.URL.Path, query),
		Breadcrumbs: nav.Breadcrumbs(r.URL.Path, query),
		View:        view,
	}
	vm.SEO.Title = vm.Title
	vm.SEO.Description = view.CategoryLabel + " 가격·단백질 비교 결과 " + view.ResultCount
	vm.SEO.Canonical = absoluteURL(r)
	vm.SEO.OG.URL = vm.SEO.Canonical
	vm.SEO.OG.SiteName = siteName
	vm.SEO.OG.Title = vm.SEO.Title
	vm.SEO.OG.Description = vm.SEO.Description
	vm.SEO.OG.Type = "website"
	vm.SEO.JSONLD = append(vm.SEO.JSONLD, seo.JSON(breadcrumbJSONLD(vm.Breadcrumbs)))

	renderPage(w, r, "products", vm)
}

// ProductsApplyHandler commits the mobile filter sheet: the posted form is
// the draft, and applying it promotes the draft in one step and redirects
// to the canonical URL encoding the new applied state.
func ProductsApplyHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	current, err := url.ParseQuery(r.PostFormValue("current"))
	if err != nil {
		current = url.Values{}
	}
	target := current.Encode()
	store := filter.NewStore(current, filter.NavigatorFunc(func(q url.Values) {
		target = q.Encode()
	}))

	store.OpenEditor()
	if r.PostFormValue("action") == "reset" {
		store.ResetDraft()
	} else {
		store.UpdateDraft(draftPatch(r.PostForm))
	}
	store.CommitDraft()

	location := "/products"
	if target != "" {
		location = "/products?" + target
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// draftPatch translates the mobile sheet's form fields into a state patch.
// Multi-select fields are truncated at the cap, mirroring what the toggle
// path enforces one click at a time.
func draftPatch(form url.Values) filter.Patch {
	str := func(key string) *string {
		v := strings.TrimSpace(form.Get(key))
		return &v
	}
	scalar := func(key, fallback string) *string {
		v := strings.TrimSpace(form.Get(key))
		if v == "" {
			v = fallback
		}
		return &v
	}
	boolean := func(key string) *bool {
		v := form.Get(key) == "true" || form.Get(key) == "on"
		return &v
	}
	multi := func(key string) *[]string {
		values := form[key]
		out := make([]string, 0, filter.MaxMultiSelect)
		for _, v := range values {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			out = append(out, v)
			if len(out) == filter.MaxMultiSelect {
				break
			}
		}
		return &out
	}
	return filter.Patch{
		Query:     str(filter.ParamQuery),
		Sort:      scalar(filter.ParamSort, filter.DefaultSort),
		Price:     scalar(filter.ParamPrice, filter.All),
		Protein:   scalar(filter.ParamProtein, filter.All),
		Calories:  scalar(filter.ParamCalories, filter.All),
		Taste:     scalar(filter.ParamTaste, filter.All),
		Cooking:   multi(filter.ParamCooking),
		Form:      multi(filter.ParamForm),
		ValueTop:  boolean(filter.ParamValueTop),
		LowSodium: boolean(filter.ParamLowSodium),
	}
}

// ProductDetailHandler renders one product page with the store-by-store
// price panel. An unknown id is a terminal not-found.
func ProductDetailHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	product, err := products.ByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			NotFoundHandler(w, r)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	view := buildDetailView(r.Context(), product)

	vm := handlersPkg.PageData{
		Title:       product.Name + " | " + siteName,
		Lang:        "ko",
		Path:        r.URL.Path,
		Nav:         nav.Build(r.URL.Path, r.URL.Query()),
		Breadcrumbs: nav.Breadcrumbs(r.URL.Path, url.Values{filter.ParamCategory: {product.Category}}),
		View:        view,
	}
	vm.SEO.Title = vm.Title
	vm.SEO.Description = product.ShortDescription
	vm.SEO.Canonical = strings.TrimRight(siteBase, "/") + r.URL.Path
	vm.SEO.OG.URL = vm.SEO.Canonical
	vm.SEO.OG.SiteName = siteName
	vm.SEO.OG.Title = vm.SEO.Title
	vm.SEO.OG.Description = vm.SEO.Description
	vm.SEO.OG.Type = "product"
	vm.SEO.OG.Image = product.Image
	vm.SEO.JSONLD = append(vm.SEO.JSONLD,
		seo.JSON(seo.Product(product.Name, product.ShortDescription, vm.SEO.Canonical, product.Image, product.Brand, product.Price)),
		seo.JSON(breadcrumbJSONLD(vm.Breadcrumbs)),
	)

	renderPage(w, r, "product_detail", vm)
}

func breadcrumbJSONLD(crumbs []nav.Crumb) map[string]any {
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	base := strings.TrimRight(siteBase, "/")
	for _, crumb := range crumbs {
		items = append(items, seo.BreadcrumbItem{Name: crumb.Label, Item: base + crumb.Href})
	}
	return seo.BreadcrumbList(items)
}
