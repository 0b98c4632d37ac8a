package main

import (
	"net/http"

	handlersPkg "zerotable.kr/protein-web/internal/handlers"
	"zerotable.kr/protein-web/internal/nav"
	"zerotable.kr/protein-web/internal/seo"
)

const siteName = "제로테이블"

// HomeHandler renders the landing page.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		NotFoundHandler(w, r)
		return
	}
	view := handlersPkg.BuildHomeView(products)

	vm := handlersPkg.PageData{
		Title:       siteName + " — 단백질·제로 식품 가격 비교",
		Lang:        "ko",
		Path:        r.URL.Path,
		Nav:         nav.Build(r.URL.Path, r.URL.Query()),
		Breadcrumbs: nav.Breadcrumbs(r.URL.Path, r.URL.Query()),
		View:        view,
	}
	vm.SEO.Title = vm.Title
	vm.SEO.Description = view.Subline
	vm.SEO.Canonical = absoluteURL(r)
	vm.SEO.OG.URL = vm.SEO.Canonical
	vm.SEO.OG.SiteName = siteName
	vm.SEO.OG.Title = vm.SEO.Title
	vm.SEO.OG.Description = vm.SEO.Description
	vm.SEO.OG.Type = "website"
	vm.SEO.JSONLD = append(vm.SEO.JSONLD, seo.JSON(seo.WebSite(siteName, siteBase, siteBase+"/products?query=")))

	renderPage(w, r, "home", vm)
}

// NotFoundHandler renders the shared 404 page.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	vm := handlersPkg.PageData{
		Title:       "페이지를 찾을 수 없습니다 | " + siteName,
		Lang:        "ko",
		Path:        r.URL.Path,
		Nav:         nav.Build(r.URL.Path, r.URL.Query()),
		Breadcrumbs: nav.Breadcrumbs("/", nil),
	}
	vm.SEO.Title = vm.Title
	vm.SEO.Robots = "noindex"
	renderStatus(w, r, "notfound", vm, http.StatusNotFound)
}
