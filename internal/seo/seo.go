package seo

import "html/template"

// Data carries page-level SEO metadata consumed by the base layout.
// JSONLD entries are emitted verbatim inside ld+json script tags, so they
// must come from JSON (never from user input).
type Data struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	JSONLD      []template.JS
}

// OpenGraph holds og:* tag values.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}
