package handlers

import (
	"strings"
	"testing"

	"zerotable.kr/protein-web/internal/catalog"
)

func TestBuildHomeView(t *testing.T) {
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	view := BuildHomeView(c)

	if len(view.Categories) != 3 {
		t.Fatalf("expected 3 category tiles, got %d", len(view.Categories))
	}
	for _, tile := range view.Categories {
		if !strings.HasPrefix(tile.Href, "/products?category=") {
			t.Fatalf("unexpected tile href %q", tile.Href)
		}
		if tile.Count == "0개" {
			t.Fatalf("category tile %q should not be empty", tile.Label)
		}
	}

	if len(view.Featured) == 0 || len(view.Featured) > homeFeaturedCount {
		t.Fatalf("expected between 1 and %d featured picks, got %d", homeFeaturedCount, len(view.Featured))
	}
	for _, pick := range view.Featured {
		if !strings.HasPrefix(pick.Href, "/products/") {
			t.Fatalf("unexpected featured href %q", pick.Href)
		}
		if !strings.HasSuffix(pick.Price, "원") {
			t.Fatalf("unexpected price label %q", pick.Price)
		}
	}
}
