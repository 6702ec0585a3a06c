// Package pages keeps the static storefront pages in sync with the catalog.
// Handlers subscribe to catalog domain events and re-render or remove the
// corresponding HTML page. Page generation is best-effort: a failed render
// never fails the catalog mutation that triggered it.
package pages

import (
	"context"
	"path"

	"github.com/baerenfell/backend/internal/domain/catalog"
)

// Renderer turns catalog aggregates into static HTML.
type Renderer interface {
	ProductPage(product *catalog.Product) ([]byte, error)
	ArtistPage(artist *catalog.Artist) ([]byte, error)
}

// PageStore persists rendered pages addressed by a relative path such as
// "products/bear-shirt.html". Deleting an absent page must not error.
type PageStore interface {
	WritePage(ctx context.Context, relPath string, content []byte) error
	DeletePage(ctx context.Context, relPath string) error
}

func productPagePath(slug string) string {
	return path.Join("products", slug+".html")
}

func artistPagePath(slug string) string {
	return path.Join("artists", slug+".html")
}
