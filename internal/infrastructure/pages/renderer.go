package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/baerenfell/backend/internal/domain/catalog"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// Renderer produces the static HTML detail pages served alongside the API.
// Rendering is pure: it never touches the filesystem.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded page templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("pages").Funcs(template.FuncMap{
		"initials":        initials,
		"instagramHandle": instagramHandle,
		"price":           formatPrice,
	}).ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// ProductPage renders the detail page for a product. The product's Artist
// association is optional; the artist section is omitted when it is nil.
func (r *Renderer) ProductPage(product *catalog.Product) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "product.html.tmpl", product); err != nil {
		return nil, fmt.Errorf("failed to render product page for %s: %w", product.Slug, err)
	}
	return buf.Bytes(), nil
}

// ArtistPage renders the detail page for an artist, including the grid of
// the artist's loaded products.
func (r *Renderer) ArtistPage(artist *catalog.Artist) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "artist.html.tmpl", artist); err != nil {
		return nil, fmt.Errorf("failed to render artist page for %s: %w", artist.Slug, err)
	}
	return buf.Bytes(), nil
}

// initials turns "Mara Keller" into "MK" for the image placeholder.
func initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			b.WriteRune(r)
			break
		}
	}
	return strings.ToUpper(b.String())
}

func instagramHandle(handle string) string {
	return strings.TrimPrefix(handle, "@")
}

// formatPrice renders "45" for whole francs and "45.50" otherwise,
// matching the storefront's price display.
func formatPrice(price decimal.Decimal) string {
	if price.Equal(price.Truncate(0)) {
		return price.Truncate(0).String()
	}
	return price.StringFixed(2)
}
