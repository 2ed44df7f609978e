// Package catalog implements browsing over a fixed set of products: the
// filter engine, slug lookup and the per-session filter view.
package catalog

import (
	"strings"

	"github.com/curatedcellar/curator/internal/model"
)

// All is the sentinel that disables the type or origin criterion.
const All = "all"

// Default price bounds of a fresh criteria value.
const (
	DefaultPriceMin = 0
	DefaultPriceMax = 2000
)

// PriceRange bounds the prices a product may span.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Criteria are the user-selected constraints applied to the catalog.
// Type and Origin hold All or a concrete value.
type Criteria struct {
	SearchTerm string     `json:"search_term"`
	Type       string     `json:"type"`
	Origin     string     `json:"origin"`
	Price      PriceRange `json:"price_range"`
}

// DefaultCriteria returns criteria that match the whole catalog.
func DefaultCriteria() Criteria {
	return Criteria{
		SearchTerm: "",
		Type:       All,
		Origin:     All,
		Price:      PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax},
	}
}

// IsDefault reports whether every criterion holds its default value.
func (c Criteria) IsDefault() bool {
	return c == DefaultCriteria()
}

// Matches reports whether p satisfies all four criteria.
//
// The price criterion is containment: the product's own range must lie
// within c.Price. A product that only overlaps the bounds is excluded.
func (c Criteria) Matches(p model.Product) bool {
	if !strings.Contains(strings.ToLower(p.Title), strings.ToLower(c.SearchTerm)) {
		return false
	}
	if c.Type != All && string(p.Type) != c.Type {
		return false
	}
	if c.Origin != All && p.OriginCountry != c.Origin {
		return false
	}
	return p.PriceMin >= c.Price.Min && p.PriceMax <= c.Price.Max
}

// Filter returns the products matching c, in catalog order. The input is not
// modified and the result is never nil.
func Filter(products []model.Product, c Criteria) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if c.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Origins returns All followed by the distinct origin countries in order of
// first appearance.
func Origins(products []model.Product) []string {
	origins := []string{All}
	seen := make(map[string]bool)
	for _, p := range products {
		if seen[p.OriginCountry] {
			continue
		}
		seen[p.OriginCountry] = true
		origins = append(origins, p.OriginCountry)
	}
	return origins
}

// FindBySlug returns the product whose slug equals slug exactly.
func FindBySlug(products []model.Product, slug string) (model.Product, bool) {
	for _, p := range products {
		if p.Slug == slug {
			return p, true
		}
	}
	return model.Product{}, false
}
