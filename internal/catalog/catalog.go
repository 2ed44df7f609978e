package catalog

import (
	"context"
	"fmt"
	"net/url"

	"github.com/curatedcellar/curator/internal/model"
)

// Source supplies the catalog contents.
type Source interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
}

// Catalog is the fixed product list served for the process lifetime.
// It is never mutated after construction, so concurrent readers need no
// locking.
type Catalog struct {
	products []model.Product
	origins  []string
	defaults Criteria
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithPriceCeiling sets the default upper price bound of new views and of
// requests that leave price_max out. Non-positive values are ignored.
func WithPriceCeiling(ceiling float64) Option {
	return func(c *Catalog) {
		if ceiling > 0 {
			c.defaults.Price.Max = ceiling
		}
	}
}

// New creates a catalog from a copy of products.
func New(products []model.Product, opts ...Option) *Catalog {
	ps := make([]model.Product, len(products))
	copy(ps, products)
	c := &Catalog{products: ps, origins: Origins(ps), defaults: DefaultCriteria()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads the full product list from src.
func Load(ctx context.Context, src Source, opts ...Option) (*Catalog, error) {
	products, err := src.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return New(products, opts...), nil
}

// DefaultCriteria returns the criteria of a fresh view.
func (c *Catalog) DefaultCriteria() Criteria { return c.defaults }

// ParseCriteria parses query parameters on top of the catalog defaults.
func (c *Catalog) ParseCriteria(q url.Values) (Criteria, error) {
	return ParseCriteriaFrom(q, c.defaults)
}

// Products returns a copy of the catalog in catalog order.
func (c *Catalog) Products() []model.Product {
	ps := make([]model.Product, len(c.products))
	copy(ps, c.products)
	return ps
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// Origins returns All followed by the distinct origins of the catalog.
func (c *Catalog) Origins() []string {
	out := make([]string, len(c.origins))
	copy(out, c.origins)
	return out
}

// Filter applies criteria to the catalog.
func (c *Catalog) Filter(cr Criteria) []model.Product {
	return Filter(c.products, cr)
}

// Product looks up a product by slug.
func (c *Catalog) Product(slug string) (model.Product, bool) {
	return FindBySlug(c.products, slug)
}

// NewView opens a browsing session over the catalog.
func (c *Catalog) NewView() *View {
	return newView(c.Products(), c.defaults)
}
