package catalog

import "github.com/curatedcellar/curator/internal/model"

// Observer is notified after every recomputation of a View.
type Observer func(c Criteria, results []model.Product)

// View holds the criteria of one browsing session and the products they
// select. Every mutation re-filters the whole catalog synchronously.
//
// A View is owned by a single session and is not safe for concurrent use.
type View struct {
	products  []model.Product
	origins   []string
	criteria  Criteria
	defaults  Criteria
	results   []model.Product
	observers []Observer
}

// NewView creates a view over products with default criteria.
func NewView(products []model.Product) *View {
	return newView(products, DefaultCriteria())
}

func newView(products []model.Product, defaults Criteria) *View {
	v := &View{
		products: products,
		origins:  Origins(products),
		criteria: defaults,
		defaults: defaults,
	}
	v.recompute()
	return v
}

// Subscribe registers fn to be called after each recomputation.
func (v *View) Subscribe(fn Observer) {
	v.observers = append(v.observers, fn)
}

// SetSearchTerm replaces the title search term.
func (v *View) SetSearchTerm(term string) {
	v.criteria.SearchTerm = term
	v.recompute()
}

// SetType selects a product type, or All.
func (v *View) SetType(t string) {
	v.criteria.Type = t
	v.recompute()
}

// SetOrigin selects an origin country, or All.
func (v *View) SetOrigin(origin string) {
	v.criteria.Origin = origin
	v.recompute()
}

// SetPriceRange replaces both price bounds.
func (v *View) SetPriceRange(r PriceRange) {
	v.criteria.Price = r
	v.recompute()
}

// Apply replaces all criteria at once.
func (v *View) Apply(c Criteria) {
	v.criteria = c
	v.recompute()
}

// Reset restores every criterion to its default in a single step.
func (v *View) Reset() {
	v.Apply(v.defaults)
}

// Criteria returns the current criteria.
func (v *View) Criteria() Criteria { return v.criteria }

// Results returns the products selected by the current criteria.
func (v *View) Results() []model.Product { return v.results }

// Origins returns the selectable origins, All first.
func (v *View) Origins() []string { return v.origins }

// Empty reports whether no product matches.
func (v *View) Empty() bool { return len(v.results) == 0 }

func (v *View) recompute() {
	v.results = Filter(v.products, v.criteria)
	for _, fn := range v.observers {
		fn(v.criteria, v.results)
	}
}
