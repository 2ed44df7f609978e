package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curatedcellar/curator/internal/model"
)

func TestFilter(t *testing.T) {
	t.Run("DefaultsReturnWholeCatalog", func(t *testing.T) {
		got := Filter(fourProducts(), DefaultCriteria())
		assert.Equal(t, fourProducts(), got)
	})

	t.Run("SearchIsCaseInsensitiveSubstring", func(t *testing.T) {
		c := DefaultCriteria()
		c.SearchTerm = "mac"
		assert.Equal(t, []string{macallan.Title}, titles(Filter(threeProducts(), c)))

		c.SearchTerm = "BEHIKE"
		assert.Equal(t, []string{cohiba.Title}, titles(Filter(threeProducts(), c)))
	})

	t.Run("TypeMatch", func(t *testing.T) {
		c := DefaultCriteria()
		c.Type = string(model.ProductTypeWine)
		assert.Equal(t, []string{sassicaia.Title}, titles(Filter(threeProducts(), c)))

		c.Type = string(model.ProductTypeVodka)
		assert.Empty(t, Filter(fourProducts(), c))
	})

	t.Run("OriginIsExactAndCaseSensitive", func(t *testing.T) {
		c := DefaultCriteria()
		c.Origin = "Japan"
		assert.Equal(t, []string{yamazaki.Title}, titles(Filter(fourProducts(), c)))

		c.Origin = "japan"
		assert.Empty(t, Filter(fourProducts(), c))
	})

	t.Run("PriceIsContainmentNotOverlap", func(t *testing.T) {
		c := DefaultCriteria()
		c.Price = PriceRange{Min: 0, Max: 300}
		assert.Equal(t, []string{cohiba.Title}, titles(Filter(threeProducts(), c)))

		// Sassicaia spans 280-320; a floor of 300 cuts it even though it overlaps.
		c.Price = PriceRange{Min: 300, Max: 2000}
		assert.Equal(t, []string{macallan.Title}, titles(Filter(threeProducts(), c)))

		// Bounds are inclusive.
		c.Price = PriceRange{Min: 150, Max: 200}
		assert.Equal(t, []string{cohiba.Title}, titles(Filter(threeProducts(), c)))
	})

	t.Run("PreservesCatalogOrder", func(t *testing.T) {
		c := DefaultCriteria()
		c.Type = string(model.ProductTypeWhisky)
		assert.Equal(t, []string{macallan.Title, yamazaki.Title}, titles(Filter(fourProducts(), c)))
	})

	t.Run("EmptyResultIsNonNil", func(t *testing.T) {
		c := DefaultCriteria()
		c.SearchTerm = "no such bottle"
		got := Filter(fourProducts(), c)
		require.NotNil(t, got)
		assert.Len(t, got, 0)
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		in := fourProducts()
		c := DefaultCriteria()
		c.Origin = "Cuba"
		Filter(in, c)
		assert.Equal(t, fourProducts(), in)
	})
}

func TestFilterProperties(t *testing.T) {
	products := fourProducts()
	searches := []string{"", "a", "mac", "12", "zz"}
	types := []string{All, "whisky", "wine", "vodka", "cigar"}
	origins := []string{All, "Scotland", "Cuba", "Italy", "Japan"}
	prices := []PriceRange{{0, 2000}, {0, 300}, {200, 450}, {150, 250}, {500, 100}}

	for _, s := range searches {
		for _, ty := range types {
			for _, o := range origins {
				for _, pr := range prices {
					c := Criteria{SearchTerm: s, Type: ty, Origin: o, Price: pr}
					got := Filter(products, c)

					for _, p := range got {
						assert.Contains(t, strings.ToLower(p.Title), strings.ToLower(s))
						if ty != All {
							assert.Equal(t, ty, string(p.Type))
						}
						if o != All {
							assert.Equal(t, o, p.OriginCountry)
						}
						assert.GreaterOrEqual(t, p.PriceMin, pr.Min)
						assert.LessOrEqual(t, p.PriceMax, pr.Max)
					}

					// Conjunction equals the intersection of single-criterion results.
					single := []Criteria{DefaultCriteria(), DefaultCriteria(), DefaultCriteria(), DefaultCriteria()}
					single[0].SearchTerm = s
					single[1].Type = ty
					single[2].Origin = o
					single[3].Price = pr
					want := products
					for _, sc := range single {
						want = intersect(want, Filter(products, sc))
					}
					assert.Equal(t, titles(want), titles(got), "criteria %+v", c)
				}
			}
		}
	}
}

func intersect(a, b []model.Product) []model.Product {
	in := make(map[string]bool, len(b))
	for _, p := range b {
		in[p.ID] = true
	}
	out := []model.Product{}
	for _, p := range a {
		if in[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

func TestOrigins(t *testing.T) {
	assert.Equal(t, []string{All, "Scotland", "Cuba", "Italy", "Japan"}, Origins(fourProducts()))

	dup := append(fourProducts(), model.Product{ID: "5", Title: "Glenfiddich 21", OriginCountry: "Scotland"})
	assert.Equal(t, []string{All, "Scotland", "Cuba", "Italy", "Japan"}, Origins(dup))

	assert.Equal(t, []string{All}, Origins(nil))
}

func TestFindBySlug(t *testing.T) {
	p, ok := FindBySlug(fourProducts(), "sassicaia-2018")
	require.True(t, ok)
	assert.Equal(t, sassicaia.Title, p.Title)

	_, ok = FindBySlug(fourProducts(), "Sassicaia-2018")
	assert.False(t, ok, "slug lookup must be case-sensitive")

	_, ok = FindBySlug(fourProducts(), "sassicaia")
	assert.False(t, ok)
}

func TestCriteriaIsDefault(t *testing.T) {
	c := DefaultCriteria()
	assert.True(t, c.IsDefault())
	c.Price.Max = 1999
	assert.False(t, c.IsDefault())
}
