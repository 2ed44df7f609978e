package catalog

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curatedcellar/curator/internal/model"
)

type sliceSource struct {
	products []model.Product
	err      error
}

func (s sliceSource) ListProducts(context.Context) ([]model.Product, error) {
	return s.products, s.err
}

func TestLoad(t *testing.T) {
	c, err := Load(context.Background(), sliceSource{products: fourProducts()})
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []string{All, "Scotland", "Cuba", "Italy", "Japan"}, c.Origins())

	p, ok := c.Product("yamazaki-12")
	require.True(t, ok)
	assert.Equal(t, "Japan", p.OriginCountry)
}

func TestLoadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Load(context.Background(), sliceSource{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestCatalogSnapshotIsIsolated(t *testing.T) {
	in := fourProducts()
	c := New(in)
	in[0].Title = "changed"

	got := c.Products()
	assert.Equal(t, macallan.Title, got[0].Title)

	got[1].Title = "changed too"
	assert.Equal(t, cohiba.Title, c.Products()[1].Title)
}

func TestCatalogFilterAndView(t *testing.T) {
	c := New(fourProducts())
	cr := DefaultCriteria()
	cr.Type = "whisky"
	assert.Equal(t, []string{macallan.Title, yamazaki.Title}, titles(c.Filter(cr)))

	v := c.NewView()
	assert.Len(t, v.Results(), 4)
}

func TestCatalogPriceCeiling(t *testing.T) {
	c := New(fourProducts(), WithPriceCeiling(300))
	assert.Equal(t, PriceRange{Min: 0, Max: 300}, c.DefaultCriteria().Price)

	v := c.NewView()
	assert.Equal(t, []string{cohiba.Title, yamazaki.Title}, titles(v.Results()))

	v.SetPriceRange(PriceRange{Min: 0, Max: 1000})
	assert.Len(t, v.Results(), 4)
	v.Reset()
	assert.Equal(t, c.DefaultCriteria(), v.Criteria())
	assert.Len(t, v.Results(), 2)

	cr, err := c.ParseCriteria(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, 300.0, cr.Price.Max)

	cr, err = c.ParseCriteria(url.Values{"price_max": {"1000"}})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, cr.Price.Max)

	cr, err = c.ParseCriteria(url.Values{"price_max": {"lots"}})
	require.Error(t, err)
	assert.Equal(t, 300.0, cr.Price.Max)

	assert.Equal(t, DefaultCriteria(), New(fourProducts(), WithPriceCeiling(0)).DefaultCriteria())
}
