package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curatedcellar/curator/internal/model"
)

func TestViewRecomputesOnEveryChange(t *testing.T) {
	v := NewView(threeProducts())
	require.Len(t, v.Results(), 3)

	var calls int
	var last Criteria
	v.Subscribe(func(c Criteria, _ []model.Product) {
		calls++
		last = c
	})

	v.SetSearchTerm("mac")
	assert.Equal(t, []string{macallan.Title}, titles(v.Results()))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "mac", last.SearchTerm)

	v.SetSearchTerm("")
	v.SetType("wine")
	assert.Equal(t, []string{sassicaia.Title}, titles(v.Results()))

	v.SetType(All)
	assert.Len(t, v.Results(), 3, "all sentinel restores every type")

	v.SetPriceRange(PriceRange{Min: 0, Max: 300})
	assert.Equal(t, []string{cohiba.Title}, titles(v.Results()))

	v.SetOrigin("Italy")
	assert.True(t, v.Empty())
	assert.Equal(t, 6, calls)
}

func TestViewReset(t *testing.T) {
	v := NewView(fourProducts())
	v.Apply(Criteria{SearchTerm: "zzz", Type: "vodka", Origin: "Cuba", Price: PriceRange{Min: 10, Max: 20}})
	require.True(t, v.Empty())

	var notified []model.Product
	v.Subscribe(func(_ Criteria, results []model.Product) { notified = results })

	v.Reset()
	assert.True(t, v.Criteria().IsDefault())
	assert.Equal(t, fourProducts(), v.Results())
	assert.Equal(t, fourProducts(), notified)
}

func TestViewOrigins(t *testing.T) {
	v := NewView(fourProducts())
	assert.Equal(t, []string{All, "Scotland", "Cuba", "Italy", "Japan"}, v.Origins())
}
