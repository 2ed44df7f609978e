package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/curatedcellar/curator/internal/model"
)

// SeedCatalog is the reference catalog a new database starts with.
var SeedCatalog = []model.Product{
	{
		ID:            "1",
		Title:         "Macallan 18 Year Old Sherry Oak",
		Slug:          "macallan-18-sherry",
		Type:          model.ProductTypeWhisky,
		OriginCountry: "Scotland",
		PriceMin:      350,
		PriceMax:      450,
		Description:   "Iconic Macallan, rich with mature oak, ginger and raisin flavors.",
		TastingNotes:  "Dried fruits, ginger, hints of cinnamon and vanilla.",
		ImageURL:      "https://picsum.photos/400/600?random=1",
		AffiliateURL:  "https://example.com",
		Available:     true,
	},
	{
		ID:            "2",
		Title:         "Cohiba Behike 52",
		Slug:          "cohiba-behike-52",
		Type:          model.ProductTypeCigar,
		OriginCountry: "Cuba",
		PriceMin:      150,
		PriceMax:      200,
		Description:   "The most exclusive line of the most exclusive Habanos brand.",
		TastingNotes:  "Creamy, earthy, with notes of coffee and leather.",
		ImageURL:      "https://picsum.photos/400/600?random=2",
		AffiliateURL:  "https://example.com",
		Available:     true,
	},
	{
		ID:            "3",
		Title:         "Sassicaia 2018",
		Slug:          "sassicaia-2018",
		Type:          model.ProductTypeWine,
		OriginCountry: "Italy",
		PriceMin:      280,
		PriceMax:      320,
		Description:   "A benchmark Super Tuscan.",
		TastingNotes:  "Black currant, cedar, exotic spice and crushed mint.",
		ImageURL:      "https://picsum.photos/400/600?random=3",
		AffiliateURL:  "https://example.com",
		Available:     true,
	},
	{
		ID:            "4",
		Title:         "Yamazaki 12",
		Slug:          "yamazaki-12",
		Type:          model.ProductTypeWhisky,
		OriginCountry: "Japan",
		PriceMin:      200,
		PriceMax:      250,
		Description:   "Pioneering Japanese single malt.",
		TastingNotes:  "Peach, pineapple, grapefruit, clove, candied orange.",
		ImageURL:      "https://picsum.photos/400/600?random=4",
		AffiliateURL:  "https://example.com",
		Available:     true,
	},
}

// SeedProducts inserts SeedCatalog into an empty catalog. It returns the
// number of products inserted, zero if the catalog already had products.
func SeedProducts(ctx context.Context, db *sql.DB) (int, error) {
	n, err := CountProducts(ctx, db)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	for _, p := range SeedCatalog {
		if _, err := UpsertProduct(ctx, db, p); err != nil {
			return 0, fmt.Errorf("seeding catalog: %w", err)
		}
	}
	return len(SeedCatalog), nil
}
