package catalog

import "github.com/curatedcellar/curator/internal/model"

var (
	macallan = model.Product{
		ID: "1", Title: "Macallan 18 Year Old Sherry Oak", Slug: "macallan-18-sherry",
		Type: model.ProductTypeWhisky, OriginCountry: "Scotland", PriceMin: 350, PriceMax: 450, Available: true,
	}
	cohiba = model.Product{
		ID: "2", Title: "Cohiba Behike 52", Slug: "cohiba-behike-52",
		Type: model.ProductTypeCigar, OriginCountry: "Cuba", PriceMin: 150, PriceMax: 200, Available: true,
	}
	sassicaia = model.Product{
		ID: "3", Title: "Sassicaia 2018", Slug: "sassicaia-2018",
		Type: model.ProductTypeWine, OriginCountry: "Italy", PriceMin: 280, PriceMax: 320, Available: true,
	}
	yamazaki = model.Product{
		ID: "4", Title: "Yamazaki 12", Slug: "yamazaki-12",
		Type: model.ProductTypeWhisky, OriginCountry: "Japan", PriceMin: 200, PriceMax: 250, Available: true,
	}
)

func threeProducts() []model.Product {
	return []model.Product{macallan, cohiba, sassicaia}
}

func fourProducts() []model.Product {
	return []model.Product{macallan, cohiba, sassicaia, yamazaki}
}

func titles(ps []model.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Title)
	}
	return out
}
