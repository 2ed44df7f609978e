package model

import "fmt"

// ProductType is the catalog category of a product.
type ProductType string

// Product types.
const (
	ProductTypeWhisky ProductType = "whisky"
	ProductTypeWine   ProductType = "wine"
	ProductTypeVodka  ProductType = "vodka"
	ProductTypeCigar  ProductType = "cigar"
)

// ProductTypes returns all product types in display order.
func ProductTypes() []ProductType {
	return []ProductType{ProductTypeWhisky, ProductTypeWine, ProductTypeVodka, ProductTypeCigar}
}

// ParseProductType converts a lower-case type name into a ProductType.
func ParseProductType(s string) (ProductType, error) {
	for _, t := range ProductTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown product type %q", s)
}

// Valid reports whether t is one of the known product types.
func (t ProductType) Valid() bool {
	_, err := ParseProductType(string(t))
	return err == nil
}

// Product is an immutable catalog entry.
type Product struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Slug          string      `json:"slug"`
	Type          ProductType `json:"type"`
	OriginCountry string      `json:"origin_country"`
	PriceMin      float64     `json:"price_min"`
	PriceMax      float64     `json:"price_max"`
	ABV           *float64    `json:"abv,omitempty"`
	Description   string      `json:"description"`
	TastingNotes  string      `json:"tasting_notes"`
	ImageURL      string      `json:"image_url"`
	AffiliateURL  string      `json:"affiliate_url"`
	Available     bool        `json:"available"`
	HasImage      bool        `json:"has_image,omitempty"`
}
