package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/curatedcellar/curator/internal/model"
)

const productColumns = `id, title, slug, type, origin_country, price_min, price_max, abv,
	description, tasting_notes, image_url, affiliate_url, available, image IS NOT NULL`

// Products reads the catalog from the database. It satisfies catalog.Source.
type Products struct {
	DB *sql.DB
}

// ListProducts returns the whole catalog in catalog order.
func (p Products) ListProducts(ctx context.Context) ([]model.Product, error) {
	return ListProducts(ctx, p.DB)
}

// UpsertProduct inserts a product, or updates the product with the same slug.
// New products are appended to the end of the catalog.
func UpsertProduct(ctx context.Context, db *sql.DB, p model.Product) (*model.Product, error) {
	var abv sql.NullFloat64
	if p.ABV != nil {
		abv = sql.NullFloat64{Float64: *p.ABV, Valid: true}
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO products (id, position, title, slug, type, origin_country, price_min, price_max, abv,
		                       description, tasting_notes, image_url, affiliate_url, available)
		 VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM products), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET
		     title = excluded.title,
		     type = excluded.type,
		     origin_country = excluded.origin_country,
		     price_min = excluded.price_min,
		     price_max = excluded.price_max,
		     abv = excluded.abv,
		     description = excluded.description,
		     tasting_notes = excluded.tasting_notes,
		     image_url = excluded.image_url,
		     affiliate_url = excluded.affiliate_url,
		     available = excluded.available,
		     updated_at = CURRENT_TIMESTAMP`,
		p.ID, p.Title, p.Slug, string(p.Type), p.OriginCountry, p.PriceMin, p.PriceMax, abv,
		p.Description, p.TastingNotes, p.ImageURL, p.AffiliateURL, p.Available,
	)
	if err != nil {
		return nil, fmt.Errorf("upserting product %q: %w", p.Slug, err)
	}

	return GetProductBySlug(ctx, db, p.Slug)
}

// GetProductBySlug returns a product by its exact slug, or nil if none exists.
func GetProductBySlug(ctx context.Context, db *sql.DB, slug string) (*model.Product, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE slug = ?`, slug,
	)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}
	return p, nil
}

// ListProducts returns all products ordered by catalog position.
func ListProducts(ctx context.Context, db *sql.DB) ([]model.Product, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY position, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// CountProducts returns the number of products in the catalog.
func CountProducts(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}
	return n, nil
}

// SetProductImage stores processed image data for a product.
func SetProductImage(ctx context.Context, db *sql.DB, slug string, image []byte, mime string) error {
	res, err := db.ExecContext(ctx,
		`UPDATE products SET image = ?, image_mime = ?, updated_at = CURRENT_TIMESTAMP WHERE slug = ?`,
		image, mime, slug,
	)
	if err != nil {
		return fmt.Errorf("setting product image: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("setting product image: no product with slug %q", slug)
	}
	return nil
}

// GetProductImage returns a product's image data and MIME type. Data is nil
// when the product or its image does not exist.
func GetProductImage(ctx context.Context, db *sql.DB, slug string) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM products WHERE slug = ?`, slug,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting product image: %w", err)
	}
	return image, mime.String, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (*model.Product, error) {
	var p model.Product
	var typ string
	var abv sql.NullFloat64
	err := s.Scan(&p.ID, &p.Title, &p.Slug, &typ, &p.OriginCountry, &p.PriceMin, &p.PriceMax, &abv,
		&p.Description, &p.TastingNotes, &p.ImageURL, &p.AffiliateURL, &p.Available, &p.HasImage)
	if err != nil {
		return nil, err
	}
	p.Type = model.ProductType(typ)
	if abv.Valid {
		p.ABV = &abv.Float64
	}
	return &p, nil
}
