package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/curatedcellar/curator/internal/db"
	"github.com/curatedcellar/curator/internal/imaging"
	"github.com/curatedcellar/curator/internal/model"
	"github.com/curatedcellar/curator/internal/store"
)

// importEntry is one record of an import file: a product plus an optional
// local image path, relative to the import file.
type importEntry struct {
	model.Product
	ImageFile string `json:"image_file,omitempty"`
}

func cmdImport(args []string) error {
	cfg, flags, closeLog, err := loadConfig("import", args)
	if err != nil {
		return err
	}
	defer closeLog()

	if flags.NArg() != 1 {
		return errors.New("usage: curator import [-d db] <catalog.json>")
	}
	path := flags.Arg(0)

	entries, err := readImportFile(path)
	if err != nil {
		return err
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		return fmt.Errorf("ensuring database schema: %w", err)
	}

	n, err := importProducts(context.Background(), database, entries, filepath.Dir(path))
	if err != nil {
		return err
	}
	slog.Info("import finished", "file", path, "products", n, "db", cfg.DBPath)
	return nil
}

// readImportFile decodes a JSON array of products.
func readImportFile(path string) ([]importEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	var entries []importEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return entries, nil
}

// importProducts validates and upserts entries in file order. Image paths are
// resolved against baseDir. It stops at the first invalid entry and returns
// the number of products written before it.
func importProducts(ctx context.Context, database *sql.DB, entries []importEntry, baseDir string) (int, error) {
	for i, e := range entries {
		p, err := normalizeProduct(e.Product)
		if err != nil {
			return i, fmt.Errorf("entry %d: %w", i+1, err)
		}
		if p.PriceMin > p.PriceMax {
			slog.Warn("price range is inverted", "slug", p.Slug, "price_min", p.PriceMin, "price_max", p.PriceMax)
		}

		if _, err := store.UpsertProduct(ctx, database, p); err != nil {
			return i, err
		}

		if e.ImageFile != "" {
			if err := importImage(ctx, database, p.Slug, resolvePath(baseDir, e.ImageFile)); err != nil {
				return i, fmt.Errorf("entry %d: %w", i+1, err)
			}
		}
		slog.Debug("imported product", "slug", p.Slug, "title", p.Title)
	}
	return len(entries), nil
}

func resolvePath(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

// normalizeProduct fills in a missing id and slug and checks required fields.
func normalizeProduct(p model.Product) (model.Product, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return p, errors.New("title is required")
	}
	if !p.Type.Valid() {
		return p, fmt.Errorf("product %q: invalid type %q", p.Title, p.Type)
	}
	if p.Slug == "" {
		p.Slug = slugify(p.Title)
	}
	if p.Slug == "" {
		return p, fmt.Errorf("product %q: cannot derive a slug from the title", p.Title)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return p, nil
}

// slugify lower-cases s and collapses every run of non-alphanumerics to "-".
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func importImage(ctx context.Context, database *sql.DB, slug, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	result, err := imaging.Process(f)
	if err != nil {
		return fmt.Errorf("processing image %s: %w", path, err)
	}
	if err := store.SetProductImage(ctx, database, slug, result.Data, result.MIME); err != nil {
		return err
	}
	slog.Info("stored product image", "slug", slug, "width", result.Width, "height", result.Height, "bytes", len(result.Data))
	return nil
}
