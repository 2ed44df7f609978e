package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/curatedcellar/curator/internal/catalog"
	"github.com/curatedcellar/curator/internal/store"
)

// ProductsHandler serves the catalog.
type ProductsHandler struct {
	Catalog *catalog.Catalog
	DB      *sql.DB
}

// List handles GET /api/products/.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	criteria, err := h.Catalog.ParseCriteria(r.URL.Query())
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidCriteria) {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}

	jsonResponse(w, http.StatusOK, h.Catalog.Filter(criteria))
}

// Origins handles GET /api/products/origins/.
func (h *ProductsHandler) Origins(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Catalog.Origins())
}

// Get handles GET /api/products/{slug}/.
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Catalog.Product(r.PathValue("slug"))
	if !ok {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}
	jsonResponse(w, http.StatusOK, p)
}

// GetImage handles GET /api/products/{slug}/image.
func (h *ProductsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if _, ok := h.Catalog.Product(slug); !ok {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}

	data, mime, err := store.GetProductImage(r.Context(), h.DB, slug)
	if err != nil {
		slog.Error("failed to get product image", "slug", slug, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get image")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write image response", "error", err)
	}
}
