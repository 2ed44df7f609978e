package api

import (
	"database/sql"
	"net/http"

	"github.com/curatedcellar/curator/internal/catalog"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(cat *catalog.Catalog, db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	products := &ProductsHandler{Catalog: cat, DB: db}

	mux.HandleFunc("GET /api/products/{$}", products.List)
	mux.HandleFunc("GET /api/products/origins/{$}", products.Origins)
	mux.HandleFunc("GET /api/products/{slug}/{$}", products.Get)
	mux.HandleFunc("GET /api/products/{slug}/image", products.GetImage)

	mux.HandleFunc("GET /api/events/{$}", Events)
	mux.HandleFunc("GET /api/vault/{$}", Vault)

	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		jsonError(w, http.StatusNotFound, "not found")
	})

	return mux
}
