package web

import (
	"net/http"

	"github.com/curatedcellar/curator/internal/catalog"
	webembed "github.com/curatedcellar/curator/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(cat *catalog.Catalog) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Catalog:   cat,
		Templates: templates,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", s.CatalogPage)
	mux.HandleFunc("GET /product/{slug}", s.ProductPage)
	mux.HandleFunc("GET /events", s.EventsPage)
	mux.HandleFunc("GET /vault", s.VaultPage)

	mux.HandleFunc("/", RedirectHome)

	return mux, nil
}
