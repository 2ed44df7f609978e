package web

import (
	"net/http"

	"github.com/curatedcellar/curator/internal/model"
)

// ProductPage handles GET /product/{slug}.
func (s *Server) ProductPage(w http.ResponseWriter, r *http.Request) {
	p, ok := s.Catalog.Product(r.PathValue("slug"))
	if !ok {
		s.Templates.RenderStatus(w, http.StatusNotFound, "not_found.html", &PageData{Title: "Product not found"})
		return
	}

	s.Templates.Render(w, "product.html", &struct {
		PageData
		Product model.Product
	}{
		PageData: PageData{Title: p.Title, Nav: "discover"},
		Product:  p,
	})
}
