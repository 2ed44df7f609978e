package web

import (
	"log/slog"
	"net/http"

	"github.com/curatedcellar/curator/internal/api"
	"github.com/curatedcellar/curator/internal/catalog"
	"github.com/curatedcellar/curator/internal/model"
)

// option is one entry of the category radio list or the origin select.
type option struct {
	Value    string
	Label    string
	Selected bool
}

// CatalogPage handles GET /. The filter form submits back to this page;
// fields that fail to parse keep their defaults.
func (s *Server) CatalogPage(w http.ResponseWriter, r *http.Request) {
	criteria, err := s.Catalog.ParseCriteria(r.URL.Query())
	if err != nil {
		slog.Warn("ignoring invalid filter fields",
			"request_id", api.GetRequestID(r.Context()),
			"query", r.URL.RawQuery,
			"error", err,
		)
	}

	view := s.Catalog.NewView()
	view.Apply(criteria)
	criteria = view.Criteria()

	types := []option{{Value: catalog.All, Label: "All Categories", Selected: criteria.Type == catalog.All}}
	for _, t := range model.ProductTypes() {
		types = append(types, option{
			Value:    string(t),
			Label:    capitalize(string(t)),
			Selected: criteria.Type == string(t),
		})
	}

	var origins []option
	for _, o := range view.Origins() {
		label := o
		if o == catalog.All {
			label = "All Countries"
		}
		origins = append(origins, option{Value: o, Label: label, Selected: criteria.Origin == o})
	}

	s.Templates.Render(w, "catalog.html", &struct {
		PageData
		Criteria catalog.Criteria
		Heading  string
		Types    []option
		Origins  []option
		Products []model.Product
	}{
		PageData: PageData{Title: "Discover", Nav: "discover"},
		Criteria: criteria,
		Heading:  collectionHeading(criteria.Type),
		Types:    types,
		Origins:  origins,
		Products: view.Results(),
	})
}
