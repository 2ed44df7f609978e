package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/curatedcellar/curator/internal/catalog"
	"github.com/curatedcellar/curator/internal/model"
	webembed "github.com/curatedcellar/curator/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// capitalize upper-cases the first letter of s.
func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// formatPrice renders a price the way the catalog cards show it: no trailing
// zeros, no grouping.
func formatPrice(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', -1, 64)
}

// imageSrc prefers an imported image over the remote image URL.
func imageSrc(p model.Product) string {
	if p.HasImage {
		return "/api/products/" + p.Slug + "/image"
	}
	return p.ImageURL
}

// collectionHeading is the catalog grid heading for the selected type.
func collectionHeading(productType string) string {
	if productType == "" || productType == catalog.All {
		return "Trending Collections"
	}
	return capitalize(productType) + " Collection"
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"capitalize": capitalize,
		"price":      formatPrice,
		"number": func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		},
		"deref": func(v *float64) float64 {
			if v == nil {
				return 0
			}
			return *v
		},
		"imageSrc": imageSrc,
		"upper":    strings.ToUpper,
	}
}

var pages = []string{
	"catalog.html",
	"product.html",
	"not_found.html",
	"events.html",
	"vault.html",
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with status 200.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	ts.RenderStatus(w, http.StatusOK, name, data)
}

// RenderStatus renders a template with the given status code.
func (ts *Templates) RenderStatus(w http.ResponseWriter, status int, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title string
	// Nav marks the active navigation entry: "discover", "events" or "vault".
	Nav string
}

// Server holds all dependencies for page handlers.
type Server struct {
	Catalog   *catalog.Catalog
	Templates *Templates
}
