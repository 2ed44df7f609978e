package web

import "net/http"

// EventsPage handles GET /events.
func (s *Server) EventsPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "events.html", &PageData{Title: "Exclusive Events", Nav: "events"})
}

// VaultPage handles GET /vault.
func (s *Server) VaultPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "vault.html", &PageData{Title: "My Collection", Nav: "vault"})
}

// RedirectHome sends every unknown path back to the catalog.
func RedirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
