package api

import "net/http"

// Events handles GET /api/events/. Events are not scheduled yet.
func Events(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, []struct{}{})
}

// Vault handles GET /api/vault/. Collections are not stored yet.
func Vault(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, []struct{}{})
}
