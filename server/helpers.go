package server

import (
	"net/http"
	"net/url"

	"golang.org/x/text/message"

	"github.com/gpiedrahita-hub/infinite-herbs-admin/users"
)

// localizeFieldErrors resolves validation message keys for the active locale
func (s *Server) localizeFieldErrors(p *message.Printer, fieldErrors users.FieldErrors) map[string]string {
	localized := make(map[string]string, len(fieldErrors))
	for field, key := range fieldErrors {
		localized[field] = p.Sprintf(key)
	}
	return localized
}

// redirectSuccess helper for htmx-aware success redirects
func redirectSuccess(w http.ResponseWriter, r *http.Request, path string) {
	if isHTMXRequest(r) {
		w.Header().Set("HX-Redirect", path)
		w.WriteHeader(http.StatusNoContent) // 204 - no content, just redirect instruction
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// redirectWithError helper for htmx-aware error redirects
func redirectWithError(w http.ResponseWriter, r *http.Request, path, errorMsg string) {
	fullPath := path + "?error=" + url.QueryEscape(errorMsg)

	if isHTMXRequest(r) {
		w.Header().Set("HX-Redirect", fullPath)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, fullPath, http.StatusSeeOther)
}

// isHTMXRequest checks if the request was initiated by HTMX
func isHTMXRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
