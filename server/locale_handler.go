package server

import (
	"net/http"

	"github.com/gpiedrahita-hub/infinite-herbs-admin/locale"
)

const localeCookieMaxAge = 365 * 24 * 60 * 60

// LocaleSwitchHandler changes the display language (POST /{locale}/locale).
// The chosen locale is remembered in a cookie and the browser is sent back
// to the same logical page under the new prefix.
func (s *Server) LocaleSwitchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		loc, ok := locale.Parse(r.FormValue("locale"))
		if !ok {
			loc = locale.Default
		}

		http.SetCookie(w, &http.Cookie{
			Name:     locale.CookieName,
			Value:    string(loc),
			Path:     "/",
			MaxAge:   localeCookieMaxAge,
			Secure:   s.config.GetSecureCookies(),
			SameSite: http.SameSiteLaxMode,
		})

		_, logical, _ := locale.SplitPath(r.FormValue("next"))
		if logical == "" {
			logical = RouteLanding
		}
		redirectSuccess(w, r, localizedPath(loc, logical))
	}
}
