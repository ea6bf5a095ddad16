package server

import (
	"context"
	"net/http"
	"path"
	"strings"

	"github.com/gpiedrahita-hub/infinite-herbs-admin/locale"
	"github.com/gpiedrahita-hub/infinite-herbs-admin/users"
)

type contextKey string

// ContextKeyLocale carries the locale resolved by the guard.
const ContextKeyLocale contextKey = "locale"

// guard resolves the request locale and enforces the auth rules before any
// handler runs:
//   - asset requests bypass localization entirely
//   - bare paths are redirected to their locale-prefixed form
//   - anonymous requests to protected pages go to the login page
//   - authenticated requests to login/register go to the dashboard
func (s *Server) guard(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if isAssetPath(r.URL.Path) {
			next(w, r)
			return
		}

		loc, logical, hadPrefix := locale.SplitPath(r.URL.Path)
		if !hadPrefix {
			loc = s.resolveLocale(r)
			target := localizedPath(loc, logical)
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			// 307 keeps the method so form posts survive the rewrite
			http.Redirect(w, r, target, http.StatusTemporaryRedirect)
			return
		}

		store := s.sessionStore(w, r)
		if !store.IsAuthenticated() && !isPublicPath(logical) {
			http.Redirect(w, r, localizedPath(loc, RouteLogin), http.StatusSeeOther)
			return
		}
		if store.IsAuthenticated() && (logical == RouteLogin || logical == RouteRegister) {
			http.Redirect(w, r, localizedPath(loc, RouteDashboard), http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyLocale, loc)
		next(w, r.WithContext(ctx))
	}
}

// resolveLocale picks a locale for a request without a locale prefix:
// explicit cookie first, then the Accept-Language header, then the default.
func (s *Server) resolveLocale(r *http.Request) locale.Locale {
	if cookie, err := r.Cookie(locale.CookieName); err == nil {
		if loc, ok := locale.Parse(cookie.Value); ok {
			return loc
		}
	}
	return locale.MatchAcceptLanguage(r.Header.Get("Accept-Language"))
}

// requestLocale returns the locale the guard attached to the request.
func requestLocale(r *http.Request) locale.Locale {
	if loc, ok := r.Context().Value(ContextKeyLocale).(locale.Locale); ok {
		return loc
	}
	loc, _, _ := locale.SplitPath(r.URL.Path)
	return loc
}

func isPublicPath(logical string) bool {
	switch logical {
	case RouteLanding, RouteLogin, RouteRegister, RouteLocale:
		return true
	}
	return false
}

func isAssetPath(p string) bool {
	if strings.HasPrefix(p, RouteStatic) {
		return true
	}
	// Anything with a file extension (favicon.ico, robots.txt) is an asset
	return path.Ext(path.Base(p)) != ""
}

// RequireUsersAccess gates the user list to roles that may see it.
func (s *Server) RequireUsersAccess() func(http.HandlerFunc) http.HandlerFunc {
	return s.requireCapability(func(c users.Capabilities) bool { return c.CanViewUsers })
}

// RequireUsersManage gates create/edit/delete to roles that may change users.
func (s *Server) RequireUsersManage() func(http.HandlerFunc) http.HandlerFunc {
	return s.requireCapability(func(c users.Capabilities) bool { return c.CanManageUsers })
}

func (s *Server) requireCapability(allowed func(users.Capabilities) bool) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			store := s.sessionStore(w, r)
			if !allowed(users.CapabilitiesFor(store.CurrentUser())) {
				redirectSuccess(w, r, localizedPath(requestLocale(r), RouteDashboard))
				return
			}
			next(w, r)
		}
	}
}
