package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gpiedrahita-hub/infinite-herbs-admin/locale"
)

func (s *Server) initRoutes() {
	// The guard guarantees every page request reaches the mux with a supported
	// locale prefix, so the locale-prefixed routes are registered once per
	// supported locale. A "/{locale}" wildcard would be ambiguous against the
	// static asset pattern under ServeMux precedence rules.
	for _, loc := range locale.Supported() {
		prefix := "/" + string(loc)

		// Public pages
		s.RegisterRouteHandler("GET "+prefix, ChainMiddleware(s.LandingHandler(), s.HTMLMiddleWare()...))
		s.RegisterRouteHandler("GET "+prefix+RouteLogin, ChainMiddleware(s.LoginPageHandler(), s.HTMLMiddleWare()...))
		s.RegisterRouteHandler("POST "+prefix+RouteLogin, ChainMiddleware(s.LoginSubmitHandler(), s.HTMLMiddleWare()...))
		s.RegisterRouteHandler("GET "+prefix+RouteRegister, ChainMiddleware(s.RegisterPageHandler(), s.HTMLMiddleWare()...))
		s.RegisterRouteHandler("POST "+prefix+RouteRegister, ChainMiddleware(s.RegisterSubmitHandler(), s.HTMLMiddleWare()...))
		s.RegisterRouteHandler("GET "+prefix+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleWare()...))

		// Locale switch (works from any page)
		s.RegisterRouteHandler("POST "+prefix+RouteLocale, ChainMiddleware(s.LocaleSwitchHandler(), s.HTMLMiddleWare()...))

		// Protected pages (the guard redirects anonymous requests to login)
		s.RegisterRouteHandler("GET "+prefix+RouteDashboard, ChainMiddleware(s.DashboardHandler(), s.HTMLMiddleWare()...))
		s.RegisterRouteHandler("GET "+prefix+RouteUsers, ChainMiddleware(s.UsersListHandler(), s.HTMLMiddleWare(s.RequireUsersAccess())...))
		s.RegisterRouteHandler("GET "+prefix+RouteUsersNew, ChainMiddleware(s.UserNewHandler(), s.HTMLMiddleWare(s.RequireUsersManage())...))
		s.RegisterRouteHandler("POST "+prefix+RouteUsers, ChainMiddleware(s.UserCreateHandler(), s.HTMLMiddleWare(s.RequireUsersManage())...))
		s.RegisterRouteHandler("GET "+prefix+RouteUsersEdit, ChainMiddleware(s.UserEditHandler(), s.HTMLMiddleWare(s.RequireUsersManage())...))
		s.RegisterRouteHandler("POST "+prefix+RouteUsersItem, ChainMiddleware(s.UserUpdateHandler(), s.HTMLMiddleWare(s.RequireUsersManage())...))
		s.RegisterRouteHandler("POST "+prefix+RouteUsersItem+"/delete", ChainMiddleware(s.UserDeleteHandler(), s.HTMLMiddleWare(s.RequireUsersManage())...))
	}

	// Static assets
	s.RegisterRouteHandler("GET "+RouteStatic+"{file...}", ChainMiddleware(s.serveFileHandler(), s.CacheMiddleware))
}

func (s *Server) serveFileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filePath := r.PathValue("file")
		if filePath == "" {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
		err := StreamFile(w, r, filePath)
		if err != nil {
			logError("GET", filePath, err.Error())
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
	}
}

func logError(method, path, error string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	errorString := Red + error + ResetColor
	log.Printf("[%-19s] %s %s\n", displayMethod, path, errorString)
}
