package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gpiedrahita-hub/infinite-herbs-admin/api"
	"github.com/gpiedrahita-hub/infinite-herbs-admin/internal/config"
	"github.com/gpiedrahita-hub/infinite-herbs-admin/locale"
	"github.com/gpiedrahita-hub/infinite-herbs-admin/session"
)

type Server struct {
	env        string // Environment (e.g., "DEV", "production")
	mux        *http.ServeMux
	routes     []string
	fileServer http.Handler
	config     config.Config
	httpClient *http.Client
	log        zerolog.Logger
}

type Option func(*Server)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) { s.log = logger }
}

// WithHTTPClient overrides the client used to reach the backend API.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Server) { s.httpClient = client }
}

func New(config config.Config, options ...Option) *Server {
	s := &Server{
		mux:        http.NewServeMux(),
		config:     config,
		httpClient: &http.Client{Timeout: config.GetAPITimeout()},
		log:        zerolog.Nop(),
	}
	for _, opt := range options {
		opt(s)
	}
	s.env = config.GetEnv()
	s.fileServer = FileServerHandler()

	s.initRoutes()
	s.logRoutes()

	return s
}

// ServeHTTP applies the locale and auth guard before dispatching to the mux.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.guard(s.mux.ServeHTTP)(w, r)
}

// sessionStore builds a cookie-backed session store for the current request.
func (s *Server) sessionStore(w http.ResponseWriter, r *http.Request) *session.Store {
	storage := session.NewCookieStorage(w, r, session.WithSecure(s.config.GetSecureCookies()))
	return session.NewStore(storage)
}

// apiClient builds a backend client bound to the request's session store.
// When a token refresh fails mid-request the session is gone, so the client
// redirects the browser back to the localized login page.
func (s *Server) apiClient(w http.ResponseWriter, r *http.Request, store *session.Store) *api.Client {
	loc := requestLocale(r)
	return api.New(s.config, store,
		api.WithHTTPClient(s.httpClient),
		api.WithLogger(s.log),
		api.WithSessionLostHandler(func() {
			redirectSuccess(w, r, localizedPath(loc, RouteLogin))
		}),
	)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

// localizedPath prefixes a logical route with the locale segment.
func localizedPath(loc locale.Locale, logical string) string {
	if logical == RouteLanding {
		return "/" + string(loc)
	}
	return "/" + string(loc) + logical
}
