package server

import "net/http"

// LandingHandler renders the public landing page (GET /{locale})
func (s *Server) LandingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := requestLocale(r)
		p := s.printer(r)

		s.renderPage(w, r, "", p.Sprintf("landing.title"), "landing.html", map[string]any{
			"Title":         p.Sprintf("landing.title"),
			"Subtitle":      p.Sprintf("landing.subtitle"),
			"LoginLabel":    p.Sprintf("landing.login"),
			"RegisterLabel": p.Sprintf("landing.register"),
			"LoginPath":     localizedPath(loc, RouteLogin),
			"RegisterPath":  localizedPath(loc, RouteRegister),
		})
	}
}
