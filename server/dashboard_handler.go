package server

import "net/http"

// Static showcase figures for the dashboard widgets. The store metrics feed
// is not wired up yet, so the cards render a fixed snapshot.
type dashboardStat struct {
	Label string
	Value string
	Delta string
}

// DashboardHandler renders the dashboard (GET /{locale}/dashboard)
func (s *Server) DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := s.printer(r)
		store := s.sessionStore(w, r)
		user := store.CurrentUser()

		userName := ""
		if user != nil {
			userName = user.FullName()
		}

		stats := []dashboardStat{
			{Label: p.Sprintf("dashboard.stats.revenue"), Value: "$45,231.89", Delta: "+20.1%"},
			{Label: p.Sprintf("dashboard.stats.orders"), Value: "+2,350", Delta: "+180.1%"},
			{Label: p.Sprintf("dashboard.stats.products"), Value: "12,234", Delta: "+19%"},
			{Label: p.Sprintf("dashboard.stats.customers"), Value: "+573", Delta: "+201"},
		}

		sessionExpires := ""
		if expiresAt, ok := store.ExpiresAt(); ok {
			sessionExpires = expiresAt.Local().Format("15:04, 2 Jan 2006")
		}

		s.renderPage(w, r, "home", p.Sprintf("labels.home"), "dashboard.html", map[string]any{
			"Welcome":             p.Sprintf("dashboard.welcome"),
			"UserName":            userName,
			"Subtitle":            p.Sprintf("dashboard.subtitle"),
			"Stats":               stats,
			"SessionExpiresLabel": p.Sprintf("dashboard.sessionExpires"),
			"SessionExpires":      sessionExpires,
		})
	}
}
