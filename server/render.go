package server

import (
	"html/template"
	"net/http"
	"strings"

	"golang.org/x/text/message"

	"github.com/gpiedrahita-hub/infinite-herbs-admin/locale"
	"github.com/gpiedrahita-hub/infinite-herbs-admin/nav"
)

const contentTypeHTML = "text/html; charset=utf-8"

func (s *Server) printer(r *http.Request) *message.Printer {
	return locale.Printer(requestLocale(r))
}

// renderPage renders a content template into the shared layout. The layout
// receives the sidebar entries for the cached profile's role plus the locale
// switcher; the content template receives the handler's own data map.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, activePage, pageTitle, contentTemplate string, content map[string]any) {
	loc := requestLocale(r)
	p := locale.Printer(loc)
	store := s.sessionStore(w, r)
	user := store.CurrentUser()

	type navEntry struct {
		Label  string
		Path   string
		Active bool
	}
	navEntries := make([]navEntry, 0)
	for _, item := range nav.ForUser(user) {
		navEntries = append(navEntries, navEntry{
			Label:  p.Sprintf(item.Label),
			Path:   localizedPath(loc, item.Path),
			Active: item.Key == activePage,
		})
	}

	type localeOption struct {
		Code     string
		Label    string
		Selected bool
	}
	localeOptions := make([]localeOption, 0)
	for _, l := range locale.Supported() {
		localeOptions = append(localeOptions, localeOption{
			Code:     string(l),
			Label:    l.Label(),
			Selected: l == loc,
		})
	}

	userName := ""
	if user != nil {
		userName = strings.TrimSpace(user.FullName())
		if userName == "" {
			userName = user.UserName
		}
	}

	contentTmpl, err := ParseTemplate(contentTemplate)
	if err != nil {
		s.log.Err(err).Str("template", contentTemplate).Msg("Failed to load content template")
		http.Error(w, "Failed to load content template", http.StatusInternalServerError)
		return
	}

	var contentBuf strings.Builder
	if err := contentTmpl.Execute(&contentBuf, content); err != nil {
		s.log.Err(err).Str("template", contentTemplate).Msg("Failed to render content")
		http.Error(w, "Failed to render content", http.StatusInternalServerError)
		return
	}

	layoutTmpl, err := ParseTemplate("layout.html")
	if err != nil {
		http.Error(w, "Failed to load layout template", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Lang":            string(loc),
		"AppName":         p.Sprintf("app.name"),
		"PageTitle":       pageTitle,
		"LoggedIn":        store.IsAuthenticated(),
		"UserName":        userName,
		"Nav":             navEntries,
		"NavigationLabel": p.Sprintf("sidebar.navigation"),
		"LogoutLabel":     p.Sprintf("sidebar.logout"),
		"LogoutPath":      localizedPath(loc, RouteLogout),
		"LocalePath":      localizedPath(loc, RouteLocale),
		"CurrentPath":     r.URL.Path,
		"Locales":         localeOptions,
		"Content":         template.HTML(contentBuf.String()),
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	if err := layoutTmpl.Execute(w, data); err != nil {
		s.log.Err(err).Msg("Failed to render layout template")
	}
}
