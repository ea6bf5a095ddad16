package server

import (
	"net/http"

	"github.com/gpiedrahita-hub/infinite-herbs-admin/session"
	"github.com/gpiedrahita-hub/infinite-herbs-admin/users"

	errs "github.com/gpiedrahita-hub/infinite-herbs-admin/internal/errors"
)

// LoginPageHandler displays the login form (GET /{locale}/login)
func (s *Server) LoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notice := ""
		if r.URL.Query().Get("registered") == "1" {
			notice = s.printer(r).Sprintf("register.success")
		}
		s.renderLoginPage(w, r, r.URL.Query().Get("error"), notice, r.URL.Query().Get("userName"))
	}
}

// LoginSubmitHandler processes the login form submission (POST /{locale}/login)
func (s *Server) LoginSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := requestLocale(r)
		p := s.printer(r)

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		userName := r.FormValue("userName")
		password := r.FormValue("password")
		if userName == "" || password == "" {
			s.renderLoginPage(w, r, p.Sprintf("login.invalid"), "", userName)
			return
		}

		store := s.sessionStore(w, r)
		client := s.apiClient(w, r, store)

		resp, err := client.Login(r.Context(), users.LoginRequest{
			UserName: userName,
			Password: password,
		})
		if err != nil {
			switch {
			case errs.Is(err, errs.ErrForbidden):
				s.renderLoginPage(w, r, p.Sprintf("login.inactive"), "", userName)
			case errs.Is(err, errs.ErrUnauthorized):
				s.renderLoginPage(w, r, p.Sprintf("login.invalid"), "", userName)
			default:
				s.log.Err(err).Str("userName", userName).Msg("login request failed")
				s.renderLoginPage(w, r, p.Sprintf("errors.network"), "", userName)
			}
			return
		}

		store.Save(session.Session{
			AccessToken:  resp.AccessToken,
			RefreshToken: resp.RefreshToken,
			User:         &resp.User,
		})
		redirectSuccess(w, r, localizedPath(loc, RouteDashboard))
	}
}

func (s *Server) renderLoginPage(w http.ResponseWriter, r *http.Request, errorMsg, notice, userName string) {
	loc := requestLocale(r)
	p := s.printer(r)

	s.renderPage(w, r, "", p.Sprintf("login.title"), "login.html", map[string]any{
		"Title":          p.Sprintf("login.title"),
		"UserNameLabel":  p.Sprintf("login.userName"),
		"PasswordLabel":  p.Sprintf("login.password"),
		"SubmitLabel":    p.Sprintf("login.submit"),
		"NoAccountLabel": p.Sprintf("login.noAccount"),
		"RegisterLabel":  p.Sprintf("landing.register"),
		"RegisterPath":   localizedPath(loc, RouteRegister),
		"Action":         localizedPath(loc, RouteLogin),
		"Error":          errorMsg,
		"Notice":         notice,
		"UserName":       userName,
	})
}

// LogoutHandler clears the session cookies (GET /{locale}/logout)
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := s.sessionStore(w, r)
		store.Clear()
		redirectSuccess(w, r, localizedPath(requestLocale(r), RouteLogin))
	}
}
