package server

import (
	"net/http"
	"net/url"

	"github.com/gpiedrahita-hub/infinite-herbs-admin/users"

	errs "github.com/gpiedrahita-hub/infinite-herbs-admin/internal/errors"
)

// RegisterPageHandler displays the self-registration form (GET /{locale}/register)
func (s *Server) RegisterPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderRegisterPage(w, r, users.RegisterRequest{}, nil, "")
	}
}

// RegisterSubmitHandler processes the registration form (POST /{locale}/register)
func (s *Server) RegisterSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := requestLocale(r)
		p := s.printer(r)

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		req := users.RegisterRequest{
			UserName:  r.FormValue("userName"),
			Email:     r.FormValue("email"),
			Password:  r.FormValue("password"),
			FirstName: r.FormValue("firstName"),
			LastName:  r.FormValue("lastName"),
		}

		if fieldErrors := req.Validate(); !fieldErrors.Ok() {
			s.renderRegisterPage(w, r, req, fieldErrors, "")
			return
		}

		client := s.apiClient(w, r, s.sessionStore(w, r))
		if err := client.Register(r.Context(), req); err != nil {
			switch {
			case errs.Is(err, errs.ErrConflict):
				s.renderRegisterPage(w, r, req, nil, p.Sprintf("errors.conflict"))
			default:
				s.log.Err(err).Str("userName", req.UserName).Msg("register request failed")
				s.renderRegisterPage(w, r, req, nil, p.Sprintf("errors.network"))
			}
			return
		}

		query := url.Values{"registered": {"1"}, "userName": {req.UserName}}
		redirectSuccess(w, r, localizedPath(loc, RouteLogin)+"?"+query.Encode())
	}
}

func (s *Server) renderRegisterPage(w http.ResponseWriter, r *http.Request, req users.RegisterRequest, fieldErrors users.FieldErrors, errorMsg string) {
	loc := requestLocale(r)
	p := s.printer(r)

	s.renderPage(w, r, "", p.Sprintf("register.title"), "register.html", map[string]any{
		"Title":           p.Sprintf("register.title"),
		"UserNameLabel":   p.Sprintf("login.userName"),
		"PasswordLabel":   p.Sprintf("login.password"),
		"EmailLabel":      p.Sprintf("register.email"),
		"FirstNameLabel":  p.Sprintf("register.firstName"),
		"LastNameLabel":   p.Sprintf("register.lastName"),
		"SubmitLabel":     p.Sprintf("register.submit"),
		"HasAccountLabel": p.Sprintf("register.hasAccount"),
		"LoginLabel":      p.Sprintf("landing.login"),
		"LoginPath":       localizedPath(loc, RouteLogin),
		"Action":          localizedPath(loc, RouteRegister),
		"Error":           errorMsg,
		"FieldErrors":     s.localizeFieldErrors(p, fieldErrors),
		"Form":            req,
	})
}
