package server

import (
	"net/http"
	"strings"

	"github.com/gpiedrahita-hub/infinite-herbs-admin/internal/utils"
	"github.com/gpiedrahita-hub/infinite-herbs-admin/users"

	errs "github.com/gpiedrahita-hub/infinite-herbs-admin/internal/errors"
)

type userRow struct {
	ID         string
	Name       string
	UserName   string
	Email      string
	Role       string
	Active     bool
	Status     string
	Created    string
	EditPath   string
	DeletePath string
}

// UsersListHandler renders the user table (GET /{locale}/users)
func (s *Server) UsersListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := requestLocale(r)
		p := s.printer(r)
		store := s.sessionStore(w, r)
		client := s.apiClient(w, r, store)

		query := strings.TrimSpace(r.URL.Query().Get("q"))

		list, err := client.ListUsers(r.Context())
		if err != nil {
			if errs.Is(err, errs.ErrRefreshFailed) {
				return // the client already redirected to login
			}
			s.log.Err(err).Msg("listing users failed")
			s.renderUsersList(w, r, nil, query, p.Sprintf("errors.network"))
			return
		}

		caps := users.CapabilitiesFor(store.CurrentUser())

		rows := make([]userRow, 0, len(list))
		for _, u := range list {
			if !matchesQuery(u, query) {
				continue
			}
			status := p.Sprintf("users.active")
			if !u.IsActive {
				status = p.Sprintf("users.inactive")
			}
			row := userRow{
				ID:       u.ID,
				Name:     u.FullName(),
				UserName: u.UserName,
				Email:    u.Email,
				Role:     string(u.Role),
				Active:   u.IsActive,
				Status:   status,
				Created:  u.CreatedAt.Local().Format("2 Jan 2006"),
			}
			if caps.CanManageUsers {
				row.EditPath = localizedPath(loc, "/users/"+u.ID+"/edit")
				row.DeletePath = localizedPath(loc, "/users/"+u.ID+"/delete")
			}
			rows = append(rows, row)
		}

		s.renderUsersList(w, r, rows, query, r.URL.Query().Get("error"))
	}
}

func (s *Server) renderUsersList(w http.ResponseWriter, r *http.Request, rows []userRow, query, errorMsg string) {
	loc := requestLocale(r)
	p := s.printer(r)
	caps := users.CapabilitiesFor(s.sessionStore(w, r).CurrentUser())

	s.renderPage(w, r, "users", p.Sprintf("users.title"), "users_list.html", map[string]any{
		"Title":             p.Sprintf("users.title"),
		"Subtitle":          p.Sprintf("users.subtitle"),
		"SearchPlaceholder": p.Sprintf("users.search"),
		"AddLabel":          p.Sprintf("users.add"),
		"EditLabel":         p.Sprintf("users.edit"),
		"DeleteLabel":       p.Sprintf("users.delete"),
		"ConfirmDelete":     p.Sprintf("users.confirmDelete"),
		"EmptyLabel":        p.Sprintf("users.empty"),
		"UserColumn":        p.Sprintf("users.table.user"),
		"EmailColumn":       p.Sprintf("users.table.email"),
		"RoleColumn":        p.Sprintf("users.role"),
		"StatusColumn":      p.Sprintf("users.table.status"),
		"CreatedColumn":     p.Sprintf("users.table.created"),
		"ActionsColumn":     p.Sprintf("users.table.actions"),
		"CanManage":         caps.CanManageUsers,
		"ListPath":          localizedPath(loc, RouteUsers),
		"NewPath":           localizedPath(loc, RouteUsersNew),
		"Query":             query,
		"Rows":              rows,
		"Error":             errorMsg,
	})
}

func matchesQuery(u users.User, query string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	haystacks := []string{u.UserName, u.Email, u.FirstName, u.LastName, u.FullName()}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), query) {
			return true
		}
	}
	return false
}

// UserNewHandler renders an empty creation form (GET /{locale}/users/new)
func (s *Server) UserNewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderUserForm(w, r, userFormState{})
	}
}

// UserCreateHandler processes the creation form (POST /{locale}/users)
func (s *Server) UserCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := requestLocale(r)
		p := s.printer(r)

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		req := users.CreateUserRequest{
			UserName:  r.FormValue("userName"),
			Email:     r.FormValue("email"),
			Password:  r.FormValue("password"),
			FirstName: r.FormValue("firstName"),
			LastName:  r.FormValue("lastName"),
			Role:      users.ParseRole(r.FormValue("role")),
			IsActive:  utils.Ptr(r.FormValue("isActive") == "on"),
		}
		state := userFormState{
			UserName:  req.UserName,
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Role:      req.Role,
			IsActive:  *req.IsActive,
		}

		if fieldErrors := req.Validate(); !fieldErrors.Ok() {
			state.FieldErrors = fieldErrors
			s.renderUserForm(w, r, state)
			return
		}

		client := s.apiClient(w, r, s.sessionStore(w, r))
		if _, err := client.CreateUser(r.Context(), req); err != nil {
			switch {
			case errs.Is(err, errs.ErrRefreshFailed):
				return
			case errs.Is(err, errs.ErrConflict):
				state.Error = p.Sprintf("errors.conflict")
			default:
				s.log.Err(err).Str("userName", req.UserName).Msg("creating user failed")
				state.Error = p.Sprintf("errors.network")
			}
			s.renderUserForm(w, r, state)
			return
		}

		redirectSuccess(w, r, localizedPath(loc, RouteUsers))
	}
}

// UserEditHandler loads a user into the edit form (GET /{locale}/users/{id}/edit)
func (s *Server) UserEditHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := requestLocale(r)
		p := s.printer(r)
		client := s.apiClient(w, r, s.sessionStore(w, r))

		user, err := client.GetUser(r.Context(), r.PathValue("id"))
		if err != nil {
			switch {
			case errs.Is(err, errs.ErrRefreshFailed):
			case errs.Is(err, errs.ErrNotFound):
				redirectWithError(w, r, localizedPath(loc, RouteUsers), p.Sprintf("errors.notFound"))
			default:
				s.log.Err(err).Msg("loading user failed")
				redirectWithError(w, r, localizedPath(loc, RouteUsers), p.Sprintf("errors.network"))
			}
			return
		}

		s.renderUserForm(w, r, userFormState{
			ID:        user.ID,
			UserName:  user.UserName,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Role:      user.Role,
			IsActive:  user.IsActive,
		})
	}
}

// UserUpdateHandler processes the edit form (POST /{locale}/users/{id})
func (s *Server) UserUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := requestLocale(r)
		p := s.printer(r)

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		id := r.PathValue("id")
		role := users.ParseRole(r.FormValue("role"))
		req := users.UpdateUserRequest{
			Email:     utils.Ptr(r.FormValue("email")),
			FirstName: utils.Ptr(r.FormValue("firstName")),
			LastName:  utils.Ptr(r.FormValue("lastName")),
			Role:      &role,
			IsActive:  utils.Ptr(r.FormValue("isActive") == "on"),
		}
		state := userFormState{
			ID:        id,
			UserName:  r.FormValue("userName"),
			Email:     *req.Email,
			FirstName: *req.FirstName,
			LastName:  *req.LastName,
			Role:      role,
			IsActive:  *req.IsActive,
		}

		if fieldErrors := req.Validate(); !fieldErrors.Ok() {
			state.FieldErrors = fieldErrors
			s.renderUserForm(w, r, state)
			return
		}

		client := s.apiClient(w, r, s.sessionStore(w, r))
		if _, err := client.UpdateUser(r.Context(), id, req); err != nil {
			switch {
			case errs.Is(err, errs.ErrRefreshFailed):
				return
			case errs.Is(err, errs.ErrNotFound):
				redirectWithError(w, r, localizedPath(loc, RouteUsers), p.Sprintf("errors.notFound"))
				return
			case errs.Is(err, errs.ErrConflict):
				state.Error = p.Sprintf("errors.conflict")
			default:
				s.log.Err(err).Str("id", id).Msg("updating user failed")
				state.Error = p.Sprintf("errors.network")
			}
			s.renderUserForm(w, r, state)
			return
		}

		redirectSuccess(w, r, localizedPath(loc, RouteUsers))
	}
}

// UserDeleteHandler removes a user (POST /{locale}/users/{id}/delete)
func (s *Server) UserDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := requestLocale(r)
		p := s.printer(r)
		client := s.apiClient(w, r, s.sessionStore(w, r))

		id := r.PathValue("id")
		if err := client.DeleteUser(r.Context(), id); err != nil {
			switch {
			case errs.Is(err, errs.ErrRefreshFailed):
				return
			case errs.Is(err, errs.ErrNotFound):
				redirectWithError(w, r, localizedPath(loc, RouteUsers), p.Sprintf("errors.notFound"))
			default:
				s.log.Err(err).Str("id", id).Msg("deleting user failed")
				redirectWithError(w, r, localizedPath(loc, RouteUsers), p.Sprintf("errors.network"))
			}
			return
		}

		redirectSuccess(w, r, localizedPath(loc, RouteUsers))
	}
}

type userFormState struct {
	ID          string
	UserName    string
	Email       string
	FirstName   string
	LastName    string
	Role        users.RoleType
	IsActive    bool
	Error       string
	FieldErrors users.FieldErrors
}

func (s *Server) renderUserForm(w http.ResponseWriter, r *http.Request, state userFormState) {
	loc := requestLocale(r)
	p := s.printer(r)

	isEdit := state.ID != ""
	title := p.Sprintf("users.createTitle")
	action := localizedPath(loc, RouteUsers)
	if isEdit {
		title = p.Sprintf("users.editTitle")
		action = localizedPath(loc, "/users/"+state.ID)
	}

	type roleOption struct {
		Value    string
		Selected bool
	}
	roleOptions := make([]roleOption, 0, len(users.AllRoles))
	for _, role := range users.AllRoles {
		roleOptions = append(roleOptions, roleOption{Value: string(role), Selected: role == state.Role})
	}

	s.renderPage(w, r, "users", title, "user_form.html", map[string]any{
		"Title":          title,
		"IsEdit":         isEdit,
		"Action":         action,
		"UserNameLabel":  p.Sprintf("login.userName"),
		"PasswordLabel":  p.Sprintf("login.password"),
		"EmailLabel":     p.Sprintf("register.email"),
		"FirstNameLabel": p.Sprintf("register.firstName"),
		"LastNameLabel":  p.Sprintf("register.lastName"),
		"RoleLabel":      p.Sprintf("users.role"),
		"ActiveLabel":    p.Sprintf("users.active"),
		"SaveLabel":      p.Sprintf("users.save"),
		"CancelLabel":    p.Sprintf("users.cancel"),
		"CancelPath":     localizedPath(loc, RouteUsers),
		"Roles":          roleOptions,
		"Form":           state,
		"Error":          state.Error,
		"FieldErrors":    s.localizeFieldErrors(p, state.FieldErrors),
	})
}
