// Package mockapi is a stand-in for the real backend API, used for local
// development and integration tests. It serves the same endpoint surface and
// JSON shapes: camelCase user objects, {"detail": "..."} errors, HS256
// access/refresh tokens.
package mockapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gpiedrahita-hub/infinite-herbs-admin/users"
)

const (
	defaultAccessTokenTTL  = 30 * time.Minute
	defaultRefreshTokenTTL = 7 * 24 * time.Hour
)

type Server struct {
	mux    *http.ServeMux
	repo   *userRepo
	tokens *tokenIssuer
	log    zerolog.Logger
}

type Option func(*Server)

func WithLogger(log zerolog.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

// WithTokenTTLs overrides token lifetimes (shortened in tests)
func WithTokenTTLs(accessTTL, refreshTTL time.Duration) Option {
	return func(s *Server) {
		s.tokens = newTokenIssuer(string(s.tokens.secret), accessTTL, refreshTTL)
	}
}

func New(secret string, options ...Option) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		repo:   newUserRepo(),
		tokens: newTokenIssuer(secret, defaultAccessTokenTTL, defaultRefreshTokenTTL),
		log:    zerolog.Nop(),
	}
	for _, opt := range options {
		opt(s)
	}
	s.initRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) initRoutes() {
	s.mux.HandleFunc("POST /auth/login", s.LoginHandler())
	s.mux.HandleFunc("POST /auth/refresh", s.RefreshHandler())
	s.mux.HandleFunc("POST /auth/register", s.RegisterHandler())

	s.mux.HandleFunc("GET /users", s.RequireAuth()(s.ListUsersHandler()))
	s.mux.HandleFunc("POST /users", s.RequireAuth()(s.CreateUserHandler()))
	s.mux.HandleFunc("GET /users/{id}", s.RequireAuth()(s.GetUserHandler()))
	s.mux.HandleFunc("PUT /users/{id}", s.RequireAuth()(s.UpdateUserHandler()))
	s.mux.HandleFunc("DELETE /users/{id}", s.RequireAuth()(s.DeleteUserHandler()))
}

// Seed loads the development users that ship with the real backend,
// all with password "admin123".
func (s *Server) Seed() error {
	seeds := []users.User{
		{UserName: "admin", Email: "admin@admin.com", FirstName: "Admin", LastName: "System", Role: users.RoleAdmin, IsActive: true},
		{UserName: "jdoe", Email: "jdoe@admin.com", FirstName: "John", LastName: "Doe", Role: users.RoleUser, IsActive: true},
		{UserName: "mjane", Email: "mjane@admin.com", FirstName: "Mary", LastName: "Jane", Role: users.RoleViewer, IsActive: true},
	}
	hash, err := hashPassword("admin123")
	if err != nil {
		return err
	}
	for _, seed := range seeds {
		s.repo.Insert(seed, hash)
	}
	return nil
}

// CreateUser inserts a user directly, for test arrangement
func (s *Server) CreateUser(user users.User, password string) (*users.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	stored := s.repo.Insert(user, hash)
	profile := stored.User
	return &profile, nil
}

// RequireAuth validates the Bearer access token on protected routes
func (s *Server) RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				writeDetail(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			claims, err := s.tokens.Parse(parts[1])
			if err != nil || claims.TokenType != tokenTypeAccess {
				writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}
			next(w, r)
		}
	}
}

func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req users.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		stored, err := s.repo.GetByUserName(req.UserName)
		if err != nil || !checkPassword(req.Password, stored.passwordHash) {
			writeDetail(w, http.StatusUnauthorized, "Usuario o contraseña incorrectos")
			return
		}
		if !stored.IsActive {
			writeDetail(w, http.StatusForbidden, "Usuario inactivo")
			return
		}

		accessToken, err := s.tokens.IssueAccess(stored.UserName, stored.ID)
		if err != nil {
			writeDetail(w, http.StatusInternalServerError, "Token generation failed")
			return
		}
		refreshToken, err := s.tokens.IssueRefresh(stored.UserName, stored.ID)
		if err != nil {
			writeDetail(w, http.StatusInternalServerError, "Token generation failed")
			return
		}

		s.log.Info().Str("userName", stored.UserName).Msg("login")
		writeJSON(w, http.StatusOK, users.LoginResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			TokenType:    "bearer",
			User:         stored.User,
		})
	}
}

func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		claims, err := s.tokens.Parse(req.RefreshToken)
		if err != nil || claims.TokenType != tokenTypeRefresh {
			writeDetail(w, http.StatusUnauthorized, "Token de refresh inválido")
			return
		}

		accessToken, err := s.tokens.IssueAccess(claims.Subject, claims.UserID)
		if err != nil {
			writeDetail(w, http.StatusInternalServerError, "Token generation failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"accessToken": accessToken})
	}
}

func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req users.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if _, err := s.repo.GetByUserName(req.UserName); err == nil {
			writeDetail(w, http.StatusBadRequest, "El username ya está registrado")
			return
		}
		if _, err := s.repo.GetByEmail(req.Email); err == nil {
			writeDetail(w, http.StatusBadRequest, "El email ya está registrado")
			return
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			writeDetail(w, http.StatusInternalServerError, "Hashing failed")
			return
		}
		stored := s.repo.Insert(users.User{
			UserName:  req.UserName,
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Role:      users.RoleUser,
			IsActive:  true,
		}, hash)

		writeJSON(w, http.StatusCreated, stored.User)
	}
}

func (s *Server) ListUsersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.repo.List())
	}
}

func (s *Server) GetUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stored, err := s.repo.GetByID(r.PathValue("id"))
		if err != nil {
			writeDetail(w, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		writeJSON(w, http.StatusOK, stored.User)
	}
}

func (s *Server) CreateUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req users.CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if _, err := s.repo.GetByUserName(req.UserName); err == nil {
			writeDetail(w, http.StatusBadRequest, "El username ya está registrado")
			return
		}
		if _, err := s.repo.GetByEmail(req.Email); err == nil {
			writeDetail(w, http.StatusBadRequest, "El email ya está registrado")
			return
		}

		role := req.Role
		if role == "" {
			role = users.RoleUser
		}
		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			writeDetail(w, http.StatusInternalServerError, "Hashing failed")
			return
		}
		stored := s.repo.Insert(users.User{
			UserName:  req.UserName,
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Role:      role,
			IsActive:  isActive,
		}, hash)

		writeJSON(w, http.StatusCreated, stored.User)
	}
}

func (s *Server) UpdateUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req users.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		stored, err := s.repo.Update(r.PathValue("id"), req)
		if err != nil {
			writeDetail(w, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		writeJSON(w, http.StatusOK, stored.User)
	}
}

func (s *Server) DeleteUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.repo.Delete(r.PathValue("id")); err != nil {
			writeDetail(w, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
