package users

import (
	"strings"
	"time"
)

// RoleType represents one of the fixed application roles
type RoleType string

const (
	RoleAdmin  RoleType = "admin"  // Can manage users and see everything
	RoleUser   RoleType = "user"   // Regular user, dashboard only
	RoleViewer RoleType = "viewer" // Read-only access to user listings
)

// AllRoles lists every role the backend accepts, in display order
var AllRoles = []RoleType{RoleAdmin, RoleUser, RoleViewer}

// ParseRole returns the role matching s, or RoleUser if s is not a known role
func ParseRole(s string) RoleType {
	role := RoleType(strings.ToLower(strings.TrimSpace(s)))
	if role.Valid() {
		return role
	}
	return RoleUser
}

func (r RoleType) Valid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// In reports whether the role is a member of the given set
func (r RoleType) In(roles ...RoleType) bool {
	for _, role := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// User is the cached profile snapshot returned by the backend API.
// The authoritative copy lives in the backend; this tier only reads it.
type User struct {
	ID        string     `json:"id,omitempty"`        // Unique identifier for the user
	UserName  string     `json:"userName,omitempty"`  // Unique username used for login
	Email     string     `json:"email,omitempty"`     // User's email address
	FirstName string     `json:"firstName,omitempty"` // First name of the user
	LastName  string     `json:"lastName,omitempty"`  // Last name of the user
	Role      RoleType   `json:"role,omitempty"`      // admin, user or viewer
	IsActive  bool       `json:"isActive"`            // Inactive users cannot log in
	CreatedAt time.Time  `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"` // Null until the first update
}

// FullName builds a display name, falling back to the username
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.UserName
	}
	return name
}

func (u *User) HasRole(roles ...RoleType) bool {
	if u == nil {
		return false
	}
	return u.Role.In(roles...)
}

// LoginRequest is the credential payload for POST /auth/login
type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// LoginResponse is the session material returned on a successful login
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	TokenType    string `json:"tokenType,omitempty"`
	User         User   `json:"user"`
}

// RegisterRequest is the self-registration payload for POST /auth/register
type RegisterRequest struct {
	UserName  string `json:"userName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CreateUserRequest is the admin user-creation payload for POST /users
type CreateUserRequest struct {
	UserName  string   `json:"userName"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Role      RoleType `json:"role,omitempty"`
	IsActive  *bool    `json:"isActive,omitempty"`
}

// UpdateUserRequest is the partial-update payload for PUT /users/{id}.
// Nil fields are omitted and left unchanged by the backend.
type UpdateUserRequest struct {
	Email     *string   `json:"email,omitempty"`
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
	Role      *RoleType `json:"role,omitempty"`
	IsActive  *bool     `json:"isActive,omitempty"`
}
