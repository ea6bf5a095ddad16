package users

import (
	"net/mail"
	"strings"
)

// Field length rules enforced by the backend schema; validated here first so
// that bad input never reaches the network layer.
const (
	minUserNameLength = 3
	maxUserNameLength = 50
	minNameLength     = 2
	maxNameLength     = 100
	minPasswordLength = 6
	maxPasswordLength = 100
)

// FieldErrors maps a form field name to a localizable message key.
// An empty map means the input passed validation.
type FieldErrors map[string]string

func (fe FieldErrors) Ok() bool { return len(fe) == 0 }

// Validate checks the registration payload against the backend's schema rules
func (r RegisterRequest) Validate() FieldErrors {
	fe := FieldErrors{}
	validateUserName(fe, r.UserName)
	validateEmail(fe, r.Email)
	validateName(fe, "firstName", r.FirstName)
	validateName(fe, "lastName", r.LastName)
	validatePassword(fe, r.Password)
	return fe
}

// Validate checks the admin user-creation payload
func (r CreateUserRequest) Validate() FieldErrors {
	fe := FieldErrors{}
	validateUserName(fe, r.UserName)
	validateEmail(fe, r.Email)
	validateName(fe, "firstName", r.FirstName)
	validateName(fe, "lastName", r.LastName)
	validatePassword(fe, r.Password)
	if r.Role != "" && !r.Role.Valid() {
		fe["role"] = "validation.role"
	}
	return fe
}

// Validate checks only the fields present in a partial update
func (r UpdateUserRequest) Validate() FieldErrors {
	fe := FieldErrors{}
	if r.Email != nil {
		validateEmail(fe, *r.Email)
	}
	if r.FirstName != nil {
		validateName(fe, "firstName", *r.FirstName)
	}
	if r.LastName != nil {
		validateName(fe, "lastName", *r.LastName)
	}
	if r.Role != nil && !r.Role.Valid() {
		fe["role"] = "validation.role"
	}
	return fe
}

func validateUserName(fe FieldErrors, userName string) {
	userName = strings.TrimSpace(userName)
	if len(userName) < minUserNameLength || len(userName) > maxUserNameLength {
		fe["userName"] = "validation.userName"
	}
}

func validateEmail(fe FieldErrors, email string) {
	if _, err := mail.ParseAddress(email); err != nil {
		fe["email"] = "validation.email"
	}
}

func validateName(fe FieldErrors, field, value string) {
	value = strings.TrimSpace(value)
	if len(value) < minNameLength || len(value) > maxNameLength {
		fe[field] = "validation." + field
	}
}

func validatePassword(fe FieldErrors, password string) {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		fe["password"] = "validation.password"
	}
}
