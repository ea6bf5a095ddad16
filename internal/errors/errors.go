package errors

import (
	"errors"
	"fmt"
)

// Common error types shared across the frontend tier
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNoRefreshToken     = errors.New("no refresh token stored")
	ErrRefreshFailed      = errors.New("token refresh failed")

	// Authorization errors
	ErrForbidden = errors.New("forbidden")

	// Backend errors
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already registered")
	ErrBackend  = errors.New("backend error")

	// Session errors
	ErrNoSession = errors.New("no session")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
