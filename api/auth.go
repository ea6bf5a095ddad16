package api

import (
	"context"
	"net/http"

	errs "github.com/gpiedrahita-hub/infinite-herbs-admin/internal/errors"
	"github.com/gpiedrahita-hub/infinite-herbs-admin/users"
)

// Login exchanges credentials for a session. Persisting the returned tokens
// is the caller's decision; the client itself does not write to the store
// here.
func (c *Client) Login(ctx context.Context, req users.LoginRequest) (*users.LoginResponse, error) {
	var resp users.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account. The created-user body is ignored; callers
// send the user to the login page afterwards.
func (c *Client) Register(ctx context.Context, req users.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", req, nil)
}

// Refresh forces a token refresh outside the 401 path, returning the new
// access token. Failure clears the session like any other refresh failure.
func (c *Client) Refresh(ctx context.Context) (string, error) {
	token, err := c.refreshSession(ctx)
	if err != nil {
		return "", errs.Wrapf(err, "[api.Refresh]")
	}
	return token, nil
}
