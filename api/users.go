package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gpiedrahita-hub/infinite-herbs-admin/users"
)

// ListUsers fetches every user
func (c *Client) ListUsers(ctx context.Context) ([]users.User, error) {
	var list []users.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetUser fetches one user by ID
func (c *Client) GetUser(ctx context.Context, id string) (*users.User, error) {
	var user users.User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a user on behalf of an admin
func (c *Client) CreateUser(ctx context.Context, req users.CreateUserRequest) (*users.User, error) {
	var user users.User
	if err := c.do(ctx, http.MethodPost, "/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a partial update; nil fields are left unchanged
func (c *Client) UpdateUser(ctx context.Context, id string, req users.UpdateUserRequest) (*users.User, error) {
	var user users.User
	if err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil)
}
