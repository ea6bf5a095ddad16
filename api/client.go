// Package api is the authorizing HTTP client for the backend API. Every
// request carries the stored bearer token; a 401 triggers exactly one token
// refresh and one replay of the original request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gpiedrahita-hub/infinite-herbs-admin/internal/config"
	errs "github.com/gpiedrahita-hub/infinite-herbs-admin/internal/errors"
	"github.com/gpiedrahita-hub/infinite-herbs-admin/session"
)

type Client struct {
	baseURL       string
	http          *http.Client
	store         *session.Store
	onSessionLost func() // invoked after a failed refresh clears the session
	log           zerolog.Logger
}

type Option func(*Client)

// WithHTTPClient overrides the underlying transport (primarily for testing)
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithLogger attaches a structured logger
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithSessionLostHandler registers the redirect-to-login side effect fired
// when a refresh fails and the session is cleared
func WithSessionLostHandler(fn func()) Option {
	return func(c *Client) {
		c.onSessionLost = fn
	}
}

func New(cfg config.APIConfig, store *session.Store, options ...Option) *Client {
	c := &Client{
		baseURL:       cfg.GetAPIBaseURL(),
		http:          &http.Client{Timeout: cfg.GetAPITimeout()},
		store:         store,
		onSessionLost: func() {},
		log:           zerolog.Nop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// do runs one API call. The retry policy is structural: the 401 branch can
// execute at most once per call, so a request is never replayed twice even if
// the replay fails with 401 again.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	payload, err := marshalBody(body)
	if err != nil {
		return errs.Wrapf(err, "[api.do] encode %s %s", method, path)
	}

	token, _ := c.store.AccessToken()
	status, data, err := c.roundTrip(ctx, method, path, payload, token)
	if err != nil {
		return errs.Wrapf(err, "[api.do] %s %s", method, path)
	}

	if status == http.StatusUnauthorized {
		newToken, refreshErr := c.refreshSession(ctx)
		if refreshErr != nil {
			if errs.Is(refreshErr, errs.ErrNoRefreshToken) {
				// Nothing to refresh with; surface the original failure
				return newAPIError(status, data)
			}
			return refreshErr
		}

		c.log.Debug().Str("method", method).Str("path", path).Msg("retrying request with refreshed token")
		status, data, err = c.roundTrip(ctx, method, path, payload, newToken)
		if err != nil {
			return errs.Wrapf(err, "[api.do] retry %s %s", method, path)
		}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return newAPIError(status, data)
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return errs.Wrapf(err, "[api.do] decode %s %s", method, path)
		}
	}
	return nil
}

// refreshSession exchanges the stored refresh token for a new access token.
// Any failure clears the session and fires the session-lost handler; the
// caller propagates the refresh error without replaying the request.
func (c *Client) refreshSession(ctx context.Context) (string, error) {
	refreshToken, ok := c.store.RefreshToken()
	if !ok {
		return "", errs.ErrNoRefreshToken
	}

	payload, err := marshalBody(refreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return "", errs.Wrapf(err, "[api.refreshSession] encode")
	}

	// The refresh call itself carries no bearer token and never retries
	status, data, err := c.roundTrip(ctx, http.MethodPost, "/auth/refresh", payload, "")
	if err == nil && (status < http.StatusOK || status >= http.StatusMultipleChoices) {
		err = newAPIError(status, data)
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("token refresh failed, clearing session")
		c.store.Clear()
		c.onSessionLost()
		return "", fmt.Errorf("%w: %w", errs.ErrRefreshFailed, err)
	}

	var refreshed refreshResponse
	if err := json.Unmarshal(data, &refreshed); err != nil || refreshed.AccessToken == "" {
		c.log.Warn().Msg("token refresh returned an unusable response, clearing session")
		c.store.Clear()
		c.onSessionLost()
		return "", errs.Wrapf(errs.ErrRefreshFailed, "[api.refreshSession] bad response")
	}

	c.store.SetAccessToken(refreshed.AccessToken)
	return refreshed.AccessToken, nil
}

// roundTrip performs a single HTTP exchange and drains the response
func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte, token string) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, data, nil
}

func marshalBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	return json.Marshal(body)
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}
