package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gpiedrahita-hub/infinite-herbs-admin/api"
	errs "github.com/gpiedrahita-hub/infinite-herbs-admin/internal/errors"
	"github.com/gpiedrahita-hub/infinite-herbs-admin/internal/mockapi"
	"github.com/gpiedrahita-hub/infinite-herbs-admin/session"
	"github.com/gpiedrahita-hub/infinite-herbs-admin/session/storagefake"
	"github.com/gpiedrahita-hub/infinite-herbs-admin/users"
)

type testConfig struct {
	baseURL string
}

func (tc testConfig) GetAPIBaseURL() string        { return tc.baseURL }
func (tc testConfig) GetAPITimeout() time.Duration { return 5 * time.Second }

func newStore(accessToken, refreshToken string) *session.Store {
	store := session.NewStore(storagefake.New())
	if accessToken != "" {
		store.Save(session.Session{AccessToken: accessToken, RefreshToken: refreshToken})
	}
	return store
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]users.User{})
	}))
	defer backend.Close()

	client := api.New(testConfig{backend.URL}, newStore("token-1", ""))
	_, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer token-1", gotAuth)
}

func TestClient_NoBearerWithoutToken(t *testing.T) {
	var gotAuth string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]users.User{})
	}))
	defer backend.Close()

	client := api.New(testConfig{backend.URL}, newStore("", ""))
	_, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestClient_RetriesAtMostOnceOn401(t *testing.T) {
	var resourceCalls, refreshCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		resourceCalls++
		writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
	})
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "fresh-token"})
	})
	backend := httptest.NewServer(mux)
	defer backend.Close()

	client := api.New(testConfig{backend.URL}, newStore("stale", "refresh-1"))
	_, err := client.ListUsers(context.Background())

	// Second consecutive 401 is propagated, not retried again
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.ErrUnauthorized))
	require.Equal(t, 2, resourceCalls)
	require.Equal(t, 1, refreshCalls)
}

func TestClient_RefreshAndReplaySucceeds(t *testing.T) {
	want := []users.User{{ID: "u-1", UserName: "admin", Role: users.RoleAdmin}}

	var replayAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fresh-token" {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		replayAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(want)
	})
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			RefreshToken string `json:"refreshToken"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "refresh-1", req.RefreshToken)
		require.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "fresh-token"})
	})
	backend := httptest.NewServer(mux)
	defer backend.Close()

	store := newStore("stale", "refresh-1")
	client := api.New(testConfig{backend.URL}, store)

	got, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, "Bearer fresh-token", replayAuth)

	// The rotated token is persisted for subsequent requests
	token, ok := store.AccessToken()
	require.True(t, ok)
	require.Equal(t, "fresh-token", token)
}

func TestClient_RefreshFailureClearsSessionAndRedirects(t *testing.T) {
	var resourceCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		resourceCalls++
		writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
	})
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusUnauthorized, "Token de refresh inválido")
	})
	backend := httptest.NewServer(mux)
	defer backend.Close()

	store := newStore("stale", "bad-refresh")
	var redirected bool
	client := api.New(testConfig{backend.URL}, store,
		api.WithSessionLostHandler(func() { redirected = true }))

	_, err := client.ListUsers(context.Background())
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.ErrRefreshFailed))
	require.True(t, redirected)
	require.False(t, store.IsAuthenticated())

	// No replay of the original request after a failed refresh
	require.Equal(t, 1, resourceCalls)
}

func TestClient_NoRefreshTokenPropagatesOriginal401(t *testing.T) {
	var refreshCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusUnauthorized, "Not authenticated")
	})
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
	})
	backend := httptest.NewServer(mux)
	defer backend.Close()

	store := newStore("stale", "")
	client := api.New(testConfig{backend.URL}, store)

	_, err := client.ListUsers(context.Background())
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.ErrUnauthorized))
	require.Zero(t, refreshCalls)

	// Session is left intact; only a failed refresh clears it
	require.True(t, store.IsAuthenticated())
}

func TestClient_ErrorMapping(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Usuario no encontrado")
	})
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusBadRequest, "El username ya está registrado")
	})
	backend := httptest.NewServer(mux)
	defer backend.Close()

	client := api.New(testConfig{backend.URL}, newStore("", ""))

	t.Run("not found", func(t *testing.T) {
		_, err := client.GetUser(context.Background(), "missing")
		require.True(t, errs.Is(err, errs.ErrNotFound))

		var apiErr *api.APIError
		require.True(t, errs.As(err, &apiErr))
		require.Equal(t, "Usuario no encontrado", apiErr.Detail)
	})

	t.Run("conflict", func(t *testing.T) {
		err := client.Register(context.Background(), users.RegisterRequest{UserName: "admin"})
		require.True(t, errs.Is(err, errs.ErrConflict))
	})
}

func TestClient_NetworkErrorPropagates(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // refuse connections

	client := api.New(testConfig{backend.URL}, newStore("", ""))
	_, err := client.ListUsers(context.Background())
	require.Error(t, err)
	require.False(t, errs.Is(err, errs.ErrUnauthorized))
}

// Scenario tests against the full mock backend.

func newMockBackend(t *testing.T) (*httptest.Server, *mockapi.Server) {
	t.Helper()
	backend := mockapi.New("integration-secret")
	require.NoError(t, backend.Seed())
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	return server, backend
}

func TestClient_LoginScenario(t *testing.T) {
	server, _ := newMockBackend(t)
	store := session.NewStore(storagefake.New())
	client := api.New(testConfig{server.URL}, store)

	resp, err := client.Login(context.Background(), users.LoginRequest{
		UserName: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	require.Equal(t, "admin", resp.User.UserName)
	require.Equal(t, users.RoleAdmin, resp.User.Role)

	store.Save(session.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		User:         &resp.User,
	})
	require.True(t, store.IsAuthenticated())
	require.Equal(t, "admin", store.CurrentUser().UserName)
}

func TestClient_LoginRejectsBadCredentials(t *testing.T) {
	server, _ := newMockBackend(t)
	client := api.New(testConfig{server.URL}, session.NewStore(storagefake.New()))

	_, err := client.Login(context.Background(), users.LoginRequest{
		UserName: "admin",
		Password: "wrong",
	})
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.ErrUnauthorized))
}

func TestClient_EndToEndRefreshEqualsValidRequest(t *testing.T) {
	server, _ := newMockBackend(t)
	store := session.NewStore(storagefake.New())
	client := api.New(testConfig{server.URL}, store)

	resp, err := client.Login(context.Background(), users.LoginRequest{
		UserName: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)

	// Baseline: listing with a valid token
	store.Save(session.Session{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken})
	baseline, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, baseline, 3)

	// Same call with a broken access token and a valid refresh token must
	// produce the same result via refresh-and-replay.
	store.SetAccessToken("tampered-token")
	refreshed, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, baseline, refreshed)

	token, ok := store.AccessToken()
	require.True(t, ok)
	require.NotEqual(t, "tampered-token", token)
}

func TestClient_UserCRUDAgainstMockBackend(t *testing.T) {
	server, _ := newMockBackend(t)
	store := session.NewStore(storagefake.New())
	client := api.New(testConfig{server.URL}, store)

	resp, err := client.Login(context.Background(), users.LoginRequest{UserName: "admin", Password: "admin123"})
	require.NoError(t, err)
	store.Save(session.Session{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken, User: &resp.User})

	created, err := client.CreateUser(context.Background(), users.CreateUserRequest{
		UserName:  "nherb",
		Email:     "nherb@admin.com",
		Password:  "secret1",
		FirstName: "Nina",
		LastName:  "Herb",
		Role:      users.RoleViewer,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, users.RoleViewer, created.Role)

	fetched, err := client.GetUser(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.UserName, fetched.UserName)

	newEmail := "nina@admin.com"
	inactive := false
	updated, err := client.UpdateUser(context.Background(), created.ID, users.UpdateUserRequest{
		Email:    &newEmail,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	require.Equal(t, newEmail, updated.Email)
	require.False(t, updated.IsActive)
	require.NotNil(t, updated.UpdatedAt)

	require.NoError(t, client.DeleteUser(context.Background(), created.ID))
	_, err = client.GetUser(context.Background(), created.ID)
	require.True(t, errs.Is(err, errs.ErrNotFound))
}
