package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gpiedrahita-hub/infinite-herbs-admin/session"
	"github.com/gpiedrahita-hub/infinite-herbs-admin/session/storagefake"
	"github.com/gpiedrahita-hub/infinite-herbs-admin/users"
	"github.com/stretchr/testify/require"
)

func testUser() *users.User {
	return &users.User{
		ID:        "u-1",
		UserName:  "admin",
		Email:     "admin@admin.com",
		FirstName: "Admin",
		LastName:  "System",
		Role:      users.RoleAdmin,
		IsActive:  true,
	}
}

func TestStore_SaveAndRead(t *testing.T) {
	store := session.NewStore(storagefake.New())

	require.False(t, store.IsAuthenticated())
	require.Nil(t, store.CurrentUser())

	store.Save(session.Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		User:         testUser(),
	})

	require.True(t, store.IsAuthenticated())

	token, ok := store.AccessToken()
	require.True(t, ok)
	require.Equal(t, "access-1", token)

	refresh, ok := store.RefreshToken()
	require.True(t, ok)
	require.Equal(t, "refresh-1", refresh)

	user := store.CurrentUser()
	require.NotNil(t, user)
	require.Equal(t, "admin", user.UserName)
	require.Equal(t, users.RoleAdmin, user.Role)
}

func TestStore_SaveWithoutRefreshToken(t *testing.T) {
	storage := storagefake.New()
	store := session.NewStore(storage)

	store.Save(session.Session{AccessToken: "access-1", User: testUser()})

	_, ok := store.RefreshToken()
	require.False(t, ok)
	require.True(t, store.IsAuthenticated())
}

func TestStore_Clear(t *testing.T) {
	storage := storagefake.New()
	store := session.NewStore(storage)

	store.Save(session.Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		User:         testUser(),
	})
	store.Clear()

	require.False(t, store.IsAuthenticated())
	require.Nil(t, store.CurrentUser())
	require.Zero(t, storage.Len())
}

func TestStore_HasRole(t *testing.T) {
	t.Run("no cached user", func(t *testing.T) {
		store := session.NewStore(storagefake.New())
		for _, role := range users.AllRoles {
			require.False(t, store.HasRole(role))
		}
	})

	t.Run("membership", func(t *testing.T) {
		store := session.NewStore(storagefake.New())
		store.Save(session.Session{AccessToken: "a", User: testUser()})

		require.True(t, store.HasRole(users.RoleAdmin))
		require.True(t, store.HasRole(users.RoleAdmin, users.RoleViewer))
		require.False(t, store.HasRole(users.RoleUser, users.RoleViewer))
	})
}

func TestStore_UnavailableStorage(t *testing.T) {
	store := session.NewStore(nil)

	store.Save(session.Session{AccessToken: "a", User: testUser()})
	store.Clear()

	require.False(t, store.IsAuthenticated())
	require.Nil(t, store.CurrentUser())
	require.False(t, store.HasRole(users.RoleAdmin))

	_, ok := store.AccessToken()
	require.False(t, ok)
}

func TestStore_TokenAndProfileAreIndependent(t *testing.T) {
	// A crash between writes can leave a token without a profile; the two
	// reads must not mask each other.
	storage := storagefake.New()
	storage.Set(session.KeyAccessToken, "orphan-token")

	store := session.NewStore(storage)
	require.True(t, store.IsAuthenticated())
	require.Nil(t, store.CurrentUser())
}

func TestStore_ExpiresAt(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	store := session.NewStore(storagefake.New())
	store.Save(session.Session{AccessToken: signed})

	got, ok := store.ExpiresAt()
	require.True(t, ok)
	require.Equal(t, exp.Unix(), got.Unix())

	t.Run("opaque token", func(t *testing.T) {
		store := session.NewStore(storagefake.New())
		store.Save(session.Session{AccessToken: "not-a-jwt"})
		_, ok := store.ExpiresAt()
		require.False(t, ok)
	})
}

func TestCookieStorage(t *testing.T) {
	t.Run("set then get within one request", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		storage := session.NewCookieStorage(w, r)

		storage.Set(session.KeyAccessToken, "access-1")

		value, ok := storage.Get(session.KeyAccessToken)
		require.True(t, ok)
		require.Equal(t, "access-1", value)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, session.KeyAccessToken, cookies[0].Name)
		require.Equal(t, "access-1", cookies[0].Value)
		require.True(t, cookies[0].HttpOnly)
	})

	t.Run("reads incoming cookies", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: session.KeyAccessToken, Value: "from-browser"})
		storage := session.NewCookieStorage(w, r)

		value, ok := storage.Get(session.KeyAccessToken)
		require.True(t, ok)
		require.Equal(t, "from-browser", value)
	})

	t.Run("delete shadows incoming cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: session.KeyAccessToken, Value: "from-browser"})
		storage := session.NewCookieStorage(w, r)

		storage.Delete(session.KeyAccessToken)

		_, ok := storage.Get(session.KeyAccessToken)
		require.False(t, ok)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, -1, cookies[0].MaxAge)
	})

	t.Run("secure option", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		storage := session.NewCookieStorage(w, r, session.WithSecure(true))

		storage.Set(session.KeyAccessToken, "v")
		require.True(t, w.Result().Cookies()[0].Secure)
	})
}

func TestStore_RoundTripThroughCookies(t *testing.T) {
	// Login response writes cookies; the next request reads them back.
	w := httptest.NewRecorder()
	first := httptest.NewRequest(http.MethodPost, "/es/login", nil)
	store := session.NewStore(session.NewCookieStorage(w, first))
	store.Save(session.Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		User:         testUser(),
	})

	second := httptest.NewRequest(http.MethodGet, "/es/dashboard", nil)
	for _, c := range w.Result().Cookies() {
		second.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}

	next := session.NewStore(session.NewCookieStorage(httptest.NewRecorder(), second))
	require.True(t, next.IsAuthenticated())

	user := next.CurrentUser()
	require.NotNil(t, user)
	require.Equal(t, "admin", user.UserName)
}
