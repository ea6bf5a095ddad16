package session

import "net/http"

// CookieStorage persists session values as cookies on a single
// request/response pair. Reads consult values written earlier in the same
// request before falling back to the incoming cookies, so a refresh that
// rotates the access token mid-request is immediately visible.
type CookieStorage struct {
	w       http.ResponseWriter
	r       *http.Request
	secure  bool
	pending map[string]*string // nil value marks a deletion
}

type CookieOption func(*CookieStorage)

// WithSecure marks written cookies Secure (HTTPS-only)
func WithSecure(secure bool) CookieOption {
	return func(cs *CookieStorage) {
		cs.secure = secure
	}
}

func NewCookieStorage(w http.ResponseWriter, r *http.Request, options ...CookieOption) *CookieStorage {
	cs := &CookieStorage{
		w:       w,
		r:       r,
		pending: make(map[string]*string),
	}
	for _, opt := range options {
		opt(cs)
	}
	return cs
}

func (cs *CookieStorage) Get(key string) (string, bool) {
	if value, written := cs.pending[key]; written {
		if value == nil {
			return "", false
		}
		return *value, true
	}
	cookie, err := cs.r.Cookie(key)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (cs *CookieStorage) Set(key, value string) {
	http.SetCookie(cs.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   cs.secure,
		SameSite: http.SameSiteLaxMode,
	})
	cs.pending[key] = &value
}

func (cs *CookieStorage) Delete(key string) {
	http.SetCookie(cs.w, &http.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   cs.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	cs.pending[key] = nil
}

var _ Storage = (*CookieStorage)(nil)
