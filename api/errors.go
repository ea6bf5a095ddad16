package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	errs "github.com/gpiedrahita-hub/infinite-herbs-admin/internal/errors"
)

// APIError carries a non-2xx backend response. Detail is the human-readable
// message from the backend's {"detail": "..."} error body, when present.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned %d", e.Status)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
}

// Is maps status codes onto the shared sentinel errors so call sites can use
// errors.Is without reaching into the struct.
func (e *APIError) Is(target error) bool {
	switch target {
	case errs.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case errs.ErrForbidden:
		return e.Status == http.StatusForbidden
	case errs.ErrNotFound:
		return e.Status == http.StatusNotFound
	case errs.ErrConflict:
		// The backend reports duplicate usernames/emails as 400
		return e.Status == http.StatusBadRequest || e.Status == http.StatusConflict
	case errs.ErrBackend:
		return e.Status >= http.StatusInternalServerError
	}
	return false
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Detail = strings.TrimSpace(parsed.Detail)
	}
	return apiErr
}
