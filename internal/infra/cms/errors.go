package cms

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"cmsdesk/internal/domain/entity"
)

// ErrInvalidResponse is wrapped by every response that fails schema validation.
var ErrInvalidResponse = errors.New("invalid backend response")

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Name       string
	Message    string
	Details    map[string]any
}

func (e *APIError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("backend returned %d %s: %s", e.StatusCode, e.Name, e.Message)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// Is maps backend statuses onto the domain sentinels: 404 matches
// entity.ErrNotFound and 400 matches entity.ErrInvalidInput.
func (e *APIError) Is(target error) bool {
	switch target {
	case entity.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case entity.ErrInvalidInput:
		return e.StatusCode == http.StatusBadRequest
	}
	return false
}

// TransportError wraps a failure to reach the backend at all.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	return errors.Is(err, entity.ErrNotFound)
}

// IsUnauthorized reports whether err is a 401 or 403 from the backend.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized) || hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

type errorEnvelope struct {
	Error *struct {
		Status  int            `json:"status"`
		Name    string         `json:"name"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

// newAPIError parses the backend's {"error":{...}} body, falling back to
// the raw body or the status text.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		apiErr.Name = env.Error.Name
		apiErr.Message = env.Error.Message
		apiErr.Details = env.Error.Details
	}

	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
