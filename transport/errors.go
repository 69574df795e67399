package transport

import (
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

// ErrUnauthenticated marks a 401/403 response. Callers test with errors.Is and
// decide between redirecting to sign-in and notifying; they never look at raw
// status codes.
var ErrUnauthenticated = errors.New("unauthenticated")

// APIError carries the HTTP status and whatever structured error payload the
// backend returned: a top-level {"error": ...} message and/or field-keyed
// validation messages.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (%d)", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return ErrUnauthenticated
	}
	return nil
}

// FieldError returns the first validation message recorded for the field.
func (e *APIError) FieldError(field string) string {
	if msgs, ok := e.Fields[field]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// ServerMessage extracts a human-readable message from err when it is an
// *APIError, preferring the top-level message over field errors. Returns
// fallback otherwise.
func ServerMessage(err error, fallback string) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return fallback
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	for _, msgs := range apiErr.Fields {
		if len(msgs) > 0 {
			return msgs[0]
		}
	}
	return fallback
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var payload map[string]interface{}
	if err := jsoniter.Unmarshal(body, &payload); err != nil {
		return apiErr
	}

	for key, value := range payload {
		switch typed := value.(type) {
		case string:
			if key == "error" || key == "detail" {
				apiErr.Message = typed
			}
		case []interface{}:
			var msgs []string
			for _, item := range typed {
				if msg, ok := item.(string); ok {
					msgs = append(msgs, msg)
				}
			}
			if len(msgs) > 0 {
				if apiErr.Fields == nil {
					apiErr.Fields = make(map[string][]string)
				}
				apiErr.Fields[key] = msgs
			}
		}
	}
	return apiErr
}
