package api

import (
	"errors"
	"fmt"
)

// Error is a failed remote call. Status 0 means no response at all
// (connection failure); everything else is the HTTP status the server
// answered with. Message carries the optional `{message}` body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api: no response from server: %s", e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// UserMessage maps the failure to the fixed text shown to the user.
// Remote errors are never surfaced raw.
func (e *Error) UserMessage() string {
	switch e.Status {
	case 400:
		return "Invalid data."
	case 404:
		return "Resource not found."
	case 409:
		return "Operation not allowed (conflict)."
	case 500:
		return "Server failure."
	case 0:
		return "Could not reach the server."
	default:
		return "Request failed."
	}
}

// IsConflict reports whether err is a 409 business-rule rejection, such
// as a double reservation.
func IsConflict(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == 409
}

// AsError unwraps err to an *Error when the failure came from a remote
// call, so callers can pick the fixed user-facing text.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
