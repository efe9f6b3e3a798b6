package client

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is the single error type every client operation fails with.
// Error() is a human-readable message suitable for showing on a page.
type APIError struct {
	Op         string
	StatusCode int // 0 when no response was received
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the API answered 404.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

func newTransportError(op string, err error) *APIError {
	return &APIError{
		Op:      op,
		Message: fmt.Sprintf("failed to reach Grimoire API: %v", err),
		Err:     err,
	}
}

func newStatusError(op string, status int, body string) *APIError {
	message := fmt.Sprintf("request failed with status %d %s", status, http.StatusText(status))

	var parsed errorBody
	if err := json.Unmarshal([]byte(body), &parsed); err == nil {
		switch {
		case parsed.Message != "":
			message = parsed.Message
		case parsed.Error != "":
			message = parsed.Error
		}
	}

	return &APIError{
		Op:         op,
		StatusCode: status,
		Message:    message,
	}
}

func newDecodeError(op string, err error) *APIError {
	return &APIError{
		Op:      op,
		Message: fmt.Sprintf("failed to decode Grimoire API response: %v", err),
		Err:     err,
	}
}
