package medsystem

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the cron secret is missing or wrong.
var ErrUnauthorized = errors.New("medsystem: unauthorized")

// APIError represents an error response from the medsystem API.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("medsystem: API error %d: %s", e.StatusCode, e.Message)
}

func parseAPIError(statusCode int, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		apiErr.StatusCode = statusCode
		return &apiErr
	}

	return &APIError{
		StatusCode: statusCode,
		Message:    string(body),
	}
}

// IsAPIError checks whether err is an APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
