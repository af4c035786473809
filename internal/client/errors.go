package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// APIError is a non-2xx answer from the rename service. Message carries the
// server-side error text when the body was decodable.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rename API error %d: %s", e.StatusCode, e.Message)
}

// Is matches any *APIError, or one with the same status code when the
// target carries a non-zero StatusCode.
func (e *APIError) Is(target error) bool {
	var apiErr *APIError
	if !errors.As(target, &apiErr) {
		return false
	}
	return apiErr.StatusCode == 0 || apiErr.StatusCode == e.StatusCode
}

// IsNotFound reports whether err is a 404 answer from the service.
func IsNotFound(err error) bool {
	return errors.Is(err, &APIError{StatusCode: http.StatusNotFound})
}

// newAPIError builds an APIError from a failed response, decoding the
// standard {"error": "..."} payload when present.
func newAPIError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		apiErr.Message = payload.Error
	}
	return apiErr
}
