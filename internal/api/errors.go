package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// APIError represents an error response from the 6ex API.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, msg)
}

// IsUnauthorized returns true for 401 responses: invalid credentials or
// an expired session. Callers must clear the session on this error.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsNotFound returns true if the error is a 404 Not Found.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsBadRequest returns true for 400 responses, such as a below-minimum
// amount or an unknown symbol rejected server-side.
func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == http.StatusBadRequest
}

// IsAuthError reports whether err is an API error that invalidates the
// current credential.
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsUnauthorized()
}

// errorResponse is the JSON structure of API error bodies.
type errorResponse struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// CheckResponse checks the API response for errors. For status codes
// >= 400 it parses the error body and returns an APIError.
func CheckResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(resp.Body)
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		// Body is not JSON, ignore parsing error
		return apiErr
	}

	if errResp.Detail != "" {
		apiErr.Message = errResp.Detail
	} else if errResp.Message != "" {
		apiErr.Message = errResp.Message
	}

	return apiErr
}

// DecodeJSON decodes a JSON response body into the given target.
func DecodeJSON(resp *http.Response, target any) error {
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
