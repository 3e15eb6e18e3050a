package reddit

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is returned when Reddit answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("received %d HTTP response: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("received %d HTTP response", e.StatusCode)
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: truncateBody(body)}

	var payload struct {
		Message string `json:"message"`
		Reason  string `json:"reason"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
		if payload.Reason != "" {
			apiErr.Message = strings.TrimSpace(apiErr.Message + " (" + payload.Reason + ")")
		}
	}
	return apiErr
}

// AuthError indicates the token endpoint refused or failed the password grant.
type AuthError struct {
	StatusCode int
	Reason     string
	Err        error
}

func (e *AuthError) Error() string {
	var sb strings.Builder
	sb.WriteString("reddit authentication failed")
	if e.StatusCode != 0 {
		fmt.Fprintf(&sb, ": status code %d", e.StatusCode)
	}
	if e.Reason != "" {
		fmt.Fprintf(&sb, ": %s", e.Reason)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

// Unwrap allows for error chaining with errors.Is and errors.As.
func (e *AuthError) Unwrap() error { return e.Err }

// RedditError carries the first [code, message, field] triple from an
// api_type=json response.
type RedditError struct {
	Code    string
	Message string
	Field   string
}

func (e *RedditError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: '%s' on field '%s'", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: '%s'", e.Code, e.Message)
}

// jsonErrors converts the json.errors array into a RedditError, or nil.
func jsonErrors(errs [][]any) error {
	if len(errs) == 0 {
		return nil
	}

	parts := make([]string, 3)
	for i := 0; i < len(errs[0]) && i < 3; i++ {
		if errs[0][i] != nil {
			parts[i] = fmt.Sprint(errs[0][i])
		}
	}
	return &RedditError{Code: parts[0], Message: parts[1], Field: parts[2]}
}

func truncateBody(body []byte) string {
	const max = 512
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
