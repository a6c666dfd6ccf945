package ai

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoCandidates = errors.New("no candidates returned")

// APIError is a non-2xx response from the provider.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.Status, strings.TrimSpace(e.Body))
}

// IsRateLimited reports whether err signals a provider rate limit. The
// check is textual so that wrapped and third-party errors carrying the
// status code in their message are classified the same way.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "429")
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
