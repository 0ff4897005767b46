package backend

import (
	"fmt"
	"net/http"

	"github.com/srgjo27/tutor_booking/internal/core/domain"
)

// ResponseError is a non-2xx answer from the marketplace backend.
type ResponseError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: backend responded %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: backend responded %d: %s", e.Op, e.StatusCode, e.Message)
}

func (e *ResponseError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return domain.ErrUnauthenticated
	case e.StatusCode >= http.StatusInternalServerError:
		return domain.ErrBackendUnavailable
	}
	return nil
}

// SchemaError means the backend answered with a payload that does not match
// the expected response schema.
type SchemaError struct {
	Resource string
	Err      error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("malformed %s response: %v", e.Resource, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
