package hackerone

import (
	"errors"
	"fmt"
)

// ErrPermissionDenied is returned on HTTP 403. The API never recovers from it,
// so the request is not retried and the command aborts.
var ErrPermissionDenied = errors.New("permission denied, the resource is not accessible with this API key (HTTP 403)")

// MappingError reports a required field missing from an API payload.
type MappingError struct {
	Entity string
	Field  string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("%s payload is missing required field %q", e.Entity, e.Field)
}

// NewMappingError creates a MappingError for the given entity and field.
func NewMappingError(entity, field string) error {
	return &MappingError{Entity: entity, Field: field}
}

// WrongTypeError reports a payload whose JSON:API type tag does not match the
// entity being mapped.
type WrongTypeError struct {
	Want string
	Got  string
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("payload is of type %q, not %q", e.Got, e.Want)
}

// transientError marks a response status the transport retries indefinitely.
type transientError struct {
	Status int
}

func (e *transientError) Error() string {
	return fmt.Sprintf("transient HTTP error %d", e.Status)
}
