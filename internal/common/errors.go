// Package common defines sentinel errors shared by the repositories, the
// services and the RPC layer. Callers should use errors.Is to match them;
// conversion to RPC status codes happens only at the transport boundary.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrRequiredArgument is returned when a mandatory payload or field is absent.
	ErrRequiredArgument = errors.New("required argument")
	// ErrInvalidArgument is returned for unparsable names, ids, etags, page tokens
	// and out-of-bounds attribute values.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned when the target row or its parent does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPreconditionFailed is returned when a conditional write's expected
	// version does not match, including when the row no longer exists.
	ErrPreconditionFailed = errors.New("etag not matching")

	// Auth errors.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")
)

// RequiredArgument reports that field was not supplied.
func RequiredArgument(field string) error {
	return fmt.Errorf("%w: %s", ErrRequiredArgument, field)
}

// InvalidArgument reports that field could not be accepted.
func InvalidArgument(field, msg string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidArgument, field, msg)
}

// NotFound reports a missing resource by name.
func NotFound(resource string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, resource)
}

// PreconditionFailed reports an etag mismatch on resource.
func PreconditionFailed(resource string) error {
	return fmt.Errorf("%s: %w", resource, ErrPreconditionFailed)
}
