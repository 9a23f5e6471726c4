// ABOUTME: Sentinel errors for the terminal control ops
// ABOUTME: Callers classify failures with errors.Is; OS failures arrive wrapped from the console adapter

package tty

import "errors"

var (
	// ErrUnknownResource means the resource id is not in the registry.
	ErrUnknownResource = errors.New("unknown resource")

	// ErrNotSupported means the resource kind has no terminal handle.
	ErrNotSupported = errors.New("operation not supported on this resource kind")

	// ErrUnavailable means the resource's descriptor is checked out by
	// an in-flight operation. Transient; the caller may retry.
	ErrUnavailable = errors.New("resource temporarily unavailable")

	// ErrInvalidHandle means the resource resolved to a null or
	// sentinel OS handle.
	ErrInvalidHandle = errors.New("invalid terminal handle")

	// ErrBadResource means the resource cannot answer a size query.
	ErrBadResource = errors.New("bad resource")
)
