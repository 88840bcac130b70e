package policies

import "errors"

var (
	// ErrPolicyNotFound is returned when the requested policy does not exist.
	ErrPolicyNotFound = errors.New("policy not found")

	// ErrInvalidInput is returned for malformed request data that is not a
	// field-level validation failure (unknown kind filter, bad arguments).
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected repository failures.
	ErrInternal = errors.New("service: internal error")
)
