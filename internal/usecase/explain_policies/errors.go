package explain_policies

import "errors"

var (
	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned when fetching policies fails.
	ErrInternal = errors.New("explain_policies: internal error")
)
