package policy

import "errors"

var (
	// ErrPolicyNotFound is returned when no policy row matches the given id.
	ErrPolicyNotFound = errors.New("policy.repository: policy not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("policy.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("policy.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails, including
	// rows whose stored payload no longer decodes into its declared kind.
	ErrScanRow = errors.New("policy.repository: failed to scan row")
)
