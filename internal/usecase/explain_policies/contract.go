package explain_policies

import (
	"context"

	"github.com/m04kA/MPC-PolicyService/internal/domain"
	policyRepo "github.com/m04kA/MPC-PolicyService/internal/infra/storage/policy"
)

// PolicyRepository is the storage contract for fetching policies to render.
type PolicyRepository interface {
	List(ctx context.Context, filter policyRepo.ListFilter) ([]*domain.Policy, error)
}

// Logger is the logging contract for the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
