package check_conflicts

import (
	"context"
	"time"

	"github.com/m04kA/MPC-PolicyService/internal/domain"
	policyRepo "github.com/m04kA/MPC-PolicyService/internal/infra/storage/policy"
)

// PolicyRepository is the storage contract for fetching policies to evaluate.
type PolicyRepository interface {
	List(ctx context.Context, filter policyRepo.ListFilter) ([]*domain.Policy, error)
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract for the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current wall-clock time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
