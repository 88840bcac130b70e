package policies

import (
	"context"

	"github.com/m04kA/MPC-PolicyService/internal/domain"
	policyRepo "github.com/m04kA/MPC-PolicyService/internal/infra/storage/policy"
)

// PolicyRepository is the storage contract for scheduling policies.
type PolicyRepository interface {
	Create(ctx context.Context, p *domain.Policy) (*domain.Policy, error)
	GetByID(ctx context.Context, id string) (*domain.Policy, error)
	List(ctx context.Context, filter policyRepo.ListFilter) ([]*domain.Policy, error)
	Update(ctx context.Context, id string, fields policyRepo.UpdateFields) (*domain.Policy, error)
	SoftDelete(ctx context.Context, id string) (bool, error)
}

// IDGenerator issues identifiers for new policies.
type IDGenerator interface {
	NewID() string
}

// Logger is the logging contract for the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
