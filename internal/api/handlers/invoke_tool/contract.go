package invoke_tool

import (
	"context"

	"github.com/m04kA/MPC-PolicyService/internal/service/policies/models"
	"github.com/m04kA/MPC-PolicyService/internal/usecase/check_conflicts"
	"github.com/m04kA/MPC-PolicyService/internal/usecase/explain_policies"
)

// PolicyService is the policy lifecycle contract consumed by the tool surface.
type PolicyService interface {
	Create(ctx context.Context, req *models.CreatePolicyRequest) (*models.PolicyResponse, error)
	Get(ctx context.Context, id string) (*models.PolicyResponse, error)
	List(ctx context.Context, req *models.ListPoliciesRequest) (*models.PolicyListResponse, error)
	Update(ctx context.Context, id string, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error)
	Delete(ctx context.Context, id string) (*models.DeletePolicyResponse, error)
}

// ConflictChecker evaluates a proposed action against a provider's policies.
type ConflictChecker interface {
	Execute(ctx context.Context, req *check_conflicts.Request) (*check_conflicts.Response, error)
}

// PolicyExplainer renders a provider's policies as human-readable text.
type PolicyExplainer interface {
	Execute(ctx context.Context, req *explain_policies.Request) (*explain_policies.Response, error)
}

// Logger is the logging contract for the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
