package explain_policies

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/MPC-PolicyService/internal/domain"
	policyRepo "github.com/m04kA/MPC-PolicyService/internal/infra/storage/policy"
)

// kindHeaders maps each policy kind to its section heading in the summary.
var kindHeaders = map[domain.PolicyKind]string{
	domain.KindAvailability:    "Working Hours",
	domain.KindBlock:           "Blocked Time",
	domain.KindOverride:        "Date Overrides",
	domain.KindDuration:        "Scheduling Defaults",
	domain.KindAppointmentType: "Appointment Types",
	domain.KindBookingWindow:   "Booking Window",
}

const noPoliciesMessage = "No scheduling policies are configured for this provider."

// UseCase renders a provider's active policies as a human-readable summary,
// one section per kind with a bullet line per policy label. Purely
// presentational; no conflict logic.
type UseCase struct {
	repo   PolicyRepository
	logger Logger
}

// NewUseCase creates the explanation use case.
func NewUseCase(repo PolicyRepository, logger Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute fetches the provider's active policies and renders them grouped by
// kind. Section order follows the first appearance of each kind in the
// repository's listing order.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExplainPolicies: provider=%s", req.ProviderID)

	if strings.TrimSpace(req.ProviderID) == "" {
		uc.logger.Warn("ExplainPolicies: empty provider id")
		return nil, fmt.Errorf("%w: providerId must not be empty", ErrInvalidInput)
	}

	policies, err := uc.repo.List(ctx, policyRepo.ListFilter{
		ProviderID: &req.ProviderID,
		ActiveOnly: true,
	})
	if err != nil {
		uc.logger.Error("ExplainPolicies: repository error for provider=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to list policies: %v", ErrInternal, err)
	}

	if len(policies) == 0 {
		return &Response{Explanation: noPoliciesMessage}, nil
	}

	// Group labels by kind, keeping the first-seen order of kinds.
	kindOrder := make([]domain.PolicyKind, 0, len(kindHeaders))
	labelsByKind := make(map[domain.PolicyKind][]string)
	for _, p := range policies {
		if _, seen := labelsByKind[p.Kind]; !seen {
			kindOrder = append(kindOrder, p.Kind)
		}
		labelsByKind[p.Kind] = append(labelsByKind[p.Kind], p.Label)
	}

	sections := make([]string, 0, len(kindOrder))
	for _, kind := range kindOrder {
		var b strings.Builder
		b.WriteString(kindHeaders[kind])
		b.WriteString(":\n")
		for _, label := range labelsByKind[kind] {
			b.WriteString("- ")
			b.WriteString(label)
			b.WriteString("\n")
		}
		sections = append(sections, b.String())
	}

	uc.logger.Info("ExplainPolicies: provider=%s rendered %d sections", req.ProviderID, len(sections))
	return &Response{Explanation: strings.Join(sections, "\n")}, nil
}
