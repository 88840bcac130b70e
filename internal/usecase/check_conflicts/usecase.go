package check_conflicts

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/MPC-PolicyService/internal/domain"
	policyRepo "github.com/m04kA/MPC-PolicyService/internal/infra/storage/policy"
	"github.com/m04kA/MPC-PolicyService/pkg/types"
)

// UseCase evaluates a proposed scheduling action against every active
// policy of a provider and accumulates human-readable conflict reasons.
// Policies are evaluated independently: each one contributes at most one
// message, and no policy suppresses another (an OVERRIDE marking a slot
// available does not cancel a BLOCK conflict on the same slot).
type UseCase struct {
	repo         PolicyRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the conflict-check use case with the real clock.
func NewUseCase(repo PolicyRepository, logger Logger) *UseCase {
	return &UseCase{
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute fetches the provider's active policies and evaluates the request
// against each of them, in repository order. The result is always a verdict,
// never an error, unless the input is malformed or the fetch itself fails.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckConflicts: provider=%s action=%s dateTime=%s duration=%d",
		req.ProviderID, req.Action, req.DateTime.Format("2006-01-02T15:04"), req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConflicts: validation failed: %v", err)
		return nil, err
	}

	policies, err := uc.repo.List(ctx, policyRepo.ListFilter{
		ProviderID: &req.ProviderID,
		ActiveOnly: true,
	})
	if err != nil {
		uc.logger.Error("CheckConflicts: repository error for provider=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to list policies: %v", ErrInternal, err)
	}

	dayOfWeek := int(req.DateTime.Weekday())
	clockTime := types.NewTimeString(req.DateTime)
	date := types.NewDateString(req.DateTime)
	now := uc.timeProvider.Now()

	conflicts := make([]string, 0)
	for _, policy := range policies {
		conflicts = append(conflicts, evaluatePolicy(policy, req, dayOfWeek, clockTime, date, now)...)
	}

	allowed := len(conflicts) == 0
	uc.logger.Info("CheckConflicts: provider=%s allowed=%v conflicts=%d", req.ProviderID, allowed, len(conflicts))

	return &Response{
		Allowed:   allowed,
		Conflicts: conflicts,
	}, nil
}

// evaluatePolicy applies the kind-specific rule for one policy. All rules
// gate on action=book only; block and reschedule requests pass every rule.
// Only BOOKING_WINDOW can return two messages (min and max bound violated
// at once); every other kind returns at most one.
func evaluatePolicy(
	policy *domain.Policy,
	req *Request,
	dayOfWeek int,
	clockTime types.TimeString,
	date types.DateString,
	now time.Time,
) []string {
	if req.Action != domain.ActionBook {
		return nil
	}

	switch data := policy.Data.(type) {
	case domain.AvailabilityData:
		if data.Recurrence.MatchesDate(dayOfWeek, date) && !domain.WithinAny(clockTime, data.TimeWindows) {
			return []string{fmt.Sprintf("Outside working hours (%s)", policy.Label)}
		}

	case domain.BlockData:
		if data.Recurrence.MatchesDate(dayOfWeek, date) && domain.WithinAny(clockTime, data.TimeWindows) {
			return []string{fmt.Sprintf("Time is blocked: %s", reasonOrLabel(data.Reason, policy.Label))}
		}

	case domain.OverrideData:
		if data.Date == date && domain.WithinAny(clockTime, data.TimeWindows) && data.Action == domain.OverrideBlock {
			return []string{fmt.Sprintf("Override block: %s", reasonOrLabel(data.Reason, policy.Label))}
		}

	case domain.DurationData, domain.AppointmentTypeData:
		// Informational policies never conflict.

	case domain.BookingWindowData:
		var msgs []string
		hoursUntil := req.DateTime.Sub(now).Hours()
		if hoursUntil < float64(data.MinAdvanceHours) {
			msgs = append(msgs, fmt.Sprintf("Must book at least %d hours in advance", data.MinAdvanceHours))
		}
		if hoursUntil/24 > float64(data.MaxAdvanceDays) {
			msgs = append(msgs, fmt.Sprintf("Cannot book more than %d days in advance", data.MaxAdvanceDays))
		}
		return msgs
	}

	return nil
}

func reasonOrLabel(reason, label string) string {
	if reason != "" {
		return reason
	}
	return label
}
