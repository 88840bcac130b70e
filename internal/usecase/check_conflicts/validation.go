package check_conflicts

import (
	"fmt"
	"strings"

	"github.com/m04kA/MPC-PolicyService/internal/domain"
)

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ProviderID) == "" {
		return fmt.Errorf("%w: providerId must not be empty", ErrInvalidInput)
	}
	if _, err := domain.ParseAction(string(req.Action)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.DateTime.IsZero() {
		return fmt.Errorf("%w: dateTime must be set", ErrInvalidInput)
	}
	if req.DurationMinutes < domain.MinAppointmentMinutes || req.DurationMinutes > domain.MaxAppointmentMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinAppointmentMinutes, domain.MaxAppointmentMinutes)
	}
	return nil
}
