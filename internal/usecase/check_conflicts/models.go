package check_conflicts

import (
	"time"

	"github.com/m04kA/MPC-PolicyService/internal/domain"
)

// Request describes a proposed scheduling action to evaluate.
type Request struct {
	ProviderID      string
	Action          domain.Action
	DateTime        time.Time
	DurationMinutes int
}

// Response is the evaluation verdict. Conflicts preserves the repository's
// policy order; Allowed is true exactly when Conflicts is empty.
type Response struct {
	Allowed   bool     `json:"allowed"`
	Conflicts []string `json:"conflicts"`
}
