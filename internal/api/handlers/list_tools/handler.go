package list_tools

import (
	"net/http"

	"github.com/m04kA/MPC-PolicyService/internal/api/handlers"
)

// Logger is the logging contract for the handler.
type Logger interface {
	Info(format string, v ...interface{})
}

// Argument describes one named tool argument.
type Argument struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

// Tool describes one invocable tool.
type Tool struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Arguments   []Argument `json:"arguments"`
}

// CatalogResponse lists every tool the service exposes.
type CatalogResponse struct {
	Tools []Tool `json:"tools"`
}

var catalog = CatalogResponse{Tools: []Tool{
	{
		Name:        "policy_list",
		Description: "List scheduling policies, optionally filtered by provider and kind. Soft-deleted policies are excluded unless includeInactive is set.",
		Arguments: []Argument{
			{Name: "providerId", Type: "string", Description: "Only policies of this provider."},
			{Name: "kind", Type: "string", Description: "Only policies of this kind (AVAILABILITY, BLOCK, OVERRIDE, DURATION, APPOINTMENT_TYPE, BOOKING_WINDOW)."},
			{Name: "includeInactive", Type: "boolean", Description: "Include soft-deleted policies."},
		},
	},
	{
		Name:        "policy_get",
		Description: "Fetch a single policy by id, including soft-deleted ones.",
		Arguments: []Argument{
			{Name: "policyId", Type: "string", Required: true, Description: "Policy identifier."},
		},
	},
	{
		Name:        "policy_create",
		Description: "Create a scheduling policy. The data payload must match the declared kind and is validated atomically.",
		Arguments: []Argument{
			{Name: "providerId", Type: "string", Required: true, Description: "Provider the policy attaches to."},
			{Name: "kind", Type: "string", Required: true, Description: "Policy kind."},
			{Name: "label", Type: "string", Required: true, Description: "Human-readable label."},
			{Name: "data", Type: "object", Required: true, Description: "Kind-specific payload; its embedded kind must equal the policy kind."},
		},
	},
	{
		Name:        "policy_update",
		Description: "Partially update a policy. Kind is immutable; a new data payload is validated against the stored kind. isActive=true reactivates a soft-deleted policy.",
		Arguments: []Argument{
			{Name: "policyId", Type: "string", Required: true, Description: "Policy identifier."},
			{Name: "label", Type: "string", Description: "New label."},
			{Name: "data", Type: "object", Description: "Replacement payload for the stored kind."},
			{Name: "isActive", Type: "boolean", Description: "Activate or deactivate the policy."},
		},
	},
	{
		Name:        "policy_delete",
		Description: "Soft-delete a policy. Returns changed=false when the policy is missing or already deleted.",
		Arguments: []Argument{
			{Name: "policyId", Type: "string", Required: true, Description: "Policy identifier."},
		},
	},
	{
		Name:        "policy_check",
		Description: "Evaluate a proposed scheduling action against the provider's active policies and return allowed plus conflict reasons.",
		Arguments: []Argument{
			{Name: "providerId", Type: "string", Required: true, Description: "Provider to evaluate."},
			{Name: "action", Type: "string", Required: true, Description: "One of book, block, reschedule."},
			{Name: "dateTime", Type: "string", Required: true, Description: "Proposed start as an ISO 8601 date-time, e.g. 2026-02-02T10:00."},
			{Name: "durationMinutes", Type: "integer", Required: true, Description: "Proposed duration in minutes."},
		},
	},
	{
		Name:        "policy_explain",
		Description: "Render the provider's active policies as a human-readable summary grouped by kind.",
		Arguments: []Argument{
			{Name: "providerId", Type: "string", Required: true, Description: "Provider to describe."},
		},
	},
}}

// Handler serves the static tool catalog.
type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/tools
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /tools - catalog served")
	handlers.RespondJSON(w, http.StatusOK, catalog)
}
