package invoke_tool

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MPC-PolicyService/internal/api/handlers"
	"github.com/m04kA/MPC-PolicyService/internal/domain"
	"github.com/m04kA/MPC-PolicyService/internal/service/policies"
	"github.com/m04kA/MPC-PolicyService/internal/service/policies/models"
	"github.com/m04kA/MPC-PolicyService/internal/usecase/check_conflicts"
	"github.com/m04kA/MPC-PolicyService/internal/usecase/explain_policies"
)

const (
	msgInvalidArguments = "invalid tool arguments"
	msgPolicyNotFound   = "policy not found"
	msgInternalError    = "internal error"
)

// Handler dispatches named tool invocations to the policy service and the
// evaluation use cases. Tool-level failures are reported as structured
// {error} payloads with HTTP 200, so the calling agent can always react to
// the body instead of transport status codes.
type Handler struct {
	service   PolicyService
	checker   ConflictChecker
	explainer PolicyExplainer
	logger    Logger
}

func NewHandler(service PolicyService, checker ConflictChecker, explainer PolicyExplainer, logger Logger) *Handler {
	return &Handler{
		service:   service,
		checker:   checker,
		explainer: explainer,
		logger:    logger,
	}
}

// Handle POST /api/v1/tools/{toolName}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	toolName := mux.Vars(r)["toolName"]

	var args json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
		h.logger.Warn("POST /tools/%s - malformed request body: %v", toolName, err)
		handlers.RespondToolError(w, "request body must be a JSON object")
		return
	}

	switch toolName {
	case "policy_list":
		h.policyList(w, r, args)
	case "policy_get":
		h.policyGet(w, r, args)
	case "policy_create":
		h.policyCreate(w, r, args)
	case "policy_update":
		h.policyUpdate(w, r, args)
	case "policy_delete":
		h.policyDelete(w, r, args)
	case "policy_check":
		h.policyCheck(w, r, args)
	case "policy_explain":
		h.policyExplain(w, r, args)
	default:
		h.logger.Warn("POST /tools/%s - unknown tool", toolName)
		handlers.RespondToolError(w, fmt.Sprintf("unknown tool: %s", toolName))
	}
}

func (h *Handler) policyList(w http.ResponseWriter, r *http.Request, raw json.RawMessage) {
	var args models.ListPoliciesRequest
	if !h.decodeArgs(w, "policy_list", raw, &args) {
		return
	}

	resp, err := h.service.List(r.Context(), &args)
	if err != nil {
		h.respondServiceError(w, "policy_list", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) policyGet(w http.ResponseWriter, r *http.Request, raw json.RawMessage) {
	var args policyGetArgs
	if !h.decodeArgs(w, "policy_get", raw, &args) {
		return
	}

	resp, err := h.service.Get(r.Context(), args.PolicyID)
	if err != nil {
		h.respondServiceError(w, "policy_get", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) policyCreate(w http.ResponseWriter, r *http.Request, raw json.RawMessage) {
	var args models.CreatePolicyRequest
	if !h.decodeArgs(w, "policy_create", raw, &args) {
		return
	}

	resp, err := h.service.Create(r.Context(), &args)
	if err != nil {
		h.respondServiceError(w, "policy_create", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) policyUpdate(w http.ResponseWriter, r *http.Request, raw json.RawMessage) {
	var args policyUpdateArgs
	if !h.decodeArgs(w, "policy_update", raw, &args) {
		return
	}

	resp, err := h.service.Update(r.Context(), args.PolicyID, &models.UpdatePolicyRequest{
		Label:    args.Label,
		Data:     args.Data,
		IsActive: args.IsActive,
	})
	if err != nil {
		h.respondServiceError(w, "policy_update", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) policyDelete(w http.ResponseWriter, r *http.Request, raw json.RawMessage) {
	var args policyDeleteArgs
	if !h.decodeArgs(w, "policy_delete", raw, &args) {
		return
	}

	resp, err := h.service.Delete(r.Context(), args.PolicyID)
	if err != nil {
		h.respondServiceError(w, "policy_delete", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) policyCheck(w http.ResponseWriter, r *http.Request, raw json.RawMessage) {
	var args policyCheckArgs
	if !h.decodeArgs(w, "policy_check", raw, &args) {
		return
	}

	dateTime, err := parseDateTime(args.DateTime)
	if err != nil {
		h.logger.Warn("POST /tools/policy_check - %v", err)
		handlers.RespondToolError(w, err.Error())
		return
	}

	resp, err := h.checker.Execute(r.Context(), &check_conflicts.Request{
		ProviderID:      args.ProviderID,
		Action:          domain.Action(args.Action),
		DateTime:        dateTime,
		DurationMinutes: args.DurationMinutes,
	})
	if err != nil {
		h.respondUseCaseError(w, "policy_check", err,
			check_conflicts.ErrInvalidInput)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) policyExplain(w http.ResponseWriter, r *http.Request, raw json.RawMessage) {
	var args policyExplainArgs
	if !h.decodeArgs(w, "policy_explain", raw, &args) {
		return
	}

	resp, err := h.explainer.Execute(r.Context(), &explain_policies.Request{ProviderID: args.ProviderID})
	if err != nil {
		h.respondUseCaseError(w, "policy_explain", err,
			explain_policies.ErrInvalidInput)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// decodeArgs unmarshals tool arguments; an absent body counts as no
// arguments rather than an error.
func (h *Handler) decodeArgs(w http.ResponseWriter, tool string, raw json.RawMessage, dst interface{}) bool {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		h.logger.Warn("POST /tools/%s - invalid arguments: %v", tool, err)
		handlers.RespondToolError(w, fmt.Sprintf("%s: %v", msgInvalidArguments, err))
		return false
	}
	return true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, tool string, err error) {
	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		h.logger.Warn("POST /tools/%s - validation failed: %v", tool, err)
		handlers.RespondToolValidationError(w, "validation failed", verrs)

	case errors.Is(err, policies.ErrPolicyNotFound):
		h.logger.Warn("POST /tools/%s - policy not found", tool)
		handlers.RespondToolError(w, msgPolicyNotFound)

	case errors.Is(err, policies.ErrInvalidInput):
		h.logger.Warn("POST /tools/%s - invalid input: %v", tool, err)
		handlers.RespondToolError(w, err.Error())

	default:
		h.logger.Error("POST /tools/%s - service error: %v", tool, err)
		handlers.RespondToolError(w, msgInternalError)
	}
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, tool string, err, invalidInput error) {
	if errors.Is(err, invalidInput) {
		h.logger.Warn("POST /tools/%s - invalid input: %v", tool, err)
		handlers.RespondToolError(w, err.Error())
		return
	}
	h.logger.Error("POST /tools/%s - use case error: %v", tool, err)
	handlers.RespondToolError(w, msgInternalError)
}
