package invoke_tool

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MPC-PolicyService/internal/domain"
	"github.com/m04kA/MPC-PolicyService/internal/service/policies"
	"github.com/m04kA/MPC-PolicyService/internal/service/policies/models"
	"github.com/m04kA/MPC-PolicyService/internal/usecase/check_conflicts"
	"github.com/m04kA/MPC-PolicyService/internal/usecase/explain_policies"
)

type fakeService struct {
	createResp *models.PolicyResponse
	createErr  error
	getResp    *models.PolicyResponse
	getErr     error
	listResp   *models.PolicyListResponse
	updateResp *models.PolicyResponse
	updateErr  error
	deleteResp *models.DeletePolicyResponse
}

func (f *fakeService) Create(_ context.Context, _ *models.CreatePolicyRequest) (*models.PolicyResponse, error) {
	return f.createResp, f.createErr
}

func (f *fakeService) Get(_ context.Context, _ string) (*models.PolicyResponse, error) {
	return f.getResp, f.getErr
}

func (f *fakeService) List(_ context.Context, _ *models.ListPoliciesRequest) (*models.PolicyListResponse, error) {
	return f.listResp, nil
}

func (f *fakeService) Update(_ context.Context, _ string, _ *models.UpdatePolicyRequest) (*models.PolicyResponse, error) {
	return f.updateResp, f.updateErr
}

func (f *fakeService) Delete(_ context.Context, _ string) (*models.DeletePolicyResponse, error) {
	return f.deleteResp, nil
}

type fakeChecker struct {
	lastReq *check_conflicts.Request
	resp    *check_conflicts.Response
	err     error
}

func (f *fakeChecker) Execute(_ context.Context, req *check_conflicts.Request) (*check_conflicts.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

type fakeExplainer struct {
	resp *explain_policies.Response
	err  error
}

func (f *fakeExplainer) Execute(_ context.Context, _ *explain_policies.Request) (*explain_policies.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func invoke(t *testing.T, h *Handler, tool, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/tools/{toolName}", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/"+tool, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return rec, payload
}

func TestHandleUnknownTool(t *testing.T) {
	h := NewHandler(&fakeService{}, &fakeChecker{}, &fakeExplainer{}, nopLogger{})

	rec, payload := invoke(t, h, "policy_destroy", `{}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "unknown tool: policy_destroy", payload["error"])
}

func TestHandlePolicyCreate(t *testing.T) {
	svc := &fakeService{createResp: &models.PolicyResponse{ID: "pol-1", Kind: "AVAILABILITY"}}
	h := NewHandler(svc, &fakeChecker{}, &fakeExplainer{}, nopLogger{})

	rec, payload := invoke(t, h, "policy_create", `{
		"providerId": "prov-1",
		"kind": "AVAILABILITY",
		"label": "Weekday hours",
		"data": {"kind": "AVAILABILITY"}
	}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pol-1", payload["id"])
}

func TestHandlePolicyCreateValidationDetails(t *testing.T) {
	svc := &fakeService{createErr: domain.ValidationErrors{
		{Field: "label", Message: "must not be empty"},
		{Field: "timeWindows", Message: "at least one time window is required"},
	}}
	h := NewHandler(svc, &fakeChecker{}, &fakeExplainer{}, nopLogger{})

	rec, payload := invoke(t, h, "policy_create", `{"providerId": "prov-1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "validation failed", payload["error"])

	details, ok := payload["details"].([]interface{})
	require.True(t, ok)
	require.Len(t, details, 2)
	first := details[0].(map[string]interface{})
	assert.Equal(t, "label", first["field"])
}

func TestHandlePolicyGetNotFound(t *testing.T) {
	svc := &fakeService{getErr: policies.ErrPolicyNotFound}
	h := NewHandler(svc, &fakeChecker{}, &fakeExplainer{}, nopLogger{})

	rec, payload := invoke(t, h, "policy_get", `{"policyId": "missing"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "policy not found", payload["error"])
}

func TestHandlePolicyDelete(t *testing.T) {
	svc := &fakeService{deleteResp: &models.DeletePolicyResponse{Changed: true}}
	h := NewHandler(svc, &fakeChecker{}, &fakeExplainer{}, nopLogger{})

	rec, payload := invoke(t, h, "policy_delete", `{"policyId": "pol-1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["changed"])
}

func TestHandlePolicyCheck(t *testing.T) {
	checker := &fakeChecker{resp: &check_conflicts.Response{
		Allowed:   false,
		Conflicts: []string{"Time is blocked: Lunch break"},
	}}
	h := NewHandler(&fakeService{}, checker, &fakeExplainer{}, nopLogger{})

	rec, payload := invoke(t, h, "policy_check", `{
		"providerId": "prov-1",
		"action": "book",
		"dateTime": "2026-02-02T12:30",
		"durationMinutes": 30
	}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, payload["allowed"])

	require.NotNil(t, checker.lastReq)
	assert.Equal(t, domain.ActionBook, checker.lastReq.Action)
	assert.Equal(t, time.Date(2026, 2, 2, 12, 30, 0, 0, time.UTC), checker.lastReq.DateTime)
}

func TestHandlePolicyCheckDateTimeFormats(t *testing.T) {
	checker := &fakeChecker{resp: &check_conflicts.Response{Allowed: true, Conflicts: []string{}}}
	h := NewHandler(&fakeService{}, checker, &fakeExplainer{}, nopLogger{})

	for _, value := range []string{"2026-02-02T12:30", "2026-02-02T12:30:00", "2026-02-02T12:30:00Z"} {
		_, payload := invoke(t, h, "policy_check", `{
			"providerId": "prov-1", "action": "book", "dateTime": "`+value+`", "durationMinutes": 30
		}`)
		assert.NotContains(t, payload, "error", "dateTime %s should parse", value)
	}

	_, payload := invoke(t, h, "policy_check", `{
		"providerId": "prov-1", "action": "book", "dateTime": "02.02.2026 12:30", "durationMinutes": 30
	}`)
	assert.Contains(t, payload["error"], "is not an ISO 8601 date-time")
}

func TestHandlePolicyCheckInvalidInput(t *testing.T) {
	checker := &fakeChecker{err: check_conflicts.ErrInvalidInput}
	h := NewHandler(&fakeService{}, checker, &fakeExplainer{}, nopLogger{})

	_, payload := invoke(t, h, "policy_check", `{
		"providerId": "prov-1", "action": "cancel", "dateTime": "2026-02-02T12:30", "durationMinutes": 30
	}`)
	assert.Contains(t, payload, "error")
}

func TestHandlePolicyExplain(t *testing.T) {
	explainer := &fakeExplainer{resp: &explain_policies.Response{Explanation: "Working Hours:\n- Weekday hours\n"}}
	h := NewHandler(&fakeService{}, &fakeChecker{}, explainer, nopLogger{})

	rec, payload := invoke(t, h, "policy_explain", `{"providerId": "prov-1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, payload["explanation"], "Working Hours")
}

func TestHandleMalformedBody(t *testing.T) {
	h := NewHandler(&fakeService{}, &fakeChecker{}, &fakeExplainer{}, nopLogger{})

	rec, payload := invoke(t, h, "policy_list", `{not json`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "request body must be a JSON object", payload["error"])
}
