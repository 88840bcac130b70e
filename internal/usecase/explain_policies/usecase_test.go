package explain_policies

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MPC-PolicyService/internal/domain"
	policyRepo "github.com/m04kA/MPC-PolicyService/internal/infra/storage/policy"
)

type fakeRepo struct {
	policies []*domain.Policy
	err      error
}

func (f *fakeRepo) List(_ context.Context, _ policyRepo.ListFilter) ([]*domain.Policy, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.policies, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustPolicy(t *testing.T, kind domain.PolicyKind, label, rawData string) *domain.Policy {
	t.Helper()
	data, err := domain.ParsePolicyData(kind, json.RawMessage(rawData))
	require.NoError(t, err)
	return &domain.Policy{
		ID:         label,
		ProviderID: "prov-1",
		Kind:       kind,
		Label:      label,
		Data:       data,
		IsActive:   true,
	}
}

func TestExecuteGroupsByKind(t *testing.T) {
	repo := &fakeRepo{policies: []*domain.Policy{
		mustPolicy(t, domain.KindAvailability, "Weekday hours", `{
			"kind": "AVAILABILITY",
			"recurrence": {"type": "weekly", "daysOfWeek": [1,2,3,4,5], "startDate": "2026-01-30"},
			"timeWindows": [{"start": "09:00", "end": "17:00"}]
		}`),
		mustPolicy(t, domain.KindBlock, "Lunch break", `{
			"kind": "BLOCK",
			"recurrence": {"type": "daily", "startDate": "2026-01-30"},
			"timeWindows": [{"start": "12:00", "end": "13:00"}]
		}`),
		mustPolicy(t, domain.KindBookingWindow, "Advance rules", `{
			"kind": "BOOKING_WINDOW", "minAdvanceHours": 24, "maxAdvanceDays": 30
		}`),
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: "prov-1"})
	require.NoError(t, err)

	assert.Contains(t, resp.Explanation, "Working Hours:\n- Weekday hours")
	assert.Contains(t, resp.Explanation, "Blocked Time:\n- Lunch break")
	assert.Contains(t, resp.Explanation, "Booking Window:\n- Advance rules")

	// Section order follows the first appearance of each kind.
	working := strings.Index(resp.Explanation, "Working Hours")
	blocked := strings.Index(resp.Explanation, "Blocked Time")
	window := strings.Index(resp.Explanation, "Booking Window")
	assert.Less(t, working, blocked)
	assert.Less(t, blocked, window)
}

func TestExecuteMergesSameKind(t *testing.T) {
	repo := &fakeRepo{policies: []*domain.Policy{
		mustPolicy(t, domain.KindBlock, "Lunch break", `{
			"kind": "BLOCK",
			"recurrence": {"type": "daily", "startDate": "2026-01-30"},
			"timeWindows": [{"start": "12:00", "end": "13:00"}]
		}`),
		mustPolicy(t, domain.KindAvailability, "Weekday hours", `{
			"kind": "AVAILABILITY",
			"recurrence": {"type": "weekly", "daysOfWeek": [1,2,3,4,5], "startDate": "2026-01-30"},
			"timeWindows": [{"start": "09:00", "end": "17:00"}]
		}`),
		mustPolicy(t, domain.KindBlock, "Evening rounds", `{
			"kind": "BLOCK",
			"recurrence": {"type": "daily", "startDate": "2026-01-30"},
			"timeWindows": [{"start": "18:00", "end": "20:00"}]
		}`),
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: "prov-1"})
	require.NoError(t, err)

	// Both block policies land under one heading, in listing order, and the
	// heading appears exactly once where BLOCK was first seen.
	assert.Contains(t, resp.Explanation, "Blocked Time:\n- Lunch break\n- Evening rounds")
	assert.Equal(t, 1, strings.Count(resp.Explanation, "Blocked Time:"))
	assert.Less(t, strings.Index(resp.Explanation, "Blocked Time"), strings.Index(resp.Explanation, "Working Hours"))
}

func TestExecuteNoPolicies(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: "prov-1"})
	require.NoError(t, err)
	assert.Equal(t, "No scheduling policies are configured for this provider.", resp.Explanation)
}

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProviderID: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteRepositoryError(t *testing.T) {
	uc := NewUseCase(&fakeRepo{err: fmt.Errorf("connection refused")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProviderID: "prov-1"})
	assert.ErrorIs(t, err, ErrInternal)
}
