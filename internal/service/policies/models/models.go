package models

import (
	"encoding/json"
	"time"

	"github.com/m04kA/MPC-PolicyService/internal/domain"
	policyRepo "github.com/m04kA/MPC-PolicyService/internal/infra/storage/policy"
)

// Request models

// CreatePolicyRequest creates a new scheduling policy. Data is the raw
// kind-specific payload and is validated against Kind before anything is
// persisted.
type CreatePolicyRequest struct {
	ProviderID string          `json:"providerId"`
	Kind       string          `json:"kind"`
	Label      string          `json:"label"`
	Data       json.RawMessage `json:"data"`
}

// UpdatePolicyRequest is a partial update. Nil fields are left untouched;
// kind is immutable and Data is validated against the stored kind.
// IsActive=true reactivates a soft-deleted policy.
type UpdatePolicyRequest struct {
	Label    *string         `json:"label,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
	IsActive *bool           `json:"isActive,omitempty"`
}

// ListPoliciesRequest filters the policy list. Soft-deleted policies are
// excluded unless IncludeInactive is set.
type ListPoliciesRequest struct {
	ProviderID      *string `json:"providerId,omitempty"`
	Kind            *string `json:"kind,omitempty"`
	IncludeInactive bool    `json:"includeInactive,omitempty"`
}

// ToRepoFilter converts the request into a repository filter.
func (r *ListPoliciesRequest) ToRepoFilter() (policyRepo.ListFilter, error) {
	filter := policyRepo.ListFilter{
		ProviderID: r.ProviderID,
		ActiveOnly: !r.IncludeInactive,
	}

	if r.Kind != nil {
		kind, err := domain.ParsePolicyKind(*r.Kind)
		if err != nil {
			return filter, err
		}
		filter.Kind = &kind
	}

	return filter, nil
}

// Response models

// PolicyResponse is the external representation of a policy. Data marshals
// as the kind-specific payload object.
type PolicyResponse struct {
	ID         string            `json:"id"`
	ProviderID string            `json:"providerId"`
	Kind       string            `json:"kind"`
	Label      string            `json:"label"`
	Data       domain.PolicyData `json:"data"`
	IsActive   bool              `json:"isActive"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// PolicyListResponse is the response for policy list queries.
type PolicyListResponse struct {
	Policies []PolicyResponse `json:"policies"`
}

// DeletePolicyResponse reports whether the delete changed anything.
// Deleting an already-deleted or unknown policy yields changed=false.
type DeletePolicyResponse struct {
	Changed bool `json:"changed"`
}

// Conversion helpers

// FromDomainPolicy converts a domain policy into a response DTO.
func FromDomainPolicy(p *domain.Policy) *PolicyResponse {
	if p == nil {
		return nil
	}

	return &PolicyResponse{
		ID:         p.ID,
		ProviderID: p.ProviderID,
		Kind:       string(p.Kind),
		Label:      p.Label,
		Data:       p.Data,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// FromDomainPolicyList converts a slice of domain policies into a list DTO.
func FromDomainPolicyList(policies []*domain.Policy) *PolicyListResponse {
	resp := &PolicyListResponse{
		Policies: make([]PolicyResponse, 0, len(policies)),
	}
	for _, p := range policies {
		resp.Policies = append(resp.Policies, *FromDomainPolicy(p))
	}
	return resp
}
