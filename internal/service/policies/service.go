package policies

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/MPC-PolicyService/internal/domain"
	policyRepo "github.com/m04kA/MPC-PolicyService/internal/infra/storage/policy"
	"github.com/m04kA/MPC-PolicyService/internal/service/policies/models"
)

// UUIDGenerator issues random UUIDv4 policy identifiers.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// Service manages the lifecycle of scheduling policies: creation with
// payload validation, reads, partial updates and soft deletes.
type Service struct {
	repo   PolicyRepository
	ids    IDGenerator
	logger Logger
}

// NewService creates a new policy service.
func NewService(repo PolicyRepository, ids IDGenerator, logger Logger) *Service {
	return &Service{
		repo:   repo,
		ids:    ids,
		logger: logger,
	}
}

// Create validates the request and persists a new active policy. The data
// payload must match the declared kind; validation is atomic, so nothing is
// stored when any field fails.
func (s *Service) Create(ctx context.Context, req *models.CreatePolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("Create: creating %s policy for provider=%s", req.Kind, req.ProviderID)

	var verrs domain.ValidationErrors
	if strings.TrimSpace(req.ProviderID) == "" {
		verrs = append(verrs, domain.FieldError{Field: "providerId", Message: "must not be empty"})
	}
	if strings.TrimSpace(req.Label) == "" {
		verrs = append(verrs, domain.FieldError{Field: "label", Message: "must not be empty"})
	}

	kind, err := domain.ParsePolicyKind(req.Kind)
	if err != nil {
		verrs = append(verrs, domain.FieldError{Field: "kind", Message: err.Error()})
		s.logger.Warn("Create: invalid request for provider=%s: %v", req.ProviderID, verrs)
		return nil, verrs
	}

	data, err := domain.ParsePolicyData(kind, req.Data)
	if err != nil {
		var dataErrs domain.ValidationErrors
		if errors.As(err, &dataErrs) {
			verrs = append(verrs, dataErrs...)
		} else {
			verrs = append(verrs, domain.FieldError{Field: "data", Message: err.Error()})
		}
	}
	if len(verrs) > 0 {
		s.logger.Warn("Create: invalid request for provider=%s: %v", req.ProviderID, verrs)
		return nil, verrs
	}

	policy := &domain.Policy{
		ID:         s.ids.NewID(),
		ProviderID: req.ProviderID,
		Kind:       kind,
		Label:      req.Label,
		Data:       data,
		IsActive:   true,
	}

	created, err := s.repo.Create(ctx, policy)
	if err != nil {
		s.logger.Error("Create: repository error for provider=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created policy id=%s kind=%s for provider=%s", created.ID, created.Kind, created.ProviderID)
	return models.FromDomainPolicy(created), nil
}

// Get fetches a single policy by id, including soft-deleted ones.
func (s *Service) Get(ctx context.Context, id string) (*models.PolicyResponse, error) {
	s.logger.Info("Get: fetching policy id=%s", id)

	policy, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			s.logger.Warn("Get: policy id=%s not found", id)
			return nil, ErrPolicyNotFound
		}
		s.logger.Error("Get: repository error for policy id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPolicy(policy), nil
}

// List fetches policies matching the request filter. Soft-deleted policies
// are excluded unless the request asks for them.
func (s *Service) List(ctx context.Context, req *models.ListPoliciesRequest) (*models.PolicyListResponse, error) {
	s.logger.Info("List: fetching policies provider=%v kind=%v includeInactive=%v",
		strOrAll(req.ProviderID), strOrAll(req.Kind), req.IncludeInactive)

	filter, err := req.ToRepoFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	policies, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d policies", len(policies))
	return models.FromDomainPolicyList(policies), nil
}

// Update applies a partial update. Kind is immutable: a new data payload is
// validated against the stored kind and rejected when it declares another
// one. Setting isActive=true reactivates a soft-deleted policy.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("Update: updating policy id=%s", id)

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			s.logger.Warn("Update: policy id=%s not found", id)
			return nil, ErrPolicyNotFound
		}
		s.logger.Error("Update: repository error for policy id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	fields := policyRepo.UpdateFields{
		IsActive: req.IsActive,
	}

	if req.Label != nil {
		if strings.TrimSpace(*req.Label) == "" {
			verrs := domain.ValidationErrors{{Field: "label", Message: "must not be empty"}}
			s.logger.Warn("Update: invalid label for policy id=%s", id)
			return nil, verrs
		}
		fields.Label = req.Label
	}

	if len(req.Data) > 0 {
		data, err := domain.ParsePolicyData(current.Kind, req.Data)
		if err != nil {
			var verrs domain.ValidationErrors
			if errors.As(err, &verrs) {
				s.logger.Warn("Update: invalid data for policy id=%s: %v", id, verrs)
				return nil, verrs
			}
			s.logger.Warn("Update: invalid data for policy id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		fields.Data = data
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			s.logger.Warn("Update: policy id=%s disappeared during update", id)
			return nil, ErrPolicyNotFound
		}
		s.logger.Error("Update: repository error for policy id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated policy id=%s", id)
	return models.FromDomainPolicy(updated), nil
}

// Delete soft-deletes a policy. It reports whether anything changed: the
// first delete of an active policy yields true, repeats and unknown ids
// yield false without an error.
func (s *Service) Delete(ctx context.Context, id string) (*models.DeletePolicyResponse, error) {
	s.logger.Info("Delete: soft-deleting policy id=%s", id)

	changed, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		s.logger.Error("Delete: repository error for policy id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: policy id=%s changed=%v", id, changed)
	return &models.DeletePolicyResponse{Changed: changed}, nil
}

func strOrAll(s *string) string {
	if s == nil {
		return "all"
	}
	return *s
}
