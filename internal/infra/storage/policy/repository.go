package policy

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MPC-PolicyService/internal/domain"
	"github.com/m04kA/MPC-PolicyService/pkg/dbmetrics"
	"github.com/m04kA/MPC-PolicyService/pkg/psqlbuilder"
)

var policyColumns = []string{
	"id",
	"provider_id",
	"kind",
	"label",
	"data",
	"is_active",
	"created_at",
	"updated_at",
}

// ListFilter narrows a List call. Nil fields are not filtered on.
// ActiveOnly=true excludes soft-deleted rows.
type ListFilter struct {
	ProviderID *string
	Kind       *domain.PolicyKind
	ActiveOnly bool
}

// UpdateFields is a partial update: nil fields keep their stored value.
// Data replaces the whole payload; the service guarantees it matches the
// policy's kind before it reaches the repository.
type UpdateFields struct {
	Label    *string
	Data     domain.PolicyData
	IsActive *bool
}

// Repository persists scheduling policies in the schedule_policies table.
// Rows are soft-deleted only: delete flips is_active to false and nothing
// ever removes a row physically.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a policy repository on top of the given executor.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new policy row. The caller assigns the id; timestamps
// come from the database.
func (r *Repository) Create(ctx context.Context, p *domain.Policy) (*domain.Policy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	data, err := json.Marshal(p.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal data: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("schedule_policies").
		Columns("id", "provider_id", "kind", "label", "data", "is_active").
		Values(p.ID, p.ProviderID, string(p.Kind), p.Label, data, p.IsActive).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID fetches a single policy row regardless of its active flag.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Policy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(policyColumns...).
		From("schedule_policies").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPolicy(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan policy: %v", ErrScanRow, err)
	}

	return p, nil
}

// List fetches policies matching the filter, most recently created first.
// No matches yields an empty slice, never an error.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]*domain.Policy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(policyColumns...).
		From("schedule_policies").
		OrderBy("created_at DESC")

	if filter.ProviderID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"provider_id": *filter.ProviderID})
	}
	if filter.Kind != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"kind": string(*filter.Kind)})
	}
	if filter.ActiveOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	policies := make([]*domain.Policy, 0)
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		policies = append(policies, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return policies, nil
}

// Update applies a partial update and refreshes updated_at. Kind and id are
// immutable and never touched.
func (r *Repository) Update(ctx context.Context, id string, fields UpdateFields) (*domain.Policy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("schedule_policies").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(policyColumns, ", "))

	if fields.Label != nil {
		updateBuilder = updateBuilder.Set("label", *fields.Label)
	}
	if fields.Data != nil {
		data, err := json.Marshal(fields.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: Update - marshal data: %v", ErrBuildQuery, err)
		}
		updateBuilder = updateBuilder.Set("data", data)
	}
	if fields.IsActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *fields.IsActive)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	p, err := scanPolicy(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan policy: %v", ErrScanRow, err)
	}

	return p, nil
}

// SoftDelete flips is_active to false. It reports whether an active row was
// changed: deleting the same id twice returns true then false, and a missing
// id returns false without an error.
func (r *Repository) SoftDelete(ctx context.Context, id string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedule_policies").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: SoftDelete - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: SoftDelete - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPolicy(row rowScanner) (*domain.Policy, error) {
	var (
		p                    domain.Policy
		kind                 string
		rawData              []byte
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&p.ID,
		&p.ProviderID,
		&kind,
		&p.Label,
		&rawData,
		&p.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Kind = domain.PolicyKind(kind)
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	// Stored payloads were validated on write; re-parsing on read keeps the
	// data.kind == policy.kind invariant enforced end to end.
	data, err := domain.ParsePolicyData(p.Kind, rawData)
	if err != nil {
		return nil, fmt.Errorf("stored payload for policy %s is invalid: %v", p.ID, err)
	}
	p.Data = data

	return &p, nil
}
