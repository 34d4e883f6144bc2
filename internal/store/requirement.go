package store

import (
	"context"
	"fmt"

	"gnibdocs/internal/utils"
	"gnibdocs/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const requirementTableName = "gnibdocs.document_requirements"

var requirementColumns = utils.StructTagValues(types.DocumentRequirement{})

// RequirementRepository stores a queryable copy of the requirement table.
type RequirementRepository struct {
	pool *pgxpool.Pool
}

func NewRequirementRepository(pool *pgxpool.Pool) *RequirementRepository {
	return &RequirementRepository{pool: pool}
}

func (r *RequirementRepository) AllRequirements(ctx context.Context) ([]*types.DocumentRequirement, error) {
	query, args, err := allRequirementsQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to generate requirements query: %w", err)
	}

	var rows []*types.DocumentRequirement
	err = pgxscan.Select(ctx, r.pool, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requirements: %w", err)
	}

	return rows, nil
}

func (r *RequirementRepository) CreateRequirement(ctx context.Context, req *types.DocumentRequirement) error {
	query, args, err := psql().
		Insert(requirementTableName).
		SetMap(utils.StructToMap(req)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert requirement: %w", err)
	}

	return nil
}

// UpdateRequirement rewrites the row identified by purpose, category and document type.
func (r *RequirementRepository) UpdateRequirement(ctx context.Context, req *types.DocumentRequirement) error {
	query, args, err := updateRequirementQuery(req)
	if err != nil {
		return fmt.Errorf("failed to generate update query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update requirement: %w", err)
	}

	return nil
}

func (r *RequirementRepository) DeleteRequirement(ctx context.Context, req *types.DocumentRequirement) error {
	query, args, err := psql().
		Delete(requirementTableName).
		Where(requirementKey(req)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete requirement: %w", err)
	}

	return nil
}

func allRequirementsQuery() (string, []any, error) {
	return psql().
		Select(requirementColumns...).
		From(requirementTableName).
		OrderBy("purpose ASC", "category ASC", "position ASC").
		ToSql()
}

func updateRequirementQuery(req *types.DocumentRequirement) (string, []any, error) {
	return psql().
		Update(requirementTableName).
		Set("position", req.Position).
		Set("label", req.Label).
		Set("expiring", req.Expiring).
		Where(requirementKey(req)).
		ToSql()
}

func requirementKey(req *types.DocumentRequirement) sq.Eq {
	return sq.Eq{
		"purpose":       req.Purpose,
		"category":      req.Category,
		"document_type": req.DocumentType,
	}
}
