package seed

import (
	"context"
	"fmt"

	"gnibdocs/internal/requirements"
	"gnibdocs/pkg/types"

	"github.com/sirupsen/logrus"
)

type RequirementStore interface {
	AllRequirements(ctx context.Context) ([]*types.DocumentRequirement, error)
	CreateRequirement(ctx context.Context, req *types.DocumentRequirement) error
	UpdateRequirement(ctx context.Context, req *types.DocumentRequirement) error
	DeleteRequirement(ctx context.Context, req *types.DocumentRequirement) error
}

// SyncPlan is the set of row changes needed to make the database match the static table.
type SyncPlan struct {
	Create []*types.DocumentRequirement
	Update []*types.DocumentRequirement
	Delete []*types.DocumentRequirement
}

type rowKey struct {
	purpose  types.Purpose
	category types.Category
	doc      types.DocumentType
}

func keyOf(r *types.DocumentRequirement) rowKey {
	return rowKey{r.Purpose, r.Category, r.DocumentType}
}

// PlanRequirementSync diffs the stored rows against the desired ones.
func PlanRequirementSync(existing, desired []*types.DocumentRequirement) SyncPlan {
	var plan SyncPlan

	stored := make(map[rowKey]*types.DocumentRequirement, len(existing))
	for _, row := range existing {
		stored[keyOf(row)] = row
	}

	wanted := make(map[rowKey]bool, len(desired))
	for _, row := range desired {
		wanted[keyOf(row)] = true

		current, ok := stored[keyOf(row)]
		switch {
		case !ok:
			plan.Create = append(plan.Create, row)
		case *current != *row:
			plan.Update = append(plan.Update, row)
		}
	}

	for _, row := range existing {
		if !wanted[keyOf(row)] {
			plan.Delete = append(plan.Delete, row)
		}
	}

	return plan
}

// SeedRequirements syncs the database with the static requirement table, which is the
// source of truth: missing rows are inserted, changed rows updated and stale rows deleted.
func SeedRequirements(ctx context.Context, logger logrus.FieldLogger, repo RequirementStore) error {
	rows := requirements.Rows()
	desired := make([]*types.DocumentRequirement, len(rows))
	for i := range rows {
		desired[i] = &rows[i]
	}

	existing, err := repo.AllRequirements(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch existing requirements: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"table_rows":    len(desired),
		"database_rows": len(existing),
	}).Info("starting requirement sync")

	plan := PlanRequirementSync(existing, desired)

	for _, row := range plan.Delete {
		logger.WithFields(rowFields(row)).Info("deleting requirement")
		if err := repo.DeleteRequirement(ctx, row); err != nil {
			return fmt.Errorf("failed to delete requirement %s/%s/%s: %w", row.Purpose, row.Category, row.DocumentType, err)
		}
	}

	for _, row := range plan.Update {
		logger.WithFields(rowFields(row)).Info("updating requirement")
		if err := repo.UpdateRequirement(ctx, row); err != nil {
			return fmt.Errorf("failed to update requirement %s/%s/%s: %w", row.Purpose, row.Category, row.DocumentType, err)
		}
	}

	for _, row := range plan.Create {
		logger.WithFields(rowFields(row)).Info("creating requirement")
		if err := repo.CreateRequirement(ctx, row); err != nil {
			return fmt.Errorf("failed to create requirement %s/%s/%s: %w", row.Purpose, row.Category, row.DocumentType, err)
		}
	}

	logger.WithFields(logrus.Fields{
		"created": len(plan.Create),
		"updated": len(plan.Update),
		"deleted": len(plan.Delete),
	}).Info("requirement sync complete")

	return nil
}

func rowFields(row *types.DocumentRequirement) logrus.Fields {
	return logrus.Fields{
		"purpose":       row.Purpose,
		"category":      row.Category,
		"document_type": row.DocumentType,
		"position":      row.Position,
	}
}
