package rules

import (
	"context"

	"github.com/carson-networks/budget-flow/internal/categorizer"
)

// MigrationResult reports what Migrate changed.
type MigrationResult struct {
	PreMigrationCount  int
	PostMigrationCount int
}

// Migrate rewrites the stored rules in the canonical list layout with
// normalized keywords. Unnamed and repeated categories are dropped.
func Migrate(ctx context.Context, store IRulesStore) (MigrationResult, error) {
	loaded, err := store.Load(ctx)
	if err != nil {
		return MigrationResult{}, err
	}

	normalized := categorizer.New(loaded).ListCategories()
	if err := store.Save(ctx, normalized); err != nil {
		return MigrationResult{}, err
	}

	return MigrationResult{
		PreMigrationCount:  len(loaded),
		PostMigrationCount: len(normalized),
	}, nil
}
