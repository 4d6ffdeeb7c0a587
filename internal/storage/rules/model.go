package rules

import (
	"context"

	"github.com/carson-networks/budget-flow/internal/categorizer"
)

// IRulesStore loads and saves the ordered category rule set.
//
//go:generate mockery --name IRulesStore --inpackage --filename mock_IRulesStore.go --with-expecter
type IRulesStore interface {
	Load(ctx context.Context) (categorizer.CategoryRules, error)
	Save(ctx context.Context, rules categorizer.CategoryRules) error
}
