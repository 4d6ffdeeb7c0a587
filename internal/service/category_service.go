package service

import (
	"context"

	"github.com/carson-networks/budget-flow/internal/categorizer"
	"github.com/carson-networks/budget-flow/internal/operator/actions"
	"github.com/carson-networks/budget-flow/internal/storage"
)

// IActionProcessor queues a rule change and waits for its result.
//
//go:generate mockery --name IActionProcessor --inpackage --filename mock_IActionProcessor.go --with-expecter
type IActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CategoryService manages the stored category rules. Changes go through the
// operator so writes are applied one at a time.
type CategoryService struct {
	storage  *storage.Storage
	operator IActionProcessor
}

func NewCategoryService(store *storage.Storage, operator IActionProcessor) *CategoryService {
	return &CategoryService{storage: store, operator: operator}
}

// List returns the rules in priority order.
func (s *CategoryService) List(ctx context.Context) (categorizer.CategoryRules, error) {
	rules, err := s.storage.Rules.Load(ctx)
	if err != nil {
		return nil, err
	}
	return categorizer.New(rules).ListCategories(), nil
}

func (s *CategoryService) Add(ctx context.Context, name string, keywords []string) error {
	return s.operator.Process(ctx, &actions.AddCategory{Name: name, Keywords: keywords})
}

func (s *CategoryService) Remove(ctx context.Context, name string) error {
	return s.operator.Process(ctx, &actions.RemoveCategory{Name: name})
}

func (s *CategoryService) UpdateKeywords(ctx context.Context, name string, keywords []string) error {
	return s.operator.Process(ctx, &actions.UpdateKeywords{Name: name, Keywords: keywords})
}

func (s *CategoryService) Move(ctx context.Context, name string, position int) error {
	return s.operator.Process(ctx, &actions.MoveCategory{Name: name, Position: position})
}
