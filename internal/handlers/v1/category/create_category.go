package category

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-flow/internal/categorizer"
)

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body struct {
		Name     string   `json:"name" required:"true" minLength:"1" doc:"Category name"`
		Keywords []string `json:"keywords,omitempty" doc:"Keywords, matched case-insensitively"`
	}
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Body Category
}

func (h *Handler) create(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	if err := h.CategoryService.Add(ctx, input.Body.Name, input.Body.Keywords); err != nil {
		return nil, toHumaError(err, "failed to create category")
	}

	stored, err := h.describe(ctx, input.Body.Name)
	if err != nil {
		return nil, err
	}
	return &CreateCategoryOutput{Body: stored}, nil
}

// describe reads back the stored form of a category.
func (h *Handler) describe(ctx context.Context, name string) (Category, error) {
	rules, err := h.CategoryService.List(ctx)
	if err != nil {
		return Category{}, huma.NewError(http.StatusInternalServerError, "failed to read category", err)
	}
	for _, c := range toCategories(rules) {
		if c.Name == name {
			return c, nil
		}
	}
	return Category{}, toHumaError(fmt.Errorf("%q: %w", name, categorizer.ErrCategoryNotFound), "category not found")
}
