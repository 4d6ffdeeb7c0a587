package category

import (
	"context"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	Name string `path:"name" doc:"Category name"`
}

func (h *Handler) delete(ctx context.Context, input *DeleteCategoryInput) (*struct{}, error) {
	if err := h.CategoryService.Remove(ctx, input.Name); err != nil {
		return nil, toHumaError(err, "failed to delete category")
	}
	return nil, nil
}
