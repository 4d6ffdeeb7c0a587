package category

import (
	"context"
)

// UpdateCategoryInput is the Huma input for updating a category.
type UpdateCategoryInput struct {
	Name string `path:"name" doc:"Category name"`
	Body struct {
		Keywords []string `json:"keywords,omitempty" doc:"Replacement keywords; omitted keeps the current ones"`
		Position *int     `json:"position,omitempty" minimum:"0" doc:"New priority, 0 is matched first"`
	}
}

// UpdateCategoryOutput is the Huma output for updating a category.
type UpdateCategoryOutput struct {
	Body Category
}

func (h *Handler) update(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	if input.Body.Keywords != nil {
		if err := h.CategoryService.UpdateKeywords(ctx, input.Name, input.Body.Keywords); err != nil {
			return nil, toHumaError(err, "failed to update category")
		}
	}
	if input.Body.Position != nil {
		if err := h.CategoryService.Move(ctx, input.Name, *input.Body.Position); err != nil {
			return nil, toHumaError(err, "failed to move category")
		}
	}

	stored, err := h.describe(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	return &UpdateCategoryOutput{Body: stored}, nil
}
