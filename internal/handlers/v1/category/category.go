package category

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-flow/internal/categorizer"
)

// Category is the API model for a category rule.
type Category struct {
	Name     string   `json:"name" doc:"Category name"`
	Keywords []string `json:"keywords" doc:"Lower-case keywords matched as substrings of descriptions"`
}

// categoryManager is the interface the category handlers use.
type categoryManager interface {
	List(ctx context.Context) (categorizer.CategoryRules, error)
	Add(ctx context.Context, name string, keywords []string) error
	Remove(ctx context.Context, name string) error
	UpdateKeywords(ctx context.Context, name string, keywords []string) error
	Move(ctx context.Context, name string, position int) error
}

// Handler serves the /v1/categories endpoints.
type Handler struct {
	CategoryService categoryManager
}

// NewHandler creates a new category Handler.
func NewHandler(svc categoryManager) *Handler {
	return &Handler{CategoryService: svc}
}

// Register registers every category endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Description: "Returns the category rules in priority order; the first match wins.",
		Tags:        []string{"Categories"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/categories",
		Summary:       "Create category",
		Description:   "Appends a category at the lowest priority.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/v1/categories/{name}",
		Summary:     "Update category",
		Description: "Replaces the keywords of a category and optionally moves it to a new priority.",
		Tags:        []string{"Categories"},
	}, h.update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/v1/categories/{name}",
		Summary:       "Delete category",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func toCategories(rules categorizer.CategoryRules) []Category {
	out := make([]Category, len(rules))
	for i, rule := range rules {
		keywords := rule.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		out[i] = Category{Name: rule.Name, Keywords: keywords}
	}
	return out
}

// toHumaError maps categorizer errors to HTTP statuses.
func toHumaError(err error, msg string) error {
	switch {
	case errors.Is(err, categorizer.ErrDuplicateCategory):
		return huma.NewError(http.StatusConflict, msg, err)
	case errors.Is(err, categorizer.ErrCategoryNotFound):
		return huma.NewError(http.StatusNotFound, msg, err)
	case errors.Is(err, categorizer.ErrInvalidPosition), errors.Is(err, categorizer.ErrEmptyCategoryName):
		return huma.NewError(http.StatusBadRequest, msg, err)
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}
