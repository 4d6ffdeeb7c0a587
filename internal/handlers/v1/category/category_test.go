package category

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-flow/internal/categorizer"
)

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) List(ctx context.Context) (categorizer.CategoryRules, error) {
	args := m.Called(ctx)
	rules, _ := args.Get(0).(categorizer.CategoryRules)
	return rules, args.Error(1)
}

func (m *mockCategoryService) Add(ctx context.Context, name string, keywords []string) error {
	return m.Called(ctx, name, keywords).Error(0)
}

func (m *mockCategoryService) Remove(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *mockCategoryService) UpdateKeywords(ctx context.Context, name string, keywords []string) error {
	return m.Called(ctx, name, keywords).Error(0)
}

func (m *mockCategoryService) Move(ctx context.Context, name string, position int) error {
	return m.Called(ctx, name, position).Error(0)
}

func newTestAPI(t *testing.T, svc categoryManager) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

var storedRules = categorizer.CategoryRules{
	{Name: "Food", Keywords: []string{"lidl", "kfc"}},
	{Name: "Transport", Keywords: []string{"uber"}},
	{Name: "Gifts"},
}

func TestHTTP_ListCategories(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("List", mock.Anything).Return(storedRules, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/categories")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListCategoriesResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Categories, 3)
	assert.Equal(t, "Food", body.Categories[0].Name)
	assert.Equal(t, []string{"lidl", "kfc"}, body.Categories[0].Keywords)
	assert.Equal(t, []string{}, body.Categories[2].Keywords)
}

func TestHTTP_ListCategories_ServiceError(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("List", mock.Anything).Return(nil, errors.New("unreadable"))

	resp := newTestAPI(t, mockSvc).Get("/v1/categories")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_CreateCategory(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("Add", mock.Anything, "Gifts", []string(nil)).Return(nil)
	mockSvc.On("List", mock.Anything).Return(storedRules, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/categories", map[string]any{"name": "Gifts"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Gifts", body.Name)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateCategory_Duplicate(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("Add", mock.Anything, "Food", []string{"aldi"}).
		Return(fmt.Errorf("%q: %w", "Food", categorizer.ErrDuplicateCategory))

	resp := newTestAPI(t, mockSvc).Post("/v1/categories", map[string]any{"name": "Food", "keywords": []string{"aldi"}})

	assert.Equal(t, http.StatusConflict, resp.Code)
	mockSvc.AssertNotCalled(t, "List", mock.Anything)
}

func TestHTTP_CreateCategory_MissingName(t *testing.T) {
	mockSvc := new(mockCategoryService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/categories", map[string]any{"keywords": []string{"x"}})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_UpdateCategory_KeywordsAndPosition(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("UpdateKeywords", mock.Anything, "Transport", []string{"uber", "sncf"}).Return(nil)
	mockSvc.On("Move", mock.Anything, "Transport", 0).Return(nil)
	mockSvc.On("List", mock.Anything).Return(categorizer.CategoryRules{
		{Name: "Transport", Keywords: []string{"uber", "sncf"}},
		{Name: "Food", Keywords: []string{"lidl"}},
	}, nil)

	resp := newTestAPI(t, mockSvc).Put("/v1/categories/Transport", map[string]any{
		"keywords": []string{"uber", "sncf"},
		"position": 0,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"uber", "sncf"}, body.Keywords)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateCategory_NotFound(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("UpdateKeywords", mock.Anything, "Pets", []string{"vet"}).
		Return(fmt.Errorf("%q: %w", "Pets", categorizer.ErrCategoryNotFound))

	resp := newTestAPI(t, mockSvc).Put("/v1/categories/Pets", map[string]any{"keywords": []string{"vet"}})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdateCategory_NothingToChangeOnMissingCategory(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("List", mock.Anything).Return(storedRules, nil)

	resp := newTestAPI(t, mockSvc).Put("/v1/categories/Pets", map[string]any{})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdateCategory_InvalidPosition(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("Move", mock.Anything, "Food", 9).Return(categorizer.ErrInvalidPosition)

	resp := newTestAPI(t, mockSvc).Put("/v1/categories/Food", map[string]any{"position": 9})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_DeleteCategory(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("Remove", mock.Anything, "Food").Return(nil)

	resp := newTestAPI(t, mockSvc).Delete("/v1/categories/Food")

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteCategory_NotFound(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("Remove", mock.Anything, "Pets").Return(categorizer.ErrCategoryNotFound)

	resp := newTestAPI(t, mockSvc).Delete("/v1/categories/Pets")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
