package service

import (
	"github.com/carson-networks/budget-flow/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Categorize *CategorizeService
	Flow       *FlowService
	Categories *CategoryService
}

// NewService creates a new Service with the given storage and operator.
func NewService(store *storage.Storage, operator IActionProcessor, settings GraphSettings) *Service {
	categorize := NewCategorizeService(store)
	return &Service{
		Categorize: categorize,
		Flow:       NewFlowService(categorize, settings),
		Categories: NewCategoryService(store, operator),
	}
}
