package categorizer

import "errors"

var (
	ErrDuplicateCategory = errors.New("category already exists")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrInvalidPosition   = errors.New("invalid category position")
	ErrEmptyCategoryName = errors.New("empty category name")
)
