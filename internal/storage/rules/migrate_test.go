package rules

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-flow/internal/categorizer"
)

func TestMigrate_MappingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
Food: [KFC, " Lidl ", kfc]
Transport: [uber]
"  ": [aldi]
`), 0o600))
	store := NewFileStore(path)

	result, err := Migrate(context.Background(), store)

	require.NoError(t, err)
	assert.Equal(t, MigrationResult{PreMigrationCount: 3, PostMigrationCount: 2}, result)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	rules, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, categorizer.CategoryRules{
		{Name: "Food", Keywords: []string{"kfc", "lidl"}},
		{Name: "Transport", Keywords: []string{"uber"}},
	}, rules)
}

func TestMigrate_LoadError(t *testing.T) {
	store := NewMockIRulesStore(t)
	store.EXPECT().Load(mock.Anything).Return(nil, ErrInvalidRulesFile)

	_, err := Migrate(context.Background(), store)

	assert.ErrorIs(t, err, ErrInvalidRulesFile)
}

func TestMigrate_SaveError(t *testing.T) {
	store := NewMockIRulesStore(t)
	store.EXPECT().Load(mock.Anything).Return(categorizer.CategoryRules{{Name: "Food"}}, nil)
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("read-only"))

	_, err := Migrate(context.Background(), store)

	assert.Error(t, err)
}
