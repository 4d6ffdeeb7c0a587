package categorizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCategorizer() *Categorizer {
	return New(CategoryRules{
		{Name: "Food", Keywords: []string{"burger king", "kfc", "carrefour"}},
		{Name: "Transport", Keywords: []string{"sncf", "station u", "uber"}},
		{Name: "Banking", Keywords: []string{"commissions"}},
	})
}

func TestCategorize(t *testing.T) {
	c := newTestCategorizer()

	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"exact keyword", "kfc", "Food"},
		{"keyword inside description", "CB KFC PARIS 12/03", "Food"},
		{"mixed case", "Paiement Station U Lyon", "Transport"},
		{"no match", "VIREMENT RECU", Uncategorized},
		{"empty description", "", Uncategorized},
		{"earlier category wins", "UBER EATS BURGER KING", "Food"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Categorize(tt.description))
		})
	}
}

func TestCategorize_DeclarationOrderBreaksTies(t *testing.T) {
	description := "uber eats lunch"

	foodFirst := New(CategoryRules{
		{Name: "Food", Keywords: []string{"eats"}},
		{Name: "Transport", Keywords: []string{"uber"}},
	})
	transportFirst := New(CategoryRules{
		{Name: "Transport", Keywords: []string{"uber"}},
		{Name: "Food", Keywords: []string{"eats"}},
	})

	assert.Equal(t, "Food", foodFirst.Categorize(description))
	assert.Equal(t, "Transport", transportFirst.Categorize(description))
}

func TestMatch_ReportsKeyword(t *testing.T) {
	c := newTestCategorizer()

	m, ok := c.Match("PRLV SNCF VOYAGES")
	require.True(t, ok)
	assert.Equal(t, "Transport", m.Category)
	assert.Equal(t, "sncf", m.Keyword)

	_, ok = c.Match("nothing here")
	assert.False(t, ok)
}

func TestNew_NormalizesRules(t *testing.T) {
	c := New(CategoryRules{
		{Name: " Food ", Keywords: []string{" KFC ", "", "kfc", "Carrefour"}},
		{Name: "", Keywords: []string{"ignored"}},
		{Name: "Food", Keywords: []string{"duplicate"}},
	})

	rules := c.ListCategories()
	require.Len(t, rules, 1)
	assert.Equal(t, "Food", rules[0].Name)
	assert.Equal(t, []string{"kfc", "carrefour"}, rules[0].Keywords)
	assert.Equal(t, Uncategorized, c.Categorize("duplicate"))
}

func TestNew_DoesNotAliasInput(t *testing.T) {
	input := CategoryRules{{Name: "Food", Keywords: []string{"kfc"}}}
	c := New(input)

	input[0].Keywords[0] = "sncf"

	assert.Equal(t, "Food", c.Categorize("KFC"))
	assert.Equal(t, Uncategorized, c.Categorize("SNCF"))
}

func TestAddCategory(t *testing.T) {
	c := newTestCategorizer()

	require.NoError(t, c.AddCategory("Health", []string{"Pharmacie"}))
	assert.Equal(t, "Health", c.Categorize("PHARMACIE DU CENTRE"))
	assert.Equal(t, []string{"Food", "Transport", "Banking", "Health"}, c.ListCategories().Names())

	err := c.AddCategory("Food", []string{"lidl"})
	assert.True(t, errors.Is(err, ErrDuplicateCategory))
	assert.Equal(t, 4, c.Len())

	assert.ErrorIs(t, c.AddCategory("  ", nil), ErrEmptyCategoryName)
}

func TestAddCategory_LowestPriority(t *testing.T) {
	c := newTestCategorizer()
	require.NoError(t, c.AddCategory("Fast food", []string{"kfc"}))

	assert.Equal(t, "Food", c.Categorize("kfc"))
}

func TestRemoveCategory(t *testing.T) {
	c := newTestCategorizer()

	require.NoError(t, c.RemoveCategory("Food"))
	assert.Equal(t, Uncategorized, c.Categorize("KFC"))
	assert.Equal(t, "Transport", c.Categorize("uber eats"))

	err := c.RemoveCategory("Food")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.Contains(t, err.Error(), `"Food"`)
}

func TestUpdateKeywords(t *testing.T) {
	c := newTestCategorizer()

	require.NoError(t, c.UpdateKeywords("Food", []string{"Lidl"}))
	assert.Equal(t, Uncategorized, c.Categorize("KFC"))
	assert.Equal(t, "Food", c.Categorize("LIDL 0042"))
	assert.Equal(t, []string{"Food", "Transport", "Banking"}, c.ListCategories().Names())

	assert.ErrorIs(t, c.UpdateKeywords("Leisure", []string{"cinema"}), ErrCategoryNotFound)
}

func TestMoveCategory(t *testing.T) {
	c := newTestCategorizer()

	require.NoError(t, c.MoveCategory("Banking", 0))
	assert.Equal(t, []string{"Banking", "Food", "Transport"}, c.ListCategories().Names())

	require.NoError(t, c.MoveCategory("Banking", 2))
	assert.Equal(t, []string{"Food", "Transport", "Banking"}, c.ListCategories().Names())

	assert.ErrorIs(t, c.MoveCategory("Banking", 3), ErrInvalidPosition)
	assert.ErrorIs(t, c.MoveCategory("Banking", -1), ErrInvalidPosition)
	assert.ErrorIs(t, c.MoveCategory("Leisure", 0), ErrCategoryNotFound)
}

func TestListCategories_IsSnapshot(t *testing.T) {
	c := newTestCategorizer()

	snapshot := c.ListCategories()
	snapshot[0].Keywords[0] = "changed"
	snapshot[1].Name = "Renamed"

	assert.Equal(t, "Food", c.Categorize("burger king"))
	assert.Equal(t, []string{"Food", "Transport", "Banking"}, c.ListCategories().Names())
}
