// Package categorizer assigns categories to transaction descriptions using
// ordered keyword rules.
package categorizer

import (
	"fmt"
	"strings"
)

// Categorizer owns one CategoryRules value for the duration of a session.
// It is not safe for concurrent mutation.
type Categorizer struct {
	rules CategoryRules
}

// Match describes which rule selected a category.
type Match struct {
	Category string
	Keyword  string
}

// New builds a Categorizer from a copy of rules. Rules with an empty name are
// skipped and a repeated name keeps only its first declaration.
func New(rules CategoryRules) *Categorizer {
	c := &Categorizer{rules: make(CategoryRules, 0, len(rules))}
	for _, rule := range rules {
		name := strings.TrimSpace(rule.Name)
		if name == "" || c.rules.indexOf(name) >= 0 {
			continue
		}
		c.rules = append(c.rules, CategoryRule{
			Name:     name,
			Keywords: normalizeKeywords(rule.Keywords),
		})
	}
	return c
}

// Categorize returns the first category whose keywords appear in the
// description, or Uncategorized.
func (c *Categorizer) Categorize(description string) string {
	if m, ok := c.Match(description); ok {
		return m.Category
	}
	return Uncategorized
}

// Match returns the winning rule and keyword for a description.
func (c *Categorizer) Match(description string) (Match, bool) {
	normalized := strings.ToLower(description)
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(normalized, kw) {
				return Match{Category: rule.Name, Keyword: kw}, true
			}
		}
	}
	return Match{}, false
}

// AddCategory appends a category after all existing ones.
func (c *Categorizer) AddCategory(name string, keywords []string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCategoryName
	}
	if c.rules.indexOf(name) >= 0 {
		return fmt.Errorf("add %q: %w", name, ErrDuplicateCategory)
	}
	c.rules = append(c.rules, CategoryRule{Name: name, Keywords: normalizeKeywords(keywords)})
	return nil
}

// RemoveCategory deletes a category and its keywords.
func (c *Categorizer) RemoveCategory(name string) error {
	i := c.rules.indexOf(name)
	if i < 0 {
		return fmt.Errorf("remove %q: %w", name, ErrCategoryNotFound)
	}
	c.rules = append(c.rules[:i], c.rules[i+1:]...)
	return nil
}

// UpdateKeywords replaces the keyword set of a category. Its position in the
// declaration order does not change.
func (c *Categorizer) UpdateKeywords(name string, keywords []string) error {
	i := c.rules.indexOf(name)
	if i < 0 {
		return fmt.Errorf("update %q: %w", name, ErrCategoryNotFound)
	}
	c.rules[i].Keywords = normalizeKeywords(keywords)
	return nil
}

// MoveCategory changes the priority of a category. Position 0 is checked first.
func (c *Categorizer) MoveCategory(name string, position int) error {
	i := c.rules.indexOf(name)
	if i < 0 {
		return fmt.Errorf("move %q: %w", name, ErrCategoryNotFound)
	}
	if position < 0 || position >= len(c.rules) {
		return fmt.Errorf("move %q to %d: %w", name, position, ErrInvalidPosition)
	}
	rule := c.rules[i]
	c.rules = append(c.rules[:i], c.rules[i+1:]...)
	c.rules = append(c.rules[:position], append(CategoryRules{rule}, c.rules[position:]...)...)
	return nil
}

// ListCategories returns a snapshot of the rules in declaration order.
func (c *Categorizer) ListCategories() CategoryRules {
	return c.rules.Clone()
}

// Len returns the number of categories.
func (c *Categorizer) Len() int {
	return len(c.rules)
}
