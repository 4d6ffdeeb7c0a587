package categorizer

import (
	"strings"
)

// Uncategorized is returned for descriptions that match no rule.
const Uncategorized = "Uncategorized"

// CategoryRule associates a category with the keywords that select it.
type CategoryRule struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// CategoryRules is an ordered rule set. Earlier rules win when a
// description matches keywords of more than one category.
type CategoryRules []CategoryRule

// Clone returns a deep copy of the rules.
func (r CategoryRules) Clone() CategoryRules {
	if r == nil {
		return nil
	}
	out := make(CategoryRules, len(r))
	for i, rule := range r {
		out[i] = CategoryRule{
			Name:     rule.Name,
			Keywords: append([]string(nil), rule.Keywords...),
		}
	}
	return out
}

// Names returns the category names in declaration order.
func (r CategoryRules) Names() []string {
	names := make([]string, len(r))
	for i, rule := range r {
		names[i] = rule.Name
	}
	return names
}

func (r CategoryRules) indexOf(name string) int {
	for i, rule := range r {
		if rule.Name == name {
			return i
		}
	}
	return -1
}

// normalizeKeywords case-folds and trims keywords, dropping empty and
// repeated entries while keeping their first-seen order.
func normalizeKeywords(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}
