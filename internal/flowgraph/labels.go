package flowgraph

import "fmt"

type side int

const (
	sideRevenue side = iota + 1
	sideExpense
)

type nodeKind int

const (
	kindHub nodeKind = iota + 1
	kindCategory
	kindLeaf
)

// role pins what a label stands for. A label keeps one role for the life of
// the builder, which keeps revenue leaves, categories and expense leaves on
// separate layers of the graph.
type role struct {
	kind  nodeKind
	side  side
	owner string
}

// labelPlan maps the names of one mapping onto graph labels.
type labelPlan struct {
	categories map[string]string
	leaves     map[string]map[string]string
	roles      map[string]role
}

func (p labelPlan) leaf(category, name string) string {
	return p.leaves[category][name]
}

// planLabels assigns a label to every category and leaf of entries without
// touching the builder. A name already holding another role is qualified
// with its parent, "Expenses / Food" for a category or "Housing / VIREMENT"
// for a leaf.
func (b *Builder) planLabels(entries []categoryEntry, s side) (labelPlan, error) {
	plan := labelPlan{
		categories: make(map[string]string, len(entries)),
		leaves:     make(map[string]map[string]string, len(entries)),
		roles:      make(map[string]role),
	}

	hub := b.revenueLabel
	if s == sideExpense {
		hub = b.expensesLabel
	}

	for _, entry := range entries {
		label, err := b.claim(plan.roles, entry.name, hub, role{kind: kindCategory, side: s})
		if err != nil {
			return labelPlan{}, err
		}
		plan.categories[entry.name] = label
	}

	for _, entry := range entries {
		categoryLabel := plan.categories[entry.name]
		leaves := make(map[string]string, len(entry.leaves))
		for _, l := range entry.leaves {
			if l.name == entry.name {
				leaves[l.name] = categoryLabel
				continue
			}
			label, err := b.claim(plan.roles, l.name, categoryLabel, role{kind: kindLeaf, side: s, owner: categoryLabel})
			if err != nil {
				return labelPlan{}, err
			}
			leaves[l.name] = label
		}
		plan.leaves[entry.name] = leaves
	}
	return plan, nil
}

func (b *Builder) claim(pending map[string]role, name, parent string, want role) (string, error) {
	for _, label := range []string{name, parent + " / " + name} {
		current, taken := b.roleOf(pending, label)
		if !taken || current == want {
			pending[label] = want
			return label, nil
		}
	}
	return "", fmt.Errorf("label %q is already used by another node: %w", name, ErrInvalidFlow)
}

func (b *Builder) roleOf(pending map[string]role, label string) (role, bool) {
	if r, ok := pending[label]; ok {
		return r, true
	}
	if r, ok := b.roles[label]; ok {
		return r, true
	}
	if label == b.revenueLabel || label == b.expensesLabel || label == b.totalLabel {
		return role{kind: kindHub}, true
	}
	if _, ok := b.labelIndex[label]; ok {
		// added through AddFlow, no role to share
		return role{}, true
	}
	return role{}, false
}

func (b *Builder) commit(plan labelPlan) {
	for label, r := range plan.roles {
		b.roles[label] = r
	}
}
