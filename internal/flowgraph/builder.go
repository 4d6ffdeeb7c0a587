// Package flowgraph turns aggregated category amounts into a deduplicated
// source -> target -> value graph ready for a Sankey renderer.
package flowgraph

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DefaultRevenueLabel  = "Revenue"
	DefaultExpensesLabel = "Expenses"
	DefaultTotalLabel    = "Total"
)

type state int

const (
	stateEmpty state = iota
	stateCollecting
	stateFinalized
)

func (s state) String() string {
	switch s {
	case stateEmpty:
		return "empty"
	case stateCollecting:
		return "collecting"
	case stateFinalized:
		return "finalized"
	}
	return "unknown"
}

type edge struct {
	source int
	target int
	value  decimal.Decimal
}

type edgeKey struct {
	source int
	target int
}

// Builder accumulates flows for one graph. Use a fresh Builder per period;
// labels are never forgotten once assigned.
type Builder struct {
	labels     []string
	labelIndex map[string]int
	roles      map[string]role
	edges      []edge
	edgeIndex  map[edgeKey]int

	state    state
	balanced bool
	graph    *FlowGraph

	revenueLabel  string
	expensesLabel string
	totalLabel    string

	revenueTotal decimal.Decimal
	expenseTotal decimal.Decimal
}

type Option func(*Builder)

// WithRevenueLabel names the node revenues flow into.
func WithRevenueLabel(label string) Option {
	return func(b *Builder) {
		if label != "" {
			b.revenueLabel = label
		}
	}
}

// WithExpensesLabel names the node expenses flow out of.
func WithExpensesLabel(label string) Option {
	return func(b *Builder) {
		if label != "" {
			b.expensesLabel = label
		}
	}
}

// WithTotalLabel names the balancing node.
func WithTotalLabel(label string) Option {
	return func(b *Builder) {
		if label != "" {
			b.totalLabel = label
		}
	}
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		labelIndex:    make(map[string]int),
		roles:         make(map[string]role),
		edgeIndex:     make(map[edgeKey]int),
		revenueLabel:  DefaultRevenueLabel,
		expensesLabel: DefaultExpensesLabel,
		totalLabel:    DefaultTotalLabel,
		revenueTotal:  decimal.Zero,
		expenseTotal:  decimal.Zero,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NodeIndex returns the index of label, appending it when unseen.
func (b *Builder) NodeIndex(label string) (int, error) {
	if idx, ok := b.labelIndex[label]; ok {
		return idx, nil
	}
	if b.state == stateFinalized {
		return -1, fmt.Errorf("node %q: %w", label, ErrFinalized)
	}
	idx := len(b.labels)
	b.labels = append(b.labels, label)
	b.labelIndex[label] = idx
	return idx, nil
}

// Labels returns the labels known so far, in first-seen order.
func (b *Builder) Labels() []string {
	return append([]string(nil), b.labels...)
}

// AddFlow records amount moving from source to target. Repeated pairs are
// summed into one edge. A rejected call leaves the builder untouched.
func (b *Builder) AddFlow(source, target string, amount decimal.Decimal) error {
	if err := b.checkFlow(source, target, amount); err != nil {
		return err
	}

	src, _ := b.NodeIndex(source)
	tgt, _ := b.NodeIndex(target)

	key := edgeKey{source: src, target: tgt}
	if i, ok := b.edgeIndex[key]; ok {
		b.edges[i].value = b.edges[i].value.Add(amount)
	} else {
		b.edgeIndex[key] = len(b.edges)
		b.edges = append(b.edges, edge{source: src, target: tgt, value: amount})
	}
	b.state = stateCollecting
	return nil
}

func (b *Builder) checkFlow(source, target string, amount decimal.Decimal) error {
	if b.state == stateFinalized {
		return ErrFinalized
	}
	if amount.IsNegative() {
		return fmt.Errorf("%s -> %s: %s: %w", source, target, amount, ErrInvalidAmount)
	}
	if strings.TrimSpace(source) == "" || strings.TrimSpace(target) == "" {
		return fmt.Errorf("empty label: %w", ErrInvalidFlow)
	}
	if source == target {
		return fmt.Errorf("self loop on %q: %w", source, ErrInvalidFlow)
	}
	return nil
}

// ProcessRevenues adds subcategory -> category -> revenue flows for every leaf.
func (b *Builder) ProcessRevenues(amounts CategorizedAmounts) error {
	entries, plan, err := b.checkProcess(amounts, sideRevenue)
	if err != nil {
		return err
	}
	b.commit(plan)
	for _, entry := range entries {
		category := plan.categories[entry.name]
		if len(entry.leaves) == 0 {
			if err := b.AddFlow(category, b.revenueLabel, decimal.Zero); err != nil {
				return err
			}
			continue
		}
		for _, l := range entry.leaves {
			if leaf := plan.leaf(entry.name, l.name); leaf != category {
				if err := b.AddFlow(leaf, category, l.amount); err != nil {
					return err
				}
			}
			if err := b.AddFlow(category, b.revenueLabel, l.amount); err != nil {
				return err
			}
		}
		b.revenueTotal = b.revenueTotal.Add(entry.total)
	}
	return nil
}

// ProcessExpenses adds expenses -> category -> subcategory flows for every leaf.
func (b *Builder) ProcessExpenses(amounts CategorizedAmounts) error {
	entries, plan, err := b.checkProcess(amounts, sideExpense)
	if err != nil {
		return err
	}
	b.commit(plan)
	for _, entry := range entries {
		category := plan.categories[entry.name]
		if len(entry.leaves) == 0 {
			if err := b.AddFlow(b.expensesLabel, category, decimal.Zero); err != nil {
				return err
			}
			continue
		}
		for _, l := range entry.leaves {
			if err := b.AddFlow(b.expensesLabel, category, l.amount); err != nil {
				return err
			}
			if leaf := plan.leaf(entry.name, l.name); leaf != category {
				if err := b.AddFlow(category, leaf, l.amount); err != nil {
					return err
				}
			}
		}
		b.expenseTotal = b.expenseTotal.Add(entry.total)
	}
	return nil
}

// checkProcess validates a whole mapping and plans its labels up front so a
// walk either applies completely or not at all.
func (b *Builder) checkProcess(amounts CategorizedAmounts, s side) ([]categoryEntry, labelPlan, error) {
	if b.state == stateFinalized {
		return nil, labelPlan{}, ErrFinalized
	}
	if b.balanced {
		return nil, labelPlan{}, ErrAlreadyBalanced
	}
	for category, subs := range amounts {
		if err := b.checkName(category); err != nil {
			return nil, labelPlan{}, err
		}
		for sub, amount := range subs {
			if err := b.checkName(sub); err != nil {
				return nil, labelPlan{}, err
			}
			if amount.IsNegative() {
				return nil, labelPlan{}, fmt.Errorf("%s/%s: %s: %w", category, sub, amount, ErrInvalidAmount)
			}
		}
	}
	entries := amounts.sorted()
	plan, err := b.planLabels(entries, s)
	if err != nil {
		return nil, labelPlan{}, err
	}
	return entries, plan, nil
}

func (b *Builder) checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("empty category name: %w", ErrInvalidFlow)
	}
	if name == b.revenueLabel || name == b.expensesLabel || name == b.totalLabel {
		return fmt.Errorf("category %q collides with a reserved node: %w", name, ErrInvalidFlow)
	}
	return nil
}

// Balance links revenues to expenses. The covered part flows revenue ->
// expenses, a surplus flows revenue -> total and a deficit flows
// total -> expenses, so both hubs conserve value.
func (b *Builder) Balance() error {
	if b.state == stateFinalized {
		return ErrFinalized
	}
	if b.balanced {
		return ErrAlreadyBalanced
	}

	covered := decimal.Min(b.revenueTotal, b.expenseTotal)
	if err := b.AddFlow(b.revenueLabel, b.expensesLabel, covered); err != nil {
		return err
	}
	switch cmp := b.revenueTotal.Cmp(b.expenseTotal); {
	case cmp > 0:
		if err := b.AddFlow(b.revenueLabel, b.totalLabel, b.revenueTotal.Sub(b.expenseTotal)); err != nil {
			return err
		}
	case cmp < 0:
		if err := b.AddFlow(b.totalLabel, b.expensesLabel, b.expenseTotal.Sub(b.revenueTotal)); err != nil {
			return err
		}
	}
	b.balanced = true
	return nil
}

// RevenueTotal is the sum of every revenue leaf processed so far.
func (b *Builder) RevenueTotal() decimal.Decimal {
	return b.revenueTotal
}

// ExpenseTotal is the sum of every expense leaf processed so far.
func (b *Builder) ExpenseTotal() decimal.Decimal {
	return b.expenseTotal
}

// Build finalizes the builder. Later calls return the same graph.
func (b *Builder) Build() (*FlowGraph, error) {
	if b.state == stateFinalized {
		return b.graph, nil
	}
	if len(b.edges) == 0 {
		return nil, ErrEmptyGraph
	}
	b.graph = newFlowGraph(b.labels, b.edges)
	b.state = stateFinalized
	return b.graph, nil
}
