package flowgraph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// CategorizedAmounts maps category -> subcategory -> aggregated amount.
type CategorizedAmounts map[string]map[string]decimal.Decimal

// Add accumulates amount under category/subcategory.
func (c CategorizedAmounts) Add(category, subcategory string, amount decimal.Decimal) {
	subs, ok := c[category]
	if !ok {
		subs = make(map[string]decimal.Decimal)
		c[category] = subs
	}
	subs[subcategory] = subs[subcategory].Add(amount)
}

// Touch registers a category without any amount so it still gets a node.
func (c CategorizedAmounts) Touch(category string) {
	if _, ok := c[category]; !ok {
		c[category] = make(map[string]decimal.Decimal)
	}
}

// CategoryTotal sums the subcategories of a category.
func (c CategorizedAmounts) CategoryTotal(category string) decimal.Decimal {
	total := decimal.Zero
	for _, v := range c[category] {
		total = total.Add(v)
	}
	return total
}

// Total sums every leaf amount.
func (c CategorizedAmounts) Total() decimal.Decimal {
	total := decimal.Zero
	for category := range c {
		total = total.Add(c.CategoryTotal(category))
	}
	return total
}

type leaf struct {
	name   string
	amount decimal.Decimal
}

type categoryEntry struct {
	name   string
	total  decimal.Decimal
	leaves []leaf
}

// sorted walks categories and their subcategories by descending amount, then
// by name, so label order does not depend on map iteration.
func (c CategorizedAmounts) sorted() []categoryEntry {
	entries := make([]categoryEntry, 0, len(c))
	for name, subs := range c {
		entry := categoryEntry{name: name, total: decimal.Zero}
		for sub, amount := range subs {
			entry.leaves = append(entry.leaves, leaf{name: sub, amount: amount})
			entry.total = entry.total.Add(amount)
		}
		sort.Slice(entry.leaves, func(i, j int) bool {
			return byAmountThenName(entry.leaves[i].amount, entry.leaves[j].amount, entry.leaves[i].name, entry.leaves[j].name)
		})
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return byAmountThenName(entries[i].total, entries[j].total, entries[i].name, entries[j].name)
	})
	return entries
}

func byAmountThenName(a, b decimal.Decimal, nameA, nameB string) bool {
	if cmp := a.Cmp(b); cmp != 0 {
		return cmp > 0
	}
	return nameA < nameB
}

// ParseAmount parses a non-negative decimal string such as "12.34",
// "12,34", "1.234,56" or "1 234,56". Negative or non-numeric input yields
// ErrInvalidAmount.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := ParseDecimal(s)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%q is negative: %w", s, ErrInvalidAmount)
	}
	return amount, nil
}

var groupSeparators = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "", "'", "")

// ParseDecimal parses a signed decimal string written with either decimal
// separator. Spaces and apostrophes group thousands. When both "," and "."
// appear the last one is the decimal separator; a separator repeated alone
// groups thousands ("1,234,567").
func ParseDecimal(s string) (decimal.Decimal, error) {
	normalized := groupSeparators.Replace(strings.TrimSpace(s))

	comma := strings.LastIndex(normalized, ",")
	dot := strings.LastIndex(normalized, ".")
	switch {
	case comma >= 0 && dot >= 0 && comma > dot:
		normalized = strings.Replace(strings.ReplaceAll(normalized, ".", ""), ",", ".", 1)
	case comma >= 0 && dot >= 0:
		normalized = strings.ReplaceAll(normalized, ",", "")
	case strings.Count(normalized, ",") > 1:
		normalized = strings.ReplaceAll(normalized, ",", "")
	case comma >= 0:
		normalized = strings.Replace(normalized, ",", ".", 1)
	case strings.Count(normalized, ".") > 1:
		normalized = strings.ReplaceAll(normalized, ".", "")
	}

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q: %w", s, ErrInvalidAmount)
	}
	return amount, nil
}
