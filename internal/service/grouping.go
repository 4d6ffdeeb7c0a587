package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-flow/internal/categorizer"
	"github.com/carson-networks/budget-flow/internal/flowgraph"
)

// GroupOptions controls how categorized transactions are split into the
// revenue and expense mappings.
type GroupOptions struct {
	// RevenueCategories are the categories placed on the revenue side.
	RevenueCategories []string
	// KnownCategories get a node even without transactions, which keeps the
	// layout comparable across periods.
	KnownCategories []string
}

// Group aggregates categorized transactions into category -> subcategory ->
// amount mappings. The subcategory is the transaction type, or the category
// itself when the type is empty.
//
// Amounts are netted per category and subcategory, so a refund reduces the
// expense it belongs to. The sign of the net decides the side: money in goes
// to revenues and money out goes to expenses, both as absolute values. A net
// of zero stays on the category's configured side. Uncategorized
// transactions share nothing but the lack of a keyword, so they are split by
// sign instead of netted.
func Group(transactions []CategorizedTransaction, opts GroupOptions) (revenues, expenses flowgraph.CategorizedAmounts) {
	revenueSet := make(map[string]struct{}, len(opts.RevenueCategories))
	for _, name := range opts.RevenueCategories {
		revenueSet[name] = struct{}{}
	}
	isRevenue := func(category string) bool {
		_, ok := revenueSet[category]
		return ok
	}

	revenues = flowgraph.CategorizedAmounts{}
	expenses = flowgraph.CategorizedAmounts{}

	for _, name := range opts.KnownCategories {
		if isRevenue(name) {
			revenues.Touch(name)
		} else {
			expenses.Touch(name)
		}
	}

	net := flowgraph.CategorizedAmounts{}
	for _, tx := range transactions {
		sub := strings.TrimSpace(tx.Type)
		if sub == "" {
			sub = tx.Category
		}
		if tx.Category == categorizer.Uncategorized {
			if tx.Amount.IsPositive() {
				revenues.Add(tx.Category, sub, tx.Amount)
			} else {
				expenses.Add(tx.Category, sub, tx.Amount.Neg())
			}
			continue
		}
		net.Add(tx.Category, sub, tx.Amount)
	}

	for category, subs := range net {
		for sub, amount := range subs {
			switch {
			case amount.IsPositive():
				revenues.Add(category, sub, amount)
			case amount.IsNegative():
				expenses.Add(category, sub, amount.Neg())
			case isRevenue(category):
				revenues.Add(category, sub, decimal.Zero)
			default:
				expenses.Add(category, sub, decimal.Zero)
			}
		}
	}
	return revenues, expenses
}
