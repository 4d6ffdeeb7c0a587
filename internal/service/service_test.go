package service

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-flow/internal/categorizer"
	"github.com/carson-networks/budget-flow/internal/storage"
	"github.com/carson-networks/budget-flow/internal/storage/rules"
	"github.com/carson-networks/budget-flow/internal/storage/transaction"
)

func newTestStorage(t *testing.T) (*storage.Storage, *rules.MockIRulesStore, *transaction.MockITransactionSource) {
	t.Helper()
	mockRules := rules.NewMockIRulesStore(t)
	mockSource := transaction.NewMockITransactionSource(t)
	return storage.New(mockRules, mockSource), mockRules, mockSource
}

func testRules() categorizer.CategoryRules {
	return categorizer.CategoryRules{
		{Name: "Income", Keywords: []string{"salary", "payroll"}},
		{Name: "Food", Keywords: []string{"lidl", "kfc"}},
		{Name: "Transport", Keywords: []string{"uber"}},
	}
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func tx(description, typ, amount string) Transaction {
	return Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		Description: description,
		Type:        typ,
		Amount:      d(amount),
	}
}
