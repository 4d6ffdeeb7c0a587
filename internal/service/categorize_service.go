package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-flow/internal/categorizer"
	"github.com/carson-networks/budget-flow/internal/logging"
	"github.com/carson-networks/budget-flow/internal/storage"
)

// CategorizeService runs categorization passes against the stored rules.
type CategorizeService struct {
	storage *storage.Storage
}

func NewCategorizeService(store *storage.Storage) *CategorizeService {
	return &CategorizeService{storage: store}
}

// Categorizer returns a Categorizer over a fresh snapshot of the stored rules.
func (s *CategorizeService) Categorizer(ctx context.Context) (*categorizer.Categorizer, error) {
	rules, err := s.storage.Rules.Load(ctx)
	if err != nil {
		return nil, err
	}
	return categorizer.New(rules), nil
}

// Categorize assigns a category to every transaction using the stored rules.
func (s *CategorizeService) Categorize(ctx context.Context, transactions []Transaction) ([]CategorizedTransaction, error) {
	c, err := s.Categorizer(ctx)
	if err != nil {
		return nil, err
	}

	result := CategorizeWith(c, transactions)

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionCount", len(result))
		logData.AddData("uncategorizedCount", countUncategorized(result))
	}
	return result, nil
}

// ListTransactions reads transactions from the configured source.
func (s *CategorizeService) ListTransactions(ctx context.Context, filter *TransactionFilter) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, filterToStorage(filter))
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}
	return transactions, nil
}

// CategorizeWith categorizes transactions with c. Transactions without an ID
// are given a new one so results can be traced back.
func CategorizeWith(c *categorizer.Categorizer, transactions []Transaction) []CategorizedTransaction {
	result := make([]CategorizedTransaction, len(transactions))
	for i, tx := range transactions {
		if tx.ID == uuid.Nil {
			tx.ID = uuid.Must(uuid.NewV4())
		}
		categorized := CategorizedTransaction{Transaction: tx, Category: categorizer.Uncategorized}
		if m, ok := c.Match(tx.Description); ok {
			categorized.Category = m.Category
			categorized.Keyword = m.Keyword
		}
		result[i] = categorized
	}
	return result
}

func countUncategorized(transactions []CategorizedTransaction) int {
	n := 0
	for _, tx := range transactions {
		if tx.Category == categorizer.Uncategorized {
			n++
		}
	}
	return n
}
