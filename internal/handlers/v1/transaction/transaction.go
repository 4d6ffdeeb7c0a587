package transaction

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-flow/internal/flowgraph"
	"github.com/carson-networks/budget-flow/internal/service"
	"github.com/carson-networks/budget-flow/internal/storage/transaction"
)

// Transaction is the API request model for a bank transaction.
type Transaction struct {
	ID          string `json:"id,omitempty" doc:"Transaction UUID, generated when absent"`
	Description string `json:"description" required:"true" doc:"Bank description matched against category keywords"`
	Type        string `json:"type,omitempty" doc:"Subcategory, defaults to the category"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount, negative for money out"`
	Date        string `json:"date,omitempty" doc:"Date as 2006-01-02, RFC3339 or 02/01/2006"`
	Account     string `json:"account,omitempty" enum:"current,savings,investment,other" doc:"Account type, defaults to current"`
}

// CategorizedTransaction is the API response model for a categorized transaction.
type CategorizedTransaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Description string `json:"description" doc:"Bank description"`
	Type        string `json:"type,omitempty" doc:"Subcategory"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Category    string `json:"category" doc:"Assigned category, Uncategorized when no keyword matched"`
	Keyword     string `json:"keyword,omitempty" doc:"Keyword that selected the category"`
}

// ParseTransactions converts request transactions into service transactions.
// Errors are huma 400 errors naming the offending index.
func ParseTransactions(in []Transaction) ([]service.Transaction, error) {
	out := make([]service.Transaction, len(in))
	for i, body := range in {
		tx, err := parseTransaction(body)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, fmt.Sprintf("invalid transaction %d", i), err)
		}
		out[i] = tx
	}
	return out, nil
}

func parseTransaction(body Transaction) (service.Transaction, error) {
	tx := service.Transaction{
		Description: body.Description,
		Type:        strings.TrimSpace(body.Type),
	}

	if body.ID != "" {
		id, err := uuid.FromString(body.ID)
		if err != nil {
			return tx, fmt.Errorf("invalid id %q: %w", body.ID, err)
		}
		tx.ID = id
	}

	amount, err := flowgraph.ParseDecimal(body.Amount)
	if err != nil {
		return tx, fmt.Errorf("invalid amount %q: %w", body.Amount, err)
	}
	tx.Amount = amount

	if body.Date != "" {
		date, err := transaction.ParseDate(body.Date)
		if err != nil {
			return tx, err
		}
		tx.Date = date
	}

	account, err := service.ParseAccountType(body.Account)
	if err != nil {
		return tx, err
	}
	tx.Account = account

	return tx, nil
}

// FromCategorized builds the response models.
func FromCategorized(in []service.CategorizedTransaction) []CategorizedTransaction {
	out := make([]CategorizedTransaction, len(in))
	for i, tx := range in {
		out[i] = CategorizedTransaction{
			ID:          tx.ID.String(),
			Description: tx.Description,
			Type:        tx.Type,
			Amount:      tx.Amount.String(),
			Category:    tx.Category,
			Keyword:     tx.Keyword,
		}
	}
	return out
}
