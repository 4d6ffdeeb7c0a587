package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-flow/internal/storage/transaction"
)

// AccountType represents an account type in the service layer.
type AccountType int8

const (
	AccountTypeCurrent AccountType = iota
	AccountTypeSavings
	AccountTypeInvestment
	AccountTypeOther
)

func (a AccountType) String() string {
	return accountTypeToStorage(a).String()
}

// ParseAccountType accepts "current", "savings", "investment" or "other".
func ParseAccountType(s string) (AccountType, error) {
	t, err := transaction.ParseAccountType(s)
	return accountTypeFromStorage(t), err
}

// Transaction represents a transaction in the service layer. Amount is signed:
// money in is positive, money out is negative.
type Transaction struct {
	ID          uuid.UUID
	Description string
	Type        string
	Amount      decimal.Decimal
	Date        time.Time
	Account     AccountType
}

// CategorizedTransaction pairs a transaction with its category and the
// keyword that selected it, empty when Uncategorized.
type CategorizedTransaction struct {
	Transaction
	Category string
	Keyword  string
}

// TransactionFilter narrows the transactions read from storage.
type TransactionFilter struct {
	From    *time.Time
	To      *time.Time
	Account *AccountType
}

func accountTypeToStorage(t AccountType) transaction.AccountType {
	return transaction.AccountType(t)
}

func accountTypeFromStorage(t transaction.AccountType) AccountType {
	return AccountType(t)
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		Description: row.Description,
		Type:        row.Type,
		Amount:      row.Amount,
		Date:        row.Date,
		Account:     accountTypeFromStorage(row.Account),
	}
}

func filterToStorage(f *TransactionFilter) *transaction.TransactionFilter {
	if f == nil {
		return nil
	}
	out := &transaction.TransactionFilter{From: f.From, To: f.To}
	if f.Account != nil {
		account := accountTypeToStorage(*f.Account)
		out.Account = &account
	}
	return out
}
