package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record as read from a statement export.
type Transaction struct {
	ID          uuid.UUID
	Description string
	Type        string
	Amount      decimal.Decimal
	Date        time.Time
	Account     AccountType
}

// TransactionFilter specifies filters for listing transactions. Bounds are
// inclusive; nil means unbounded.
type TransactionFilter struct {
	From    *time.Time
	To      *time.Time
	Account *AccountType
}

func (f *TransactionFilter) matches(tx *Transaction) bool {
	if f == nil {
		return true
	}
	if f.From != nil && tx.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && tx.Date.After(*f.To) {
		return false
	}
	if f.Account != nil && tx.Account != *f.Account {
		return false
	}
	return true
}

// ITransactionSource defines the interface for reading transactions.
//
//go:generate mockery --name ITransactionSource --inpackage --filename mock_ITransactionSource.go --with-expecter
type ITransactionSource interface {
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
}

type AccountType int8

const (
	AccountTypeCurrent AccountType = iota
	AccountTypeSavings
	AccountTypeInvestment
	AccountTypeOther
)

var accountTypeNames = map[AccountType]string{
	AccountTypeCurrent:    "current",
	AccountTypeSavings:    "savings",
	AccountTypeInvestment: "investment",
	AccountTypeOther:      "other",
}

func (a AccountType) String() string {
	if name, ok := accountTypeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AccountType(%d)", int8(a))
}

// ParseAccountType accepts the names returned by String. An empty string is
// the current account.
func ParseAccountType(s string) (AccountType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return AccountTypeCurrent, nil
	}
	for t, name := range accountTypeNames {
		if name == s {
			return t, nil
		}
	}
	return AccountTypeOther, fmt.Errorf("unknown account type %q", s)
}
