package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

var _ ITransactionSource = (*JSONFileSource)(nil)

var ErrInvalidTransaction = errors.New("invalid transaction")

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02/01/2006",
}

type record struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Account     string          `json:"account"`
}

// JSONFileSource reads transactions from a JSON array on disk.
type JSONFileSource struct {
	path string
}

func NewJSONFileSource(path string) *JSONFileSource {
	return &JSONFileSource{path: path}
}

func (s *JSONFileSource) List(_ context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	all, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	result := make([]*Transaction, 0, len(all))
	for _, tx := range all {
		if filter.matches(tx) {
			result = append(result, tx)
		}
	}
	return result, nil
}

// Decode reads a JSON array of transactions. Records without an id keep
// uuid.Nil.
func Decode(r io.Reader) ([]*Transaction, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}

	out := make([]*Transaction, len(records))
	for i, rec := range records {
		tx, err := rec.toTransaction()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out[i] = tx
	}
	return out, nil
}

func (r record) toTransaction() (*Transaction, error) {
	tx := &Transaction{
		Description: r.Description,
		Type:        strings.TrimSpace(r.Type),
		Amount:      r.Amount,
	}

	if r.ID != "" {
		id, err := uuid.FromString(r.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: id %q", ErrInvalidTransaction, r.ID)
		}
		tx.ID = id
	}

	date, err := ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	tx.Date = date

	account, err := ParseAccountType(r.Account)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	tx.Account = account

	return tx, nil
}

// ParseDate accepts ISO dates, RFC3339 timestamps and day-first dates as
// found in French bank exports.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidTransaction, s)
}
