package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-flow/internal/categorizer"
	"github.com/carson-networks/budget-flow/internal/logging"
	"github.com/carson-networks/budget-flow/internal/storage/transaction"
)

func TestCategorize_Success(t *testing.T) {
	store, mockRules, _ := newTestStorage(t)
	svc := NewCategorizeService(store)

	mockRules.EXPECT().Load(mock.Anything).Return(testRules(), nil)

	result, err := svc.Categorize(context.Background(), []Transaction{
		tx("LIDL Berlin 123", "Groceries", "-42.10"),
		tx("Monthly SALARY", "", "3000"),
		tx("Bakery corner", "", "-3.20"),
	})

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "Food", result[0].Category)
	assert.Equal(t, "lidl", result[0].Keyword)
	assert.Equal(t, "Income", result[1].Category)
	assert.Equal(t, categorizer.Uncategorized, result[2].Category)
	assert.Empty(t, result[2].Keyword)
}

func TestCategorize_RecordsLogData(t *testing.T) {
	store, mockRules, _ := newTestStorage(t)
	svc := NewCategorizeService(store)

	mockRules.EXPECT().Load(mock.Anything).Return(testRules(), nil)

	logData := logging.NewLogData(logrus.New())
	ctx := logging.WithLogData(context.Background(), logData)

	_, err := svc.Categorize(ctx, []Transaction{tx("kfc", "", "-9"), tx("unknown", "", "-1")})

	require.NoError(t, err)
	fields := logData.Log().Data
	assert.Equal(t, 2, fields["transactionCount"])
	assert.Equal(t, 1, fields["uncategorizedCount"])
}

func TestCategorize_RulesError(t *testing.T) {
	store, mockRules, _ := newTestStorage(t)
	svc := NewCategorizeService(store)

	mockRules.EXPECT().Load(mock.Anything).Return(nil, errors.New("disk on fire"))

	result, err := svc.Categorize(context.Background(), []Transaction{tx("kfc", "", "-9")})

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestCategorizeWith_AssignsMissingIDs(t *testing.T) {
	c := categorizer.New(testRules())
	existing := uuid.Must(uuid.NewV4())

	result := CategorizeWith(c, []Transaction{
		{ID: existing, Description: "uber"},
		{Description: "uber"},
	})

	assert.Equal(t, existing, result[0].ID)
	assert.NotEqual(t, uuid.Nil, result[1].ID)
	assert.Equal(t, "Transport", result[1].Category)
}

func TestListTransactions_ConvertsFilterAndRows(t *testing.T) {
	store, _, mockSource := newTestStorage(t)
	svc := NewCategorizeService(store)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	account := AccountTypeSavings
	row := &transaction.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		Description: "Interest",
		Amount:      d("1.25"),
		Date:        from,
		Account:     transaction.AccountTypeSavings,
	}

	mockSource.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.From.Equal(from) && f.To == nil &&
			f.Account != nil && *f.Account == transaction.AccountTypeSavings
	})).Return([]*transaction.Transaction{row}, nil)

	result, err := svc.ListTransactions(context.Background(), &TransactionFilter{From: &from, Account: &account})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, row.ID, result[0].ID)
	assert.Equal(t, AccountTypeSavings, result[0].Account)
	assert.True(t, result[0].Amount.Equal(d("1.25")))
}

func TestListTransactions_NilFilter(t *testing.T) {
	store, _, mockSource := newTestStorage(t)
	svc := NewCategorizeService(store)

	mockSource.EXPECT().List(mock.Anything, (*transaction.TransactionFilter)(nil)).Return(nil, nil)

	result, err := svc.ListTransactions(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, result)
}
