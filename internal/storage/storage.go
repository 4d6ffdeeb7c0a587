package storage

import (
	"context"

	"github.com/carson-networks/budget-flow/internal/config"
	"github.com/carson-networks/budget-flow/internal/storage/rules"
	"github.com/carson-networks/budget-flow/internal/storage/transaction"
)

// Storage groups the rule store and the transaction source. writeLock allows
// a single open Writer at a time.
type Storage struct {
	Rules        rules.IRulesStore
	Transactions transaction.ITransactionSource

	writeLock chan struct{}
}

func NewStorage(env *config.Config) *Storage {
	return New(
		rules.NewFileStore(env.Rules.File),
		transaction.NewJSONFileSource(env.Transactions.File),
	)
}

func New(rulesStore rules.IRulesStore, transactions transaction.ITransactionSource) *Storage {
	return &Storage{
		Rules:        rulesStore,
		Transactions: transactions,
		writeLock:    make(chan struct{}, 1),
	}
}

// Write opens a Writer over the current rules. It blocks until any other
// Writer is committed or rolled back, or ctx is done.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	select {
	case s.writeLock <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	current, err := s.Rules.Load(ctx)
	if err != nil {
		<-s.writeLock
		return nil, err
	}

	return newWriter(s, current), nil
}
