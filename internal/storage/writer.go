package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/budget-flow/internal/categorizer"
)

var ErrWriterClosed = errors.New("writer already committed or rolled back")

// Writer stages category changes on a Categorizer and persists them on
// Commit.
type Writer struct {
	storage     *Storage
	Categorizer *categorizer.Categorizer

	closeOnce sync.Once
	closed    bool
}

func newWriter(s *Storage, current categorizer.CategoryRules) *Writer {
	return &Writer{
		storage:     s,
		Categorizer: categorizer.New(current),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	if w.closed {
		return ErrWriterClosed
	}
	defer w.release()
	return w.storage.Rules.Save(ctx, w.Categorizer.ListCategories())
}

func (w *Writer) Rollback() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.release()
	return nil
}

func (w *Writer) release() {
	w.closeOnce.Do(func() {
		w.closed = true
		<-w.storage.writeLock
	})
}
