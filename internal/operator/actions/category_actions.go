package actions

import (
	"context"

	"github.com/carson-networks/budget-flow/internal/storage"
)

type AddCategory struct {
	Name     string
	Keywords []string
}

func (a *AddCategory) Perform(_ context.Context, writer *storage.Writer) error {
	return writer.Categorizer.AddCategory(a.Name, a.Keywords)
}

type RemoveCategory struct {
	Name string
}

func (a *RemoveCategory) Perform(_ context.Context, writer *storage.Writer) error {
	return writer.Categorizer.RemoveCategory(a.Name)
}

type UpdateKeywords struct {
	Name     string
	Keywords []string
}

func (a *UpdateKeywords) Perform(_ context.Context, writer *storage.Writer) error {
	return writer.Categorizer.UpdateKeywords(a.Name, a.Keywords)
}

// MoveCategory changes the priority of a category; Position 0 is matched first.
type MoveCategory struct {
	Name     string
	Position int
}

func (a *MoveCategory) Perform(_ context.Context, writer *storage.Writer) error {
	return writer.Categorizer.MoveCategory(a.Name, a.Position)
}
