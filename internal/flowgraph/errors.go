package flowgraph

import "errors"

var (
	ErrInvalidAmount   = errors.New("invalid flow amount")
	ErrInvalidFlow     = errors.New("invalid flow")
	ErrEmptyGraph      = errors.New("flow graph has no flows")
	ErrFinalized       = errors.New("flow graph already built")
	ErrAlreadyBalanced = errors.New("flow graph already balanced")
)
