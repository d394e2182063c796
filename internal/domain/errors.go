package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicate    = errors.New("duplicate record")
	ErrConflict     = errors.New("record is still referenced")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnsupported  = errors.New("operation not supported")
)
