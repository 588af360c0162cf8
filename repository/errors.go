package repository

import "errors"

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate record")

	// ErrEmptyCart is returned when an operation needs cart lines and the
	// user has none.
	ErrEmptyCart = errors.New("cart is empty")
)
