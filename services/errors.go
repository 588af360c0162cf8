package services

import "errors"

// Service-level error taxonomy. Controllers map these onto HTTP statuses:
// ErrValidation -> 400, ErrNotFound/ErrEmptyCart -> 404,
// ErrInvalidCredentials/ErrInvalidToken -> 401, ErrForbidden -> 403,
// ErrDuplicateUser -> 400.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrEmptyCart          = errors.New("no items in the cart")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateUser      = errors.New("user with this username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username/email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
