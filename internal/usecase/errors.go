package usecase

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrStoreUnavailable = errors.New("profile temporarily unavailable")
	ErrInternal         = errors.New("internal error")
)
