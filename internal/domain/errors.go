package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound               = errors.New("resource not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrPhoneAlreadyExists     = errors.New("phone number already registered")
	ErrInvalidInput           = errors.New("invalid input")
	ErrDuplicate              = errors.New("duplicate resource")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("access denied")
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrInvalidStateTransition = errors.New("request already resolved")
)
