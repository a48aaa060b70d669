package user

import (
	"errors"

	"docstore/internal/domain"
)

var (
	ErrNotFound        = &domain.Error{Err: domain.ErrNotFound, Message: "user not found"}
	ErrDuplicate       = &domain.Error{Err: domain.ErrConflict, Message: "username or email already taken"}
	ErrInvalidAuth     = errors.New("invalid credentials")
	ErrUnknownProvider = domain.Validation("unknown sync provider")
)
