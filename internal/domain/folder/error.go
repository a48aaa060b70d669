package folder

import "docstore/internal/domain"

var (
	ErrNotFound      = &domain.Error{Err: domain.ErrNotFound, Message: "folder not found"}
	ErrMissingFields = &domain.Error{Err: domain.ErrValidation, Message: "Missing required fields"}
	ErrUnknownOwner  = &domain.Error{Err: domain.ErrInvalidReference, Message: "user does not exist"}
)
