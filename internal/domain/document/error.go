package document

import "docstore/internal/domain"

var (
	ErrNotFound       = &domain.Error{Err: domain.ErrNotFound, Message: "document not found"}
	ErrNoFile         = &domain.Error{Err: domain.ErrValidation, Message: "No file provided"}
	ErrMissingFields  = &domain.Error{Err: domain.ErrValidation, Message: "Missing required fields"}
	ErrInvalidInteger = &domain.Error{Err: domain.ErrValidation, Message: "Invalid integer field"}
	ErrUnknownOwner   = &domain.Error{Err: domain.ErrInvalidReference, Message: "user or folder does not exist"}
)
