package document

import (
	"docstore/internal/domain"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxNameLength = 255
	MaxTypeLength = 255
)

// CreateRequest carries an upload after transport decoding.
// DeclaredSize is what the client claimed; the stored size is always len(Content).
type CreateRequest struct {
	Name         string
	Content      []byte
	Type         string
	UserID       int64
	FolderID     *int64
	DeclaredSize *int64
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Type, validation.Required, validation.Length(1, MaxTypeLength)),
		validation.Field(&r.UserID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.FolderID, validation.NilOrNotEmpty, validation.Min(int64(1))),
	)
}

// ValidateText checks the encoding of the free-text form fields.
func (r CreateRequest) ValidateText() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, domain.UTF8),
		validation.Field(&r.Type, domain.UTF8),
	)
}
