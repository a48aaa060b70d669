package folder

import (
	"strings"

	"docstore/internal/domain"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const MaxNameLength = 255

type CreateRequest struct {
	Name        string
	Description *string
	UserID      int64
}

// ValidateText checks the encoding of the free-text form fields.
func (r CreateRequest) ValidateText() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, domain.UTF8),
		validation.Field(&r.Description, domain.UTF8),
	)
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.By(notBlank), validation.Length(1, MaxNameLength)),
		validation.Field(&r.UserID, validation.Required, validation.Min(int64(1))),
	)
}

type RenameRequest struct {
	Name string `json:"name" doc:"New folder name"`
}

func (r RenameRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.By(notBlank), validation.Length(1, MaxNameLength)),
	)
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "cannot be blank")
	}
	return nil
}
