package domain

import (
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidText rejects client text that is not valid UTF-8. Multipart
// fields arrive as raw bytes, so nothing upstream guarantees an encoding.
var ErrInvalidText = &Error{Err: ErrValidation, Message: "Text fields must be valid UTF-8"}

// UTF8 is an ozzo rule for string and *string fields. Nil and empty values pass.
var UTF8 = validation.By(func(value interface{}) error {
	v, _ := validation.Indirect(value)
	s, _ := v.(string)
	if !utf8.ValidString(s) {
		return validation.NewError("validation_utf8", "must be valid UTF-8")
	}
	return nil
})
