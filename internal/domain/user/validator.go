package user

import (
	"errors"
	"fmt"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	MaxUsernameLen = 80
	MaxEmailLen    = 120
	// MinPasswordLen applies to the strict policy only.
	MinPasswordLen = 8
	// bcrypt ignores anything past 72 bytes and GenerateFromPassword rejects it.
	MaxPasswordLen = 72
)

// Validator checks user payloads before anything is hashed or stored.
type Validator interface {
	ValidateCreate(req CreateRequest) error
	ValidateUpdate(req UpdateRequest) error
	ValidatePassword(password string) error
}

type PasswordValidator struct {
	minLength          int
	requireSpecialChar bool
	requireDigit       bool
	requireUpper       bool
	requireLower       bool
}

// NewPasswordValidator accepts any non-empty password bcrypt can hash.
func NewPasswordValidator() *PasswordValidator {
	return &PasswordValidator{}
}

// NewStrictPasswordValidator additionally requires MinPasswordLen and every
// character class.
func NewStrictPasswordValidator() *PasswordValidator {
	return &PasswordValidator{
		minLength:          MinPasswordLen,
		requireSpecialChar: true,
		requireDigit:       true,
		requireUpper:       true,
		requireLower:       true,
	}
}

func (v *PasswordValidator) ValidateCreate(req CreateRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Username, usernameRules()...),
		validation.Field(&req.Email, emailRules()...),
		validation.Field(&req.Password, validation.Required),
	)
	if err != nil {
		return err
	}

	if err := v.ValidatePassword(req.Password); err != nil {
		return fmt.Errorf("password validation failed: %w", err)
	}
	return nil
}

func (v *PasswordValidator) ValidateUpdate(req UpdateRequest) error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Username, usernameRules()...),
		validation.Field(&req.Email, emailRules()...),
	)
}

func (v *PasswordValidator) ValidatePassword(password string) error {
	if password == "" {
		return errors.New("password cannot be blank")
	}
	if len(password) < v.minLength {
		return fmt.Errorf("password must be at least %d characters", v.minLength)
	}
	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must be at most %d bytes", MaxPasswordLen)
	}

	hasLower := false
	hasUpper := false
	hasDigit := false
	hasSpecial := false

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if v.requireLower && !hasLower {
		return errors.New("password must contain at least one lowercase letter")
	}
	if v.requireUpper && !hasUpper {
		return errors.New("password must contain at least one uppercase letter")
	}
	if v.requireDigit && !hasDigit {
		return errors.New("password must contain at least one digit")
	}
	if v.requireSpecialChar && !hasSpecial {
		return errors.New("password must contain at least one special character")
	}

	return nil
}

func usernameRules() []validation.Rule {
	return []validation.Rule{validation.Required, validation.Length(1, MaxUsernameLen)}
}

func emailRules() []validation.Rule {
	return []validation.Rule{validation.Required, validation.Length(3, MaxEmailLen), is.EmailFormat}
}
