package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

const (
	FieldPlatform = "platform"
	FieldUsername = "username"
	FieldPassword = "password"
)

// Minimum lengths enforced by the entry form.
const (
	MinUsernameLength = 3
	MinPasswordLength = 6
)

var allFields = []string{FieldPlatform, FieldUsername, FieldPassword}

// CredentialValidator checks a [models.Credential] before it enters a vault.
// The strict variant adds the minimum lengths of the entry form on top of
// the structural rules.
type CredentialValidator struct {
	strict bool
}

// NewCredentialValidator returns the structural validator used by the vault
// itself: a known platform and a non-blank username and password, both
// valid UTF-8 text.
func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// NewFormValidator returns the validator of the interactive entry form:
// everything [NewCredentialValidator] checks, plus at least
// [MinUsernameLength] characters of username and [MinPasswordLength] of
// password.
func NewFormValidator() Validator {
	return &CredentialValidator{strict: true}
}

func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredential(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateCredential(_ context.Context, c models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = allFields
	}

	for _, f := range fields {
		switch f {
		case FieldPlatform:
			if !c.Platform.Valid() {
				return fmt.Errorf("%w: %q", ErrUnknownPlatform, string(c.Platform))
			}
		case FieldUsername:
			if strings.TrimSpace(c.Username) == "" {
				return ErrEmptyUsername
			}
			if !utf8.ValidString(c.Username) {
				return fmt.Errorf("%s %w", FieldUsername, ErrInvalidEncoding)
			}
			if v.strict && utf8.RuneCountInString(c.Username) < MinUsernameLength {
				return ErrUsernameTooShort
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
			if !utf8.ValidString(c.Password) {
				return fmt.Errorf("%s %w", FieldPassword, ErrInvalidEncoding)
			}
			if v.strict && utf8.RuneCountInString(c.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
