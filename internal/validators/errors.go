package validators

import (
	"errors"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrUnknownPlatform is the platform check failure. It matches
	// [models.ErrUnknownPlatform] as well.
	ErrUnknownPlatform = models.ErrUnknownPlatform

	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrUsernameTooShort = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrInvalidEncoding  = errors.New("must be valid UTF-8 text")
)
