package client

import (
	"errors"

	"github.com/MKhiriev/go-wallet-keeper/internal/app"
	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

type errorMessage struct {
	target  error
	kind    app.OutcomeKind
	message string
}

// errorMessages is checked in order; the first match wins.
var errorMessages = []errorMessage{
	{service.ErrAlreadyExists, app.OutcomeWarning, app.MsgCredentialAlreadyExists},
	{service.ErrVaultUnreadable, app.OutcomeError, app.MsgVaultUnreadable},
	{service.ErrConnectCancelled, app.OutcomeWarning, app.MsgConnectCancelled},
	{crypto.ErrInvalidKeyInput, app.OutcomeError, app.MsgInvalidWallet},
	{crypto.ErrDecryptionFailed, app.OutcomeError, app.MsgDecryptionError},
	{models.ErrUnknownPlatform, app.OutcomeError, app.MsgUnknownPlatform},
	{errUnknownSite, app.OutcomeWarning, app.MsgUnknownSite},
	{validators.ErrEmptyUsername, app.OutcomeError, app.MsgInvalidDataProvided},
	{validators.ErrEmptyPassword, app.OutcomeError, app.MsgInvalidDataProvided},
	{validators.ErrUsernameTooShort, app.OutcomeError, app.MsgInvalidDataProvided},
	{validators.ErrPasswordTooShort, app.OutcomeError, app.MsgInvalidDataProvided},
	{validators.ErrInvalidEncoding, app.OutcomeError, app.MsgInvalidDataProvided},
}

// outcomeFromError turns a command error into the outcome shown to the
// user. notFound is the message for [service.ErrNotFound], which means a
// different thing per command.
func outcomeFromError(err error, notFound string) app.Outcome {
	if errors.Is(err, service.ErrNotFound) {
		return app.Outcome{Kind: app.OutcomeWarning, Message: notFound}
	}
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return app.Outcome{Kind: m.kind, Message: m.message, Detail: err.Error()}
		}
	}
	return app.Failure(app.MsgInternalError, err.Error())
}
