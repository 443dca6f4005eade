// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

func validCredential() models.Credential {
	return models.Credential{
		Platform: models.PlatformInstagram,
		Username: "alice",
		Password: "hunter22",
	}
}

func TestNewValidators(t *testing.T) {
	require.NotNil(t, NewCredentialValidator())
	require.NotNil(t, NewFormValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	ctx := context.Background()
	v := NewCredentialValidator()

	c := validCredential()
	assert.NoError(t, v.Validate(ctx, c))
	assert.NoError(t, v.Validate(ctx, &c))

	var nilCred *models.Credential
	assert.ErrorIs(t, v.Validate(ctx, nilCred), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, "instagram"), ErrUnsupportedType)
}

func TestCredentialValidator(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *models.Credential)
		fields []string
		want   error
	}{
		{name: "valid", mutate: func(c *models.Credential) {}},
		{name: "short values are fine for the vault", mutate: func(c *models.Credential) { c.Username = "al"; c.Password = "x" }},
		{name: "unknown platform", mutate: func(c *models.Credential) { c.Platform = "myspace" }, want: ErrUnknownPlatform},
		{name: "empty platform", mutate: func(c *models.Credential) { c.Platform = "" }, want: models.ErrUnknownPlatform},
		{name: "blank username", mutate: func(c *models.Credential) { c.Username = "   " }, want: ErrEmptyUsername},
		{name: "empty password", mutate: func(c *models.Credential) { c.Password = "" }, want: ErrEmptyPassword},
		{name: "username not utf-8", mutate: func(c *models.Credential) { c.Username = "bob\xfe" }, want: ErrInvalidEncoding},
		{name: "password not utf-8", mutate: func(c *models.Credential) { c.Password = "pass\xffword" }, want: ErrInvalidEncoding},
		{
			name:   "only requested fields are checked",
			mutate: func(c *models.Credential) { c.Password = "" },
			fields: []string{FieldPlatform, FieldUsername},
		},
		{name: "unknown field", mutate: func(c *models.Credential) {}, fields: []string{"email"}, want: ErrUnknownField},
	}

	v := NewCredentialValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCredential()
			tt.mutate(&c)

			err := v.Validate(context.Background(), c, tt.fields...)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFormValidator(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *models.Credential)
		want   error
	}{
		{name: "valid", mutate: func(c *models.Credential) {}},
		{name: "exact minimums", mutate: func(c *models.Credential) { c.Username = "bob"; c.Password = "123456" }},
		{name: "short username", mutate: func(c *models.Credential) { c.Username = "al" }, want: ErrUsernameTooShort},
		{name: "short password", mutate: func(c *models.Credential) { c.Password = "12345" }, want: ErrPasswordTooShort},
		{name: "multibyte counts runes", mutate: func(c *models.Credential) { c.Username = "юля" }},
		{name: "structural rules still apply", mutate: func(c *models.Credential) { c.Platform = "icq" }, want: ErrUnknownPlatform},
	}

	v := NewFormValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCredential()
			tt.mutate(&c)

			err := v.Validate(context.Background(), c)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
