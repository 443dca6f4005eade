// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Platform
		wantErr bool
	}{
		{name: "lower case", input: "instagram", want: PlatformInstagram},
		{name: "mixed case and spaces", input: "  Discord ", want: PlatformDiscord},
		{name: "linkedin", input: "LINKEDIN", want: PlatformLinkedIn},
		{name: "unknown", input: "myspace", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePlatform(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownPlatform)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlatforms_ReturnsCopy(t *testing.T) {
	ps := Platforms()
	require.Len(t, ps, 3)
	ps[0] = "changed"
	assert.Equal(t, PlatformInstagram, Platforms()[0])
}

func TestPlatform_DisplayName(t *testing.T) {
	assert.Equal(t, "LinkedIn", PlatformLinkedIn.DisplayName())
	assert.Equal(t, "Instagram", PlatformInstagram.DisplayName())
	assert.Equal(t, "other", Platform("other").DisplayName())
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url    string
		want   Platform
		wantOK bool
	}{
		{url: "https://www.instagram.com/accounts/login/", want: PlatformInstagram, wantOK: true},
		{url: "https://discord.com/login", want: PlatformDiscord, wantOK: true},
		{url: "https://m.LinkedIn.com/", want: PlatformLinkedIn, wantOK: true},
		{url: "https://notinstagram.com/", wantOK: false},
		{url: "https://example.com/?next=instagram.com", wantOK: false},
		{url: "not a url", wantOK: false},
		{url: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, ok := DetectPlatform(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCredentialEntry_JSONIsFlat(t *testing.T) {
	entry := CredentialEntry{
		ID:         "discord_1",
		Credential: Credential{Platform: PlatformDiscord, Username: "bob", Password: "sealed"},
	}

	raw, err := json.Marshal(entry)
	require.NoError(t, err)

	var flat map[string]string
	require.NoError(t, json.Unmarshal(raw, &flat))
	assert.Equal(t, map[string]string{
		"id":       "discord_1",
		"platform": "discord",
		"username": "bob",
		"password": "sealed",
	}, flat)
}

func TestVaultRecord_FindAndHas(t *testing.T) {
	rec := VaultRecord{
		{ID: "a", Credential: Credential{Platform: PlatformInstagram, Username: "alice"}},
		{ID: "b", Credential: Credential{Platform: PlatformDiscord, Username: "bob"}},
	}

	e, ok := rec.Find(PlatformDiscord)
	require.True(t, ok)
	assert.Equal(t, "bob", e.Username)

	assert.True(t, rec.Has(PlatformInstagram))
	assert.False(t, rec.Has(PlatformLinkedIn))
	assert.Equal(t, []Platform{PlatformInstagram, PlatformDiscord}, rec.Platforms())
}

func TestVaultListing_DecryptionError(t *testing.T) {
	assert.False(t, VaultListing{Status: VaultAbsent}.DecryptionError())
	assert.False(t, VaultListing{Status: VaultLoaded}.DecryptionError())
	assert.True(t, VaultListing{Status: VaultUnreadable}.DecryptionError())
	assert.Equal(t, "unreadable", VaultUnreadable.String())
}

func TestNormalizeWallet(t *testing.T) {
	assert.Equal(t, "0xabc123", NormalizeWallet("  0xABC123\n"))
	assert.Equal(t, "", NormalizeWallet("   "))
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "0x1234...cdef", ShortAddress("0x1234567890abcdef"))
	assert.Equal(t, "0x12", ShortAddress("0x12"))
}

func TestAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")
	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build version: 1.0.0\n")

	var zero AppBuildInfo
	assert.Equal(t, "N/A", zero.BuildVersion())
}
