// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credential is a single platform login as entered by the user.
//
// Inside a stored vault blob Password holds the field-level cipher token,
// not the plaintext; see [RevealedEntry] for the decrypted view.
type Credential struct {
	// Platform is the service these credentials unlock.
	Platform Platform `json:"platform"`

	// Username is kept in plaintext inside the (encrypted) vault blob.
	Username string `json:"username"`

	// Password is sensitive.
	Password string `json:"password"`
}

// CredentialEntry is a [Credential] together with its identifier inside a
// wallet's vault. The embedded credential is flattened on the wire, so the
// serialized form is {"id", "platform", "username", "password"}.
type CredentialEntry struct {
	// ID is unique within one wallet's entry list.
	ID string `json:"id"`

	Credential
}

// VaultRecord is the ordered entry list of one wallet. It is the unit that
// gets serialized and encrypted as a single blob.
type VaultRecord []CredentialEntry

// Find returns the entry registered for platform, if any.
func (r VaultRecord) Find(platform Platform) (CredentialEntry, bool) {
	for _, e := range r {
		if e.Platform == platform {
			return e, true
		}
	}
	return CredentialEntry{}, false
}

// Has reports whether r already holds an entry for platform.
func (r VaultRecord) Has(platform Platform) bool {
	_, ok := r.Find(platform)
	return ok
}

// Platforms lists the platforms present in r, in entry order.
func (r VaultRecord) Platforms() []Platform {
	out := make([]Platform, 0, len(r))
	for _, e := range r {
		out = append(out, e.Platform)
	}
	return out
}
