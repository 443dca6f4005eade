package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_codec_mock.go -package=mock

// CipherCodec encrypts and decrypts vault payloads under the key derived from
// a wallet address.
//
// Callers always pass the raw wallet address, never a key: every call
// normalizes the address and re-derives the key through [DeriveKey], so two
// processes that share nothing but the stored token agree on the key.
//
// The scheme keeps no secret besides the wallet address itself. There is no
// salt and no key stretching, which makes the encryption an obfuscation layer
// against casual inspection of local storage rather than a defense against a
// local attacker who knows (or guesses) the address.
type CipherCodec interface {
	// Encrypt seals plaintext and returns a self-contained base64 token that
	// carries the cipher identifier and the nonce.
	// Returns [ErrMissingInput] for empty plaintext or wallet address.
	Encrypt(plaintext, walletAddress string) (string, error)

	// Decrypt opens a token produced by Encrypt.
	// Returns [ErrMissingInput] for an empty token, [ErrInvalidKeyInput] for
	// an empty wallet address, and [ErrDecryptionFailed] when the token is
	// malformed, was sealed under another wallet, or opens to an empty or
	// non UTF-8 result.
	Decrypt(token, walletAddress string) (string, error)
}
