package service

// FieldCodec encrypts sensitive fields at rest.
type FieldCodec interface {
	// Encrypt seals the plaintext with a fresh nonce.
	Encrypt(plaintext string) (string, error)

	// Decrypt opens a value produced by Encrypt. Tampered or foreign input is an error.
	Decrypt(ciphertext string) (string, error)

	// Fingerprint returns a keyed, deterministic digest used to detect duplicates without decrypting.
	Fingerprint(plaintext string) string
}
