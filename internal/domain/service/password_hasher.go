package service

// PasswordHasher defines the interface for hashing and verifying secrets.
// Both owner passwords and client PINs pass through the same hasher.
type PasswordHasher interface {
	// Hash generates a hash from a plaintext secret.
	Hash(plain string) (string, error)

	// Verify compares a plaintext secret with a hash.
	// Returns nil on match, an error otherwise.
	Verify(plain string, hash string) error
}
