package service

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash creates a hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify checks if a plaintext password matches a hash.
	Verify(hashedPassword, password string) error
}
