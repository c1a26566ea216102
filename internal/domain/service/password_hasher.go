// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted, one-way hash from a plaintext password.
	// It rejects empty passwords and passwords above the configured maximum
	// length, which bounds the CPU cost of a single hashing call.
	Hash(password string) (string, error)

	// Verify compares a plaintext password with a stored hash.
	// A mismatch is not an error: it returns (false, nil). A stored hash the
	// algorithm cannot parse returns (false, err) and signals data corruption
	// upstream. The comparison is resistant to timing attacks.
	Verify(password, storedHash string) (bool, error)
}
