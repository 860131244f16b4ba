// Package service defines interfaces for domain services that require
// infrastructure support, such as hashing and token signing.
package service

// PasswordHasher abstracts one-way password hashing.
type PasswordHasher interface {
	// Hash generates a salted, irreversible hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool
}
