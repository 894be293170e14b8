// Package service declares the stateless collaborators the use cases depend on:
// password hashing, session tokens, photo storage and badge encoding.
package service

// PasswordHasher turns plaintext passwords into salted one-way hashes.
type PasswordHasher interface {
	// Hash returns a salted hash; hashing the same password twice yields different output.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
