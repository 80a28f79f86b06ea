// Package password wraps bcrypt hashing and verification for stored
// credentials.
//
// Hash embeds a fresh salt on every call, so hashing the same plaintext twice
// yields different outputs. Verify is the only way to test a plaintext
// against a stored hash.
package password

import "golang.org/x/crypto/bcrypt"

// Hash returns the bcrypt hash of plaintext at the default cost.
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext matches hash. A malformed hash counts as
// a mismatch, never an error.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
