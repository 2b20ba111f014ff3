// Package password hashes and verifies user passwords.
//
// It is a thin wrapper around bcrypt, which generates a fresh random
// salt on every call and embeds it in the resulting hash. Two calls
// with the same plaintext never produce the same output, and both
// outputs verify against the original plaintext.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash derives a salted one-way hash from plain.
func Hash(plain string) (string, error) {
	buf, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("password: unable to hash, cause %w", err)
	}
	return string(buf), nil
}

// Verify reports whether plain matches the given hash.
//
// Any failure, including a malformed hash, counts as a mismatch.
func Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
