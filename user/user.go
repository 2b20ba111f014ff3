// Package user holds the user model and the stores that keep it.
package user

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mtavares/gatekeeper/password"
)

type (
	// User is a single account record. PasswordHash is a salted bcrypt
	// hash; the plaintext is never stored.
	User struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		PasswordHash string `json:"password_hash"`
		FirstName    string `json:"first_name,omitempty"`
		LastName     string `json:"last_name,omitempty"`
	}
)

// New creates a user with a fresh id and the given plaintext hashed.
func New(email, plain, firstName, lastName string) (User, error) {
	hash, err := password.Hash(plain)
	if err != nil {
		return User{}, err
	}
	return User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
	}, nil
}

// DisplayName returns the full name when available, otherwise the email.
func (u User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

// ValidPassword reports whether plain matches the stored hash.
func (u User) ValidPassword(plain string) bool {
	return password.Verify(u.PasswordHash, plain)
}
