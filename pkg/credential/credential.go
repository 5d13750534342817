// Package credential hashes and verifies account passwords. It holds no
// state; cost is fixed module-wide so every stored hash is equally expensive
// to brute-force.
package credential

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"recruitment-portal-backend/pkg/apperror"
)

const saltRounds = 10

// Hash produces a salted bcrypt hash of the plaintext. Output differs across
// calls (random salt) but always verifies against the same plaintext.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), saltRounds)
	if err != nil {
		return "", apperror.Persistence(err)
	}
	return string(hash), nil
}

// Verify returns nil only when the plaintext matches the stored hash.
// A mismatch is a CredentialMismatch kind; a malformed hash is a Persistence
// kind. One convention, every call site.
func Verify(plaintext, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return apperror.CredentialMismatch("password is invalid")
	default:
		return apperror.Persistence(err)
	}
}
