// Package credentials hashes and verifies user credentials. The domain layer
// only ever sees the resulting opaque hash, never the plaintext.
package credentials

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher abstracts credential hashing so services can be tested without
// paying the bcrypt cost.
type Hasher interface {
	// Hash derives an opaque hash from the plaintext credential.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash.
	Verify(hash string, plaintext string) error
}

type bcryptHasher struct {
	cost int
}

// NewBcrypt returns a Hasher backed by bcrypt. A cost of 0 uses the bcrypt
// default.
func NewBcrypt(cost int) Hasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

func (b *bcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("could not hash credential: %w", err)
	}

	return string(hash), nil
}

func (b *bcryptHasher) Verify(hash string, plaintext string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)); err != nil {
		return fmt.Errorf("credential mismatch: %w", err)
	}

	return nil
}
