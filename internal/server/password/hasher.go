// Package password hashes and verifies account passwords. Both
// implementations are salted and have a tunable work factor.
package password

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/coursehub/internal/server/config"
)

// ErrMalformedHash is returned by Verify when the stored hash cannot be decoded.
var ErrMalformedHash = errors.New("malformed password hash")

// Hasher defines the interface for password hashing algorithms.
type Hasher interface {
	// Hash creates a hash from a password.
	Hash(password string) (string, error)

	// Verify checks if a password matches a hash. A mismatch is (false, nil).
	Verify(password, hash string) (bool, error)
}

// FromConfig builds the hasher named by cfg.PasswordHasher.
func FromConfig(cfg *config.Config) (Hasher, error) {
	switch cfg.PasswordHasher {
	case config.HasherBcrypt:
		return NewBcryptHasher(cfg.BcryptCost), nil
	case config.HasherArgon2:
		return NewArgon2Hasher(DefaultArgon2Params()), nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", cfg.PasswordHasher)
	}
}
