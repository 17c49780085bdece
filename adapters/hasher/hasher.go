// Package hasher hashes guest passwords for comments and guestbook entries.
package hasher

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/ports"
)

// ErrEmptyPassword is returned when asked to hash "".
var ErrEmptyPassword = errors.New("hasher: empty password")

// Bcrypt hashes with bcrypt at a fixed cost.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a bcrypt hasher. An out-of-range cost selects
// bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash returns the bcrypt hash of plaintext.
func (h *Bcrypt) Hash(plaintext string) ([]byte, error) {
	if plaintext == "" {
		return nil, ErrEmptyPassword
	}
	return bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
}

// Compare reports whether plaintext matches hash.
func (h *Bcrypt) Compare(hash []byte, plaintext string) bool {
	if len(hash) == 0 || plaintext == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(plaintext)) == nil
}

var _ ports.Hasher = (*Bcrypt)(nil)

// Plain stores passwords as given. Tests only.
type Plain struct{}

// Hash returns plaintext unchanged.
func (Plain) Hash(plaintext string) ([]byte, error) {
	if plaintext == "" {
		return nil, ErrEmptyPassword
	}
	return []byte(plaintext), nil
}

// Compare checks equality in constant time.
func (Plain) Compare(hash []byte, plaintext string) bool {
	return plaintext != "" && subtle.ConstantTimeCompare(hash, []byte(plaintext)) == 1
}

var _ ports.Hasher = Plain{}
