package encrypter

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Encrypter hashes and verifies user passwords.
type Encrypter interface {
	HashPassword(plain string) (string, error)
	ComparePassword(hash, plain string) error
}

var ErrMismatch = errors.New("password does not match")

type bcryptEncrypter struct {
	cost int
}

// New creates a bcrypt-backed Encrypter. A non-positive cost falls back
// to the bcrypt default.
func New(cost int) Encrypter {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &bcryptEncrypter{cost: cost}
}

func (e *bcryptEncrypter) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), e.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (e *bcryptEncrypter) ComparePassword(hash, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return ErrMismatch
	}
	return nil
}
