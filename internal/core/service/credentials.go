package service

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Credentials decides how passwords are stored and compared.
type Credentials interface {
	Seal(password string) (string, error)
	Matches(stored, password string) bool
}

// PlainCredentials stores and compares passwords verbatim.
type PlainCredentials struct{}

func (PlainCredentials) Seal(password string) (string, error) { return password, nil }

func (PlainCredentials) Matches(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// BcryptCredentials stores bcrypt hashes.
type BcryptCredentials struct {
	Cost int
}

func (b BcryptCredentials) Seal(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptCredentials) Matches(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
