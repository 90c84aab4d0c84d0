package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes the shared admin password using bcrypt. The hash is
// computed once at startup so login attempts never compare plaintext.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a login attempt with the stored bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
