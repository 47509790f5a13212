// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/berkayk/pollhub/models"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("insufficient role")
)

// HashPassword produces a one-way bcrypt hash of the plaintext password.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
func CheckPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// Authorize decides whether identity may perform an operation requiring
// requiredRole. A nil identity fails with ErrUnauthenticated; an identity
// lacking the role fails with ErrForbidden.
func Authorize(identity *models.Identity, requiredRole string) error {
	if identity == nil {
		return ErrUnauthenticated
	}
	if !identity.HasRole(requiredRole) {
		return ErrForbidden
	}
	return nil
}
