// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrBadSignature = errors.New("token signature does not match")
	ErrMalformed    = errors.New("token is malformed")
	ErrExpired      = errors.New("token has expired")
	ErrUnsupported  = errors.New("token uses an unsupported signing scheme")
)

// Codec issues and verifies signed bearer tokens. Tokens are self-contained:
// validity is fully determined by the HMAC signature and the embedded expiry,
// so any instance holding the shared secret can verify any token.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret []byte, ttl time.Duration) (*Codec, error) {
	if len(secret) == 0 {
		return nil, errors.New("signing secret required")
	}
	if ttl <= 0 {
		return nil, errors.New("token TTL must be positive")
	}
	return &Codec{secret: secret, ttl: ttl}, nil
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue creates a compact signed token whose subject is subjectID, issued at
// now and expiring at now plus the configured TTL.
func (c *Codec) Issue(subjectID string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.secret)
}

// Verify validates raw against the shared secret as of now and returns the
// embedded subject id. Failures are one of ErrBadSignature, ErrMalformed,
// ErrExpired, or ErrUnsupported. Expiry is inclusive: a token verified at
// exactly its expiration instant is already expired.
func (c *Codec) Verify(raw string, now time.Time) (string, error) {
	parser := jwt.NewParser(
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)

	claims := &jwt.RegisteredClaims{}
	_, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok || t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, ErrUnsupported
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupported):
			return "", ErrUnsupported
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrBadSignature
		default:
			return "", ErrMalformed
		}
	}

	// exp is inclusive: verifying at exactly the expiration instant fails.
	if claims.ExpiresAt != nil && !now.Before(claims.ExpiresAt.Time) {
		return "", ErrExpired
	}
	if claims.Subject == "" {
		return "", ErrMalformed
	}
	return claims.Subject, nil
}
