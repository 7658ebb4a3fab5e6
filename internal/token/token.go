// Package token signs and verifies the bearer tokens issued after
// authentication. Tokens are stateless; expiry requires re-authentication.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Type is the token type reported alongside issued tokens.
const Type = "bearer"

// ErrInvalid covers every verification failure: malformed token, wrong
// signature, wrong algorithm or expired claims.
var ErrInvalid = errors.New("invalid token")

// Claims carries the identity embedded in a token. The subject is the
// user's email.
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Codec signs and verifies tokens with a shared HS256 key.
type Codec struct {
	key []byte
	ttl time.Duration
}

// NewCodec creates a Codec with the given signing key and token lifetime.
func NewCodec(key string, ttl time.Duration) *Codec {
	return &Codec{key: []byte(key), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Sign issues a token for the given identity, expiring ttl from now.
func (c *Codec) Sign(name, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
}

// Verify checks the token's signature and expiry and returns the embedded
// claims. Any failure is reported as ErrInvalid.
func (c *Codec) Verify(raw string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return c.key, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalid
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalid
	}
	return claims, nil
}
