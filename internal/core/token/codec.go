// Package token issues and verifies the signed bearer tokens that carry a
// session between requests. Tokens are HMAC-SHA256 JWTs signed with a single
// shared secret; the token itself is the only session state the system keeps.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/footleague/football-api/internal/core/domain"
)

var (
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrExpired          = errors.New("token expired")
	ErrMalformed        = errors.New("token malformed")
)

const defaultTTL = 2 * time.Hour

// Claims is the verified content of a decoded token.
type Claims struct {
	Subject string
	Role    domain.Role
}

// Config carries the signing secret and token lifetime. Both are injected at
// construction; the codec never reads ambient state.
type Config struct {
	Secret []byte
	TTL    time.Duration
}

// Codec signs and verifies session tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(cfg Config) *Codec {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: cfg.Secret, ttl: ttl, now: time.Now}
}

// Issue returns a signed token for subject carrying the given role, expiring
// after the configured TTL.
func (c *Codec) Issue(subject string, role domain.Role) (string, error) {
	now := c.now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(c.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode verifies raw and returns its claims. The signature is checked before
// expiry, and expiry before any claim is inspected; an unauthenticated token
// never gets its payload parsed into a result.
func (c *Codec) Decode(raw string) (Claims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return c.now() }), jwt.WithExpirationRequired())
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Claims{}, ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, ErrExpired
	default:
		return Claims{}, ErrMalformed
	}

	sub, _ := claims["sub"].(string)
	roleStr, _ := claims["role"].(string)
	role, roleErr := domain.ParseRole(roleStr)
	if sub == "" || roleErr != nil {
		return Claims{}, ErrMalformed
	}
	return Claims{Subject: sub, Role: role}, nil
}
