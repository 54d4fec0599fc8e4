package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AlgHS256 is the only signing scheme the codec supports. The algorithm
// identifier travels through configuration so a typo fails loudly at startup
// instead of silently minting unverifiable tokens.
const AlgHS256 = "HS256"

var (
	ErrUnsupportedAlg = errors.New("jwtx: unsupported signing algorithm")
	ErrEmptySecret    = errors.New("jwtx: empty signing secret")

	// Decode failures. Callers typically collapse these into one outward
	// "unauthorized" error, but they stay distinguishable here.
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrExpired    = errors.New("jwtx: token expired")
	ErrIssuer     = errors.New("jwtx: issuer mismatch")
)

// Verifier validates a token string and gives back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Codec encodes and decodes signed, expiring access tokens. The same secret
// and algorithm must be used for both directions within a process; rotating
// the secret invalidates every previously issued token.
type Codec struct {
	secret []byte
	issuer string
	ttl    time.Duration
	parser *jwt.Parser
}

// NewCodec builds a Codec from the process settings. Only HS256 is accepted.
func NewCodec(secret []byte, alg string, ttl time.Duration, issuer string) (*Codec, error) {
	if alg != AlgHS256 {
		return nil, ErrUnsupportedAlg
	}
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}

	return &Codec{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}

// TTL reports the configured token lifetime.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Encode mints a signed token for the subject, expiring after the configured
// lifetime.
func (c *Codec) Encode(subject string) (string, error) {
	return c.EncodeAt(subject, time.Now().UTC())
}

// EncodeAt mints a token issued at the given instant. Exposed so callers and
// tests can pin the issue time.
func (c *Codec) EncodeAt(subject string, now time.Time) (string, error) {
	claims := NewAccessClaims(subject, c.issuer, c.ttl, now)
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies the signature and expiry of a token string and returns its
// claims. Failures map to ErrMalformed, ErrInvalidSig, ErrExpired or
// ErrIssuer; all tokens are terminal once issued, there is nothing to retry.
func (c *Codec) Decode(tokenStr string) (Claims, error) {
	token, err := c.parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		default:
			return Claims{}, ErrMalformed
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrMalformed
	}

	if c.issuer != "" && claims.Issuer != c.issuer {
		return Claims{}, ErrIssuer
	}

	return *claims, nil
}

// Verify implements Verifier.
func (c *Codec) Verify(tokenStr string) (Claims, error) {
	return c.Decode(tokenStr)
}
