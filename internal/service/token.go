package service

import (
	"context"
	"errors"
	"time"

	"github.com/lanternworks/rolodex/internal/store"
	"github.com/lanternworks/rolodex/pkg/cryptox"
	"github.com/lanternworks/rolodex/pkg/jwtx"
	"github.com/lanternworks/rolodex/pkg/slogx"
)

// ErrInvalidCredentials covers both "no such user" and "wrong password" so a
// login response never reveals whether an account exists.
var ErrInvalidCredentials = errors.New("invalid email or password")

// dummyHash is a well-formed argon2id hash verified on the unknown-email
// path so both login failures cost the same. It matches the live hashing
// parameters; no password hashes to it.
const dummyHash = "$argon2id$v=19$m=19456,t=2,p=1$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

type TokenService struct {
	Store  store.Store
	Hasher *cryptox.Hasher
	Codec  *jwtx.Codec
}

// Login verifies email+password and mints an access token with the email as
// subject. Both failure modes collapse to ErrInvalidCredentials.
func (s *TokenService) Login(ctx context.Context, email, password string) (string, time.Duration, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn the same hashing work as the wrong-password path.
			_ = s.Hasher.Verify(password, dummyHash)
			return "", 0, ErrInvalidCredentials
		}
		return "", 0, err
	}

	if err := s.Hasher.Verify(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return "", 0, ErrInvalidCredentials
		}
		// A stored hash we cannot parse is a data problem worth logging,
		// but to the caller it is still just a failed login.
		l.Error("stored password hash is malformed", "user_id", u.ID, "err", err)
		return "", 0, ErrInvalidCredentials
	}

	token, err := s.Codec.Encode(u.Email)
	if err != nil {
		l.Error("failed to mint access token", "user_id", u.ID, "err", err)
		return "", 0, err
	}

	return token, s.Codec.TTL(), nil
}
