package service

import (
	"context"
	"errors"
	"time"

	"github.com/lanternworks/rolodex/internal/domain"
	"github.com/lanternworks/rolodex/internal/store"
	"github.com/lanternworks/rolodex/pkg/cryptox"
	"github.com/lanternworks/rolodex/pkg/idx"
	"github.com/lanternworks/rolodex/pkg/slogx"
)

var (
	// ErrEmailTaken is returned by Register when the email is already
	// registered, whether caught by the lookup or by the storage-level
	// uniqueness constraint.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUnknownSubject is returned by ResolveSubject when a verified token
	// names a user that no longer exists. Callers must treat it as a denial,
	// never as retryable.
	ErrUnknownSubject = errors.New("token subject does not resolve to a user")
)

type UserService struct {
	Store  store.Store
	Hasher *cryptox.Hasher
}

// Register creates a new user with a hashed password. The pre-insert lookup
// gives the common duplicate a clean early answer; the UNIQUE constraint on
// email catches the race where two registrations interleave.
func (s *UserService) Register(ctx context.Context, email, password, fullName string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return domain.User{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		l.Error("failed to create user", "err", err)
		return domain.User{}, err
	}

	return u, nil
}

// ResolveSubject maps a verified token subject to its user record. This is
// the second half of the current-user resolution: the token codec already
// vouched for the subject, this vouches that the user still exists.
func (s *UserService) ResolveSubject(ctx context.Context, subject string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUnknownSubject
		}
		return domain.User{}, err
	}
	return u, nil
}
