package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/lanternworks/rolodex/internal/domain"
	"github.com/lanternworks/rolodex/internal/store"
	"github.com/lanternworks/rolodex/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	s, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestUser(email string) domain.User {
	now := time.Now().UTC().Truncate(time.Second)
	return domain.User{
		ID:           idx.New().String(),
		Email:        email,
		FullName:     "Test User",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUsers_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newTestUser("a@x.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	byEmail, err := s.Users().GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
	require.Equal(t, u.PasswordHash, byEmail.PasswordHash)

	byID, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)
}

func TestUsers_NotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Users().GetUserByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Users().CreateUser(ctx, newTestUser("dup@x.com")))

	err := s.Users().CreateUser(ctx, newTestUser("dup@x.com"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func newTestContact(ownerID, firstName string) domain.Contact {
	now := time.Now().UTC().Truncate(time.Second)
	return domain.Contact{
		ID:        idx.New().String(),
		OwnerID:   ownerID,
		FirstName: firstName,
		LastName:  "Doe",
		Email:     firstName + "@contacts.example",
		Phone:     "+61400000000",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestContacts_CRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	owner := newTestUser("owner@x.com")
	require.NoError(t, s.Users().CreateUser(ctx, owner))

	c := newTestContact(owner.ID, "jane")
	require.NoError(t, s.Contacts().CreateContact(ctx, c))

	got, err := s.Contacts().GetContact(ctx, owner.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, "jane", got.FirstName)

	got.Phone = "+61411111111"
	got.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	require.NoError(t, s.Contacts().UpdateContact(ctx, got))

	updated, err := s.Contacts().GetContact(ctx, owner.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, "+61411111111", updated.Phone)

	require.NoError(t, s.Contacts().DeleteContact(ctx, owner.ID, c.ID))
	_, err = s.Contacts().GetContact(ctx, owner.ID, c.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestContacts_OwnerScoping(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := newTestUser("alice@x.com")
	bob := newTestUser("bob@x.com")
	require.NoError(t, s.Users().CreateUser(ctx, alice))
	require.NoError(t, s.Users().CreateUser(ctx, bob))

	c := newTestContact(alice.ID, "secret")
	require.NoError(t, s.Contacts().CreateContact(ctx, c))

	// Bob cannot see, update or delete Alice's contact.
	_, err := s.Contacts().GetContact(ctx, bob.ID, c.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	stolen := c
	stolen.OwnerID = bob.ID
	require.ErrorIs(t, s.Contacts().UpdateContact(ctx, stolen), store.ErrNotFound)
	require.ErrorIs(t, s.Contacts().DeleteContact(ctx, bob.ID, c.ID), store.ErrNotFound)
}

func TestContacts_ListPagination(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	owner := newTestUser("pager@x.com")
	require.NoError(t, s.Users().CreateUser(ctx, owner))

	base := time.Now().UTC().Truncate(time.Second)
	for i := range 5 {
		c := newTestContact(owner.ID, "contact")
		c.CreatedAt = base.Add(time.Duration(i) * time.Second)
		c.UpdatedAt = c.CreatedAt
		require.NoError(t, s.Contacts().CreateContact(ctx, c))
	}

	page1, err := s.Contacts().ListContacts(ctx, owner.ID, 2, 0)
	require.NoError(t, err)
	require.Len(t, page1, 2)

	page2, err := s.Contacts().ListContacts(ctx, owner.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	require.NotEqual(t, page1[0].ID, page2[0].ID)

	// Newest first.
	require.True(t, !page1[0].CreatedAt.Before(page1[1].CreatedAt))

	rest, err := s.Contacts().ListContacts(ctx, owner.ID, 10, 4)
	require.NoError(t, err)
	require.Len(t, rest, 1)
}
