package store

import (
	"context"
	"errors"

	"github.com/lanternworks/rolodex/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Contacts() Contacts

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is the lookup used by login and by the current-user
	// resolver (the token subject is the email).
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is taken; the users table
	// carries a UNIQUE constraint on email, which is what closes the
	// concurrent check-then-insert race during registration.
	CreateUser(ctx context.Context, u domain.User) error
}

type Contacts interface {
	// GetContact returns a contact by id, scoped to its owner.
	GetContact(ctx context.Context, ownerID, id string) (domain.Contact, error)

	// ListContacts returns the owner's contacts ordered by creation date,
	// newest first, with limit/offset pagination.
	ListContacts(ctx context.Context, ownerID string, limit, offset int) ([]domain.Contact, error)

	// CreateContact inserts a new contact (id is ULID).
	CreateContact(ctx context.Context, c domain.Contact) error

	// UpdateContact rewrites the mutable fields and bumps updated_at.
	// Returns ErrNotFound when the contact does not exist for the owner.
	UpdateContact(ctx context.Context, c domain.Contact) error

	// DeleteContact removes a contact. Returns ErrNotFound when absent.
	DeleteContact(ctx context.Context, ownerID, id string) error
}
