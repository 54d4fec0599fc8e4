package service

import (
	"context"
	"time"

	"github.com/lanternworks/rolodex/internal/domain"
	"github.com/lanternworks/rolodex/internal/store"
	"github.com/lanternworks/rolodex/pkg/idx"
)

const (
	defaultContactPageSize = 100
	maxContactPageSize     = 500
)

// ContactInput holds the caller-editable fields of a contact.
type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type ContactService struct {
	Store store.Store
}

func (s *ContactService) Create(ctx context.Context, ownerID string, in ContactInput) (domain.Contact, error) {
	now := time.Now().UTC()
	c := domain.Contact{
		ID:        idx.New().String(),
		OwnerID:   ownerID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Contacts().CreateContact(ctx, c); err != nil {
		return domain.Contact{}, err
	}
	return c, nil
}

func (s *ContactService) Get(ctx context.Context, ownerID, id string) (domain.Contact, error) {
	return s.Store.Contacts().GetContact(ctx, ownerID, id)
}

func (s *ContactService) List(ctx context.Context, ownerID string, limit, offset int) ([]domain.Contact, error) {
	if limit <= 0 {
		limit = defaultContactPageSize
	}
	limit = min(limit, maxContactPageSize)
	offset = max(offset, 0)

	return s.Store.Contacts().ListContacts(ctx, ownerID, limit, offset)
}

func (s *ContactService) Update(ctx context.Context, ownerID, id string, in ContactInput) (domain.Contact, error) {
	c := domain.Contact{
		ID:        id,
		OwnerID:   ownerID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.Store.Contacts().UpdateContact(ctx, c); err != nil {
		return domain.Contact{}, err
	}

	// Reload so the response carries the original created_at.
	return s.Store.Contacts().GetContact(ctx, ownerID, id)
}

func (s *ContactService) Delete(ctx context.Context, ownerID, id string) error {
	return s.Store.Contacts().DeleteContact(ctx, ownerID, id)
}
