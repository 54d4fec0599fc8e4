package domain

import "time"

// Contact is an address-book entry owned by exactly one user. All reads and
// writes are scoped by OwnerID.
type Contact struct {
	ID        string
	OwnerID   string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
