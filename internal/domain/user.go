package domain

import "time"

// User is an identity record. Email doubles as the login key and must be
// unique across all users. PasswordHash is argon2id encoded; the raw password
// never leaves the registration/login handlers.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
