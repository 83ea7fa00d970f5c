// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"

	"recipebox/internal/domain/service"
)

// User is an account that owns recipes. The password is held only as an
// opaque Credential; the plaintext never survives past SetPassword and the
// hash is never exposed through the entity's surface.
type User struct {
	ID         uuid.UUID // The unique identifier for the user.
	Username   string    // Unique login name, required.
	Credential Credential
	Bio        string // Optional free-text biography.
	ImageURL   string // Optional avatar URL.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SetPassword hashes the plaintext password into the user's credential.
func (u *User) SetPassword(plaintext string, hasher service.PasswordHasher) error {
	return u.Credential.Set(plaintext, hasher)
}

// Authenticate reports whether the candidate password matches the user's
// stored credential.
func (u *User) Authenticate(candidate string, hasher service.PasswordHasher) bool {
	return u.Credential.Verify(candidate, hasher)
}
