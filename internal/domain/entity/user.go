// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the directory. Username and Email are stored
// lower-cased so lookups are case-insensitive.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Username     string    // Unique handle, case-normalized on registration.
	Email        string    // Unique login email, case-normalized on registration.
	PasswordHash string    // bcrypt hash of the account password.
	Profile      Profile   // Public profile shown on the user's page.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Profile is the public-facing sub-record of a User.
type Profile struct {
	Name     string // Display name.
	Postcode string // Rough location, shown on the profile page.
	Bio      string // Free-text introduction.
	Phone    string // Contact phone number.
	ImageRef string // Opaque encoded image blob, empty when no image was uploaded.
}

// OwnedBy identifies the only actor allowed to mutate this account.
func (u *User) OwnedBy() uuid.UUID {
	return u.ID
}
