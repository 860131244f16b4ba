// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account of the storefront.
// Password holds the bcrypt hash, never the plaintext; it must not leave the server.
type User struct {
	ID        uuid.UUID // The unique identifier for the user.
	Username  string    // Display name, unique across the system.
	Email     string    // Login identifier, unique across the system.
	Password  string    // Bcrypt hash of the user's password.
	IsAdmin   bool      // Grants access to catalog management and uploads.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicUser is the safe projection of a User for API responses.
// The password hash is deliberately absent.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	IsAdmin  bool      `json:"isAdmin"`
}

// Public returns the projection of the user that may be serialized to clients.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	}
}
