package service

import (
	"luxe/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims carries the identity embedded in a signed token. The server treats
// decoded claims as the authoritative identity for the request; storage is
// only consulted again by the /auth/me endpoint.
type Claims struct {
	UserID   uuid.UUID
	Username string
	Email    string
	IsAdmin  bool
}

// TokenService abstracts signing and verification of bearer tokens.
type TokenService interface {
	// GenerateToken signs a token carrying the user's identity claims.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken verifies a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
