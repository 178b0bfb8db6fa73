package auth

import "github.com/google/uuid"

// Session is a user session identified by UserID.
//
// UserID 0 is the admin user; everything else is a regular user. Token is
// an opaque correlation token minted at session creation.
type Session struct {
	UserID uint32
	Token  string
}

// NewSession creates a session for the given user with a fresh token.
//
// Tokens are UUIDv7, so they sort by creation time.
// Uses github.com/google/uuid package for RFC 4122 compliant UUIDs.
func NewSession(userID uint32) Session {
	return Session{
		UserID: userID,
		Token:  uuid.Must(uuid.NewV7()).String(),
	}
}
