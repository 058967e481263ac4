package entities

import "time"

type UserRole string

const (
	UserRoleConstructora UserRole = "constructora"
	UserRoleResidente    UserRole = "residente"
)

// User is the authenticated dashboard user.
type User struct {
	ID             string
	Email          string
	Name           string
	Role           UserRole
	ConstructoraID string
	ResidenteID    string
}

// Session binds a BFF session id to the backend bearer token issued at login.
//
// Storage model (DynamoDB):
//   - PK: id
//   - expires_at drives the table TTL
type Session struct {
	ID        string
	Token     string
	User      User
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
