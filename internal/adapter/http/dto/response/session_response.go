package response

import (
	"time"

	"obradash/internal/domain/entities"
)

type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	ConstructoraID string `json:"constructora_id,omitempty"`
	ResidenteID    string `json:"residente_id,omitempty"`
}

// SessionResponse never carries the backend token; clients only hold the session id.
type SessionResponse struct {
	SessionID string       `json:"session_id"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
	User      UserResponse `json:"user"`
}

func FromSession(s entities.Session) SessionResponse {
	res := SessionResponse{
		SessionID: s.ID,
		User: UserResponse{
			ID:             s.User.ID,
			Email:          s.User.Email,
			Name:           s.User.Name,
			Role:           string(s.User.Role),
			ConstructoraID: s.User.ConstructoraID,
			ResidenteID:    s.User.ResidenteID,
		},
	}
	if !s.ExpiresAt.IsZero() {
		exp := s.ExpiresAt
		res.ExpiresAt = &exp
	}
	return res
}

type SyncResponse struct {
	UserID string `json:"user_id"`
}
