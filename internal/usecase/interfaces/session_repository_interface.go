package interfaces

import (
	"context"

	"obradash/internal/domain/entities"
)

// ISessionRepository persists login sessions.
//
// GetByID returns a zero Session (empty ID) when nothing is stored under id.
type ISessionRepository interface {
	Save(ctx context.Context, s entities.Session) error
	GetByID(ctx context.Context, id string) (entities.Session, error)
	Delete(ctx context.Context, id string) error
}

// ISessionManager is the session lifecycle seen by the auth flow.
type ISessionManager interface {
	Start(ctx context.Context, token string, user entities.User) (entities.Session, error)
	Clear(ctx context.Context, id string) error
	Bind(ctx context.Context, s entities.Session) context.Context
}
