package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"obradash/internal/domain/entities"
	"obradash/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Manager owns the lifecycle of login sessions: Start after login, Init when a
// request presents a session id, Clear on logout. The bearer token lives only
// in the session store and in the request context.
type Manager struct {
	repo interfaces.ISessionRepository
	ttl  time.Duration
	now  func() time.Time
	log  *zap.Logger
}

var _ interfaces.ISessionManager = (*Manager)(nil)

func NewManager(repo interfaces.ISessionRepository, ttl time.Duration, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{repo: repo, ttl: ttl, now: time.Now, log: logger}
}

// Start persists a new session for token and user.
func (m *Manager) Start(ctx context.Context, token string, user entities.User) (entities.Session, error) {
	now := m.now().UTC()
	s := entities.Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      user,
		CreatedAt: now,
	}
	if m.ttl > 0 {
		s.ExpiresAt = now.Add(m.ttl)
	}
	if err := m.repo.Save(ctx, s); err != nil {
		m.log.Error("[session][manager] save failed", zap.Error(err))
		return entities.Session{}, err
	}
	m.log.Info("[session][manager] started", zap.String("session_id", s.ID), zap.String("role", string(user.Role)))
	return s, nil
}

// Init reads the persisted session for id.
func (m *Manager) Init(ctx context.Context, id string) (entities.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	s, err := m.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Session{}, err
	}
	if s.ID == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	if s.Expired(m.now()) {
		if err := m.repo.Delete(ctx, id); err != nil {
			m.log.Warn("[session][manager] expired session cleanup failed", zap.String("session_id", id), zap.Error(err))
		}
		return entities.Session{}, ErrSessionExpired
	}
	return s, nil
}

// Clear removes the session. Clearing an unknown id is not an error.
func (m *Manager) Clear(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	if err := m.repo.Delete(ctx, id); err != nil {
		return err
	}
	m.log.Info("[session][manager] cleared", zap.String("session_id", id))
	return nil
}

// Bind returns ctx carrying s. It lets a flow that just logged in call the backend with the new token.
func (m *Manager) Bind(ctx context.Context, s entities.Session) context.Context {
	return WithSession(ctx, s)
}

type ctxKey struct{}

// WithSession attaches s to ctx so the backend client can pick its token up.
func WithSession(ctx context.Context, s entities.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (entities.Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(entities.Session)
	return s, ok
}

// ContextTokenSource reads the bearer token from the session carried by the request context.
type ContextTokenSource struct{}

func (ContextTokenSource) Token(ctx context.Context) string {
	if s, ok := FromContext(ctx); ok {
		return s.Token
	}
	return ""
}
