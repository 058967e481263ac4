package session

import (
	"context"
	"testing"
	"time"

	"obradash/internal/adapter/persistence/repository"
	"obradash/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Lifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewManager(repository.NewSessionMemoryRepository(), time.Hour, nil)

	s, err := m.Start(ctx, "tok", entities.User{ID: "u1", Role: entities.UserRoleConstructora, ConstructoraID: "c1"})
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)

	loaded, err := m.Init(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "tok", loaded.Token)
	assert.Equal(t, "c1", loaded.User.ConstructoraID)

	require.NoError(t, m.Clear(ctx, s.ID))
	_, err = m.Init(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_InitRejectsExpired(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSessionMemoryRepository()
	m := NewManager(repo, time.Minute, nil)

	s, err := m.Start(ctx, "tok", entities.User{ID: "u1"})
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = m.Init(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionExpired)

	stored, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.ID, "expired session should be removed")
}

func TestManager_InitBlankID(t *testing.T) {
	m := NewManager(repository.NewSessionMemoryRepository(), 0, nil)
	_, err := m.Init(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestContextTokenSource(t *testing.T) {
	var src ContextTokenSource
	assert.Equal(t, "", src.Token(context.Background()))

	ctx := WithSession(context.Background(), entities.Session{ID: "s1", Token: "abc"})
	assert.Equal(t, "abc", src.Token(ctx))
}
