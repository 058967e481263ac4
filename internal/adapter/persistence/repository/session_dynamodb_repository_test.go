package repository

import (
	"testing"
	"time"

	"obradash/internal/domain/entities"
)

func TestSessionItemRoundTrip(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := entities.Session{
		ID:    "s1",
		Token: "tok",
		User: entities.User{
			ID:             "u1",
			Email:          "a@b.mx",
			Role:           entities.UserRoleResidente,
			ResidenteID:    "r1",
			ConstructoraID: "c1",
		},
		CreatedAt: created,
		ExpiresAt: created.Add(24 * time.Hour),
	}

	it := toSessionItem(s)
	if it.ExpiresAt != created.Add(24*time.Hour).Unix() {
		t.Fatalf("expected epoch ttl, got %d", it.ExpiresAt)
	}

	back := fromSessionItem(it)
	if back.ID != "s1" || back.Token != "tok" || back.User.Role != entities.UserRoleResidente || back.User.ResidenteID != "r1" {
		t.Fatalf("unexpected session: %+v", back)
	}
	if !back.CreatedAt.Equal(created) || !back.ExpiresAt.Equal(s.ExpiresAt) {
		t.Fatalf("unexpected timestamps: %+v", back)
	}
}

func TestSessionItem_NoExpiry(t *testing.T) {
	it := toSessionItem(entities.Session{ID: "s1", CreatedAt: time.Now()})
	if it.ExpiresAt != 0 {
		t.Fatalf("expected no ttl, got %d", it.ExpiresAt)
	}
	if back := fromSessionItem(it); !back.ExpiresAt.IsZero() {
		t.Fatalf("expected zero expiry, got %v", back.ExpiresAt)
	}
}
