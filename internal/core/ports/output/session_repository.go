package ports

import (
	"context"

	"github.com/google/uuid"

	"phishing-url-service/internal/core/domain"
)

// SessionRepository persists web sessions. Get returns domain.ErrSessionNotFound
// for unknown or expired sessions.
type SessionRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}
