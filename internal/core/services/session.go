package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"phishing-url-service/internal/core/domain"
	ports "phishing-url-service/internal/core/ports/output"
)

// SessionService manages the web flow's per-browser state: the flash carried
// across the post/redirect/get cycle and the bounded history log.
type SessionService struct {
	repo ports.SessionRepository
}

func NewSessionService(repo ports.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

// Open returns the session for rawID, or a new unsaved session when rawID is
// empty, malformed, unknown or expired.
func (s *SessionService) Open(ctx context.Context, rawID string) (*domain.Session, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return domain.NewSession(), nil
	}

	session, err := s.repo.Get(ctx, id)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return domain.NewSession(), nil
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Record stores the verdict as the pending flash and prepends it to the history.
func (s *SessionService) Record(ctx context.Context, session *domain.Session, url string, v domain.Verdict) error {
	session.Flash = domain.FlashFromVerdict(url, v)
	session.Push(domain.HistoryEntry{URL: url, Label: v.Label})
	return s.save(ctx, session)
}

// SetFlash stores a flash without touching the history.
func (s *SessionService) SetFlash(ctx context.Context, session *domain.Session, flash *domain.Flash) error {
	session.Flash = flash
	return s.save(ctx, session)
}

// TakeFlash pops the pending flash. The session is only written back when a
// flash was actually consumed.
func (s *SessionService) TakeFlash(ctx context.Context, session *domain.Session) *domain.Flash {
	flash := session.TakeFlash()
	if flash == nil {
		return nil
	}
	if err := s.save(ctx, session); err != nil {
		log.WithError(err).WithField("session_id", session.ID).Warn("clear flash failed")
	}
	return flash
}

func (s *SessionService) save(ctx context.Context, session *domain.Session) error {
	session.UpdatedAt = time.Now()
	return s.repo.Save(ctx, session)
}
